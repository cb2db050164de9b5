package dto

// SalaryCreateRequest payload.
type SalaryCreateRequest struct {
	EmployeeID       int64   `json:"employee_id"`
	BaseSalary       float64 `json:"base_salary"`
	SpecialAllowance float64 `json:"special_allowance"`
	Bonus            float64 `json:"bonus"`
}

// SalaryResponse joins the salary components, the computed total and the
// owning employee's snapshot. Amount is derived, never stored.
type SalaryResponse struct {
	ID               int64        `json:"id"`
	Employee         EmployeeBase `json:"employee"`
	BaseSalary       float64      `json:"base_salary"`
	SpecialAllowance float64      `json:"special_allowance"`
	Bonus            float64      `json:"bonus"`
	Amount           float64      `json:"amount"`
}
