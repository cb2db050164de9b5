package dto

// EmployeeRequest payload for create and update.
type EmployeeRequest struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID *int64 `json:"department_id"`
}

// EmployeeBase is the employee snapshot embedded in composite responses.
type EmployeeBase struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID *int64 `json:"department_id"`
}

// EmployeeResponse renders an employee.
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID *int64 `json:"department_id"`
}
