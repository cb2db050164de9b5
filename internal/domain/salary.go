package domain

// Salary holds the salary components for a single employee. At most one row
// exists per employee. The total is never persisted.
type Salary struct {
	ID               int64
	EmployeeID       int64
	BaseSalary       float64
	SpecialAllowance float64
	Bonus            float64
	LastIncrement    float64
}

// Amount is the derived total, always recomputed from the stored components.
func (s Salary) Amount() float64 {
	return s.BaseSalary + s.SpecialAllowance + s.Bonus
}
