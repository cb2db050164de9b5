package domain

// Employee models a staff record. DepartmentID stays nil for employees
// without a department assignment.
type Employee struct {
	ID           int64
	Name         string
	Age          int
	Position     string
	DepartmentID *int64
}
