package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeePromoted  EventType = "employee_promoted"
	EventEmployeeDeleted   EventType = "employee_deleted"
	EventSalaryChanged     EventType = "salary_changed"
	EventDepartmentDeleted EventType = "department_deleted"
)

// Actor identifies the authenticated caller that triggered an event.
type Actor struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeePromotedPayload payload.
type EmployeePromotedPayload struct {
	EmployeeID  int64  `json:"employee_id"`
	PromotionID int64  `json:"promotion_id"`
	OldPosition string `json:"old_position"`
	NewPosition string `json:"new_position"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	EmployeeID    int64 `json:"employee_id"`
	SalaryRemoved bool  `json:"salary_removed"`
}

// SalaryChangedPayload payload.
type SalaryChangedPayload struct {
	EmployeeID int64   `json:"employee_id"`
	Increment  float64 `json:"increment"`
	NewAmount  float64 `json:"new_amount"`
}

// DepartmentDeletedPayload payload.
type DepartmentDeletedPayload struct {
	DepartmentID int64  `json:"department_id"`
	Name         string `json:"name"`
}
