package domain

import (
	"fmt"
	"time"
)

// Role enumerates account roles. Values follow the registration wire format
// (1=admin, 2=manager, 3=employee) and are immutable after creation.
type Role int

const (
	RoleAdmin    Role = 1
	RoleManager  Role = 2
	RoleEmployee Role = 3
)

// ParseRole validates a wire-format role value.
func ParseRole(v int) (Role, error) {
	switch Role(v) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(v), nil
	default:
		return 0, fmt.Errorf("invalid role %d", v)
	}
}

// String renders the role name used in API responses.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

// User is the identity record backing authentication.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}
