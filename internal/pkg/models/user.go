package models

import (
	"github.com/google/uuid"
)

// Role values carried in identity tokens
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Employee is a directory entry for a person who can travel or approve
type Employee struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Name      string     `json:"name" db:"name"`
	Role      string     `json:"role" db:"role"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty" db:"manager_id"`
}

// IsAdmin reports whether the employee holds the administrator role
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// Identity is the authenticated caller of a request
type Identity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

// IsAdmin reports whether the caller is an administrator
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
