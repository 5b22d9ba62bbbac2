package models

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role names used by the route guards.
const (
	RoleAdmin      = "admin"
	RoleSecretary  = "secretary"
	RoleInstructor = "instructor"
)
