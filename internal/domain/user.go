package domain

import "time"

// Role determines visibility and permitted mutating operations.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the domain model for authenticated actors. Accounts are provisioned
// outside this service; the core only reads them.
type User struct {
	ID        string
	Username  string
	Email     string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
