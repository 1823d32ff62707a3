package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Station owner/supervisor - full access
	RoleStaff Role = "staff" // Operator - own attendance and deposits
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage other operators' records
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
