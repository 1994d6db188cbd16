package entity

import "time"

// Roles del sistema.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario del sistema (staff o admin). PasswordHash es bcrypt.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // admin | staff
	CreatedAt    time.Time
}
