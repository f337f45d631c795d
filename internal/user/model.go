package user

import (
	"time"
)

// Roles, in decreasing privilege. Staff covers the first three.
const (
	RoleHeadAdmin = "headadmin"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RolePremium   = "premium"
	RolePlayer    = "player"
)

// IsStaffRole reports whether the role may use the admin CMS.
func IsStaffRole(role string) bool {
	switch role {
	case RoleHeadAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           uint64
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Password     string `gorm:"-"` // input only, not stored in db
	PasswordHash string
	Role         string `gorm:"default:player"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	IsActive     bool `gorm:"default:true"`
}

// SafeUser represents a user without sensitive information
type SafeUser struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// ToSafeUser converts a User to a SafeUser
func (u *User) ToSafeUser() SafeUser {
	return SafeUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}
