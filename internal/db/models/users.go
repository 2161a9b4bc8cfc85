package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// UserRole represents the role of a user in the system
type UserRole int

// User role constants
const (
	// UserRoleUser represents a standard user
	UserRoleUser UserRole = iota
	// UserRoleAdmin represents an administrator user
	UserRoleAdmin
)

// User represents an account in the system. The password hash never leaves
// the server.
type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Company      string     `json:"company"`
	Role         UserRole   `json:"role" gorm:"index"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	LastLoginIP  string     `json:"last_login_ip"`
	Country      string     `json:"country"`
	City         string     `json:"city"`
}

// TableName overrides the default table name
func (User) TableName() string {
	return "user_profiles"
}

func (s UserRole) String() string {
	return []string{
		"user",
		"admin",
	}[s]
}

// ParseUserRole converts a string representation of a user role to UserRole type
func ParseUserRole(str string) (UserRole, error) {
	for i, role := range []string{
		"user",
		"admin",
	} {
		if role == str {
			return UserRole(i), nil
		}
	}
	return UserRoleUser, fmt.Errorf("invalid user role: %s", str)
}

// AdminID represents the special ID for admin-level access
const AdminID uint = math.MaxUint32
