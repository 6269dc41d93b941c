package models

import (
	"fmt"
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleDriver     Role = "driver"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"
)

// ParseRole maps an incoming string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleDriver:
		return RoleDriver, nil
	case RoleRestaurant:
		return RoleRestaurant, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID                    uint       `json:"id" gorm:"primaryKey"`
	Email                 string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash          string     `json:"-" gorm:"not null"`
	Verified              bool       `json:"verified" gorm:"default:false"`
	AcceptedTermOfService bool       `json:"accepted_term_of_service" gorm:"default:false"`
	AcceptedPDPA          bool       `json:"accepted_pdpa" gorm:"default:false"`
	AcceptedCookies       bool       `json:"accepted_cookie_tracking" gorm:"default:false"`
	Roles                 []UserRole `json:"roles,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// UserRole is one granted role row; a user may hold several (e.g. a driver
// who also orders as a customer).
type UserRole struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	Role   Role `json:"role" gorm:"not null"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}

// VerifyToken is a single-use email verification token.
type VerifyToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
