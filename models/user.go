// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

// Role values stored on a user record.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct { // User struct represents a user account in the database
	ID       uint   `gorm:"primaryKey" json:"id"`        // Unique user ID (primary key)
	Username string `gorm:"not null" json:"username"`    // Login/display handle
	Name     string `json:"name"`                        // Full name
	Email    string `gorm:"index;not null" json:"email"` // Lookup key; unique among ACTIVE accounts only, so no DB unique index
	Password string `gorm:"not null" json:"-"`           // Bcrypt hash, never serialized
	Phone    string `json:"phone"`                       // Contact phone (optional)
	Role     string `gorm:"default:'user'" json:"role"`  // User role (user/admin)

	SessionTime int  `gorm:"default:1" json:"sessionTime"` // Non-admin token lifetime in minutes
	IsActive    bool `gorm:"default:true" json:"isActive"` // false means soft-deleted

	CreatedAt time.Time `json:"createdAt"` // When the account was created
	UpdatedAt time.Time `json:"updatedAt"` // Last mutation timestamp
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
