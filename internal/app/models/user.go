package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleUnset      RoleType = ""           // Default for self-registered users
	RoleInstructor RoleType = "instructor" // May create classes and receive bookings
	RoleAdmin      RoleType = "admin"      // May approve classes and assign roles
)

// Valid reports whether r is one of the assignable roles.
func (r RoleType) Valid() bool {
	return r == RoleUnset || r == RoleInstructor || r == RoleAdmin
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"user@classbooker.app"`          // User's email address, unique key
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Name      string    `json:"name" db:"name" example:"John Doe"`                        // User's display name
	Role      RoleType  `json:"role" db:"role" example:"instructor"`                      // Assigned role; empty until an admin sets one
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
