package models

import (
	"time"
)

// Booking is a reservation intent created when a user selects a class,
// before any payment. It is removed either by an explicit cancellation or
// as the final step of a successful settlement.
//
// At most one booking exists per (class, user) pair; the 'bookings' table
// enforces this with a unique constraint.
type Booking struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	ClassName string    `json:"className" db:"class_name"` // Denormalized for listing without a join
	Price     float64   `json:"price" db:"price"`          // Class price at booking time
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// InstructorBookings groups bookings on an instructor's classes by the
// current approval status of the booked class.
type InstructorBookings struct {
	Approved []*Booking `json:"approved"`
	Pending  []*Booking `json:"pending"`
}
