package models

import (
	"time"
)

// ClassStatus represents the approval state of a class.
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"  // Submitted by an instructor, awaiting review
	ClassApproved ClassStatus = "approved" // Visible to students and bookable
	ClassDenied   ClassStatus = "denied"   // Rejected by an admin
)

// Valid reports whether s is a known class status.
func (s ClassStatus) Valid() bool {
	return s == ClassPending || s == ClassApproved || s == ClassDenied
}

// Class represents an instructor-owned offering based on the 'classes' table.
//
// Seat accounting invariant: 0 <= AvailableSeats <= TotalSeats and
// EnrolledStudents >= 0. Each successful settlement moves exactly one seat
// from available to enrolled.
type Class struct {
	ID               int64       `json:"id" db:"id"`
	Name             string      `json:"name" db:"name"`
	InstructorEmail  string      `json:"instructorEmail" db:"instructor_email"`
	Price            float64     `json:"price" db:"price"`                       // Major currency units
	TotalSeats       int         `json:"totalSeats" db:"total_seats"`            // Capacity at creation time
	AvailableSeats   int         `json:"availableSeats" db:"available_seats"`
	EnrolledStudents int         `json:"enrolledStudents" db:"enrolled_students"`
	Status           ClassStatus `json:"status" db:"status"`
	Feedback         *string     `json:"feedback,omitempty" db:"feedback"` // Admin review notes (nullable)
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
}
