package models

import (
	"time"
)

// Enrollment is the permanent record of a class a user has paid for.
// Rows are created only by payment settlement, never directly.
type Enrollment struct {
	ID              int64     `json:"id" db:"id"`
	UserEmail       string    `json:"userEmail" db:"user_email"`
	ClassID         int64     `json:"classId" db:"class_id"`
	ClassName       string    `json:"className" db:"class_name"`             // Snapshot of the class at settlement time
	InstructorEmail string    `json:"instructorEmail" db:"instructor_email"` // Snapshot
	Price           float64   `json:"price" db:"price"`                      // Snapshot
	EnrolledAt      time.Time `json:"enrolledAt" db:"enrolled_at"`
}
