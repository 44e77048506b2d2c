package models

import (
	"time"
)

// Payment is the immutable audit record of a completed charge. Rows are
// written by settlement before any other settlement step so a confirmed
// charge is never lost.
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	UserEmail     string    `json:"userEmail" db:"user_email"`
	AmountCents   int64     `json:"amountCents" db:"amount_cents"` // Minor currency units as charged by the gateway
	ClassID       int64     `json:"classId" db:"class_id"`
	TransactionID string    `json:"transactionId" db:"transaction_id"` // Gateway-side payment intent identifier
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
