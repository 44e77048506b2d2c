package dto

// CreateBookingRequest records a booking intent for the authenticated user.
type CreateBookingRequest struct {
	ClassID int64 `json:"classId" binding:"required,gt=0" example:"42"`
}
