package dto

// CreateClassRequest is the instructor's class submission payload
type CreateClassRequest struct {
	Name       string  `json:"name" binding:"required" example:"Watercolor Basics"`
	TotalSeats int     `json:"totalSeats" binding:"required,gt=0" example:"10"`
	Price      float64 `json:"price" binding:"gte=0" example:"20"`
}

// UpdateClassRequest is a partial content update; omitted fields are left
// unchanged.
type UpdateClassRequest struct {
	Name           *string  `json:"name,omitempty"`
	AvailableSeats *int     `json:"availableSeats,omitempty"`
	Price          *float64 `json:"price,omitempty"`
}

// SetStatusRequest is the admin approval transition payload
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved denied" example:"approved"`
}

// SetFeedbackRequest carries review feedback for a class
type SetFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required" example:"Please add a syllabus."`
}
