package dto

// CreateIntentRequest asks the gateway for a payable intent over the class
// price in major currency units.
type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"gte=0" example:"20"`
}

// CreateIntentResponse returns the client-usable secret of the intent.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ClassSnapshot is the denormalized class carried inside a settlement
// request; it becomes the enrollment record verbatim.
type ClassSnapshot struct {
	Name            string  `json:"name" binding:"required"`
	InstructorEmail string  `json:"instructorEmail"`
	Price           float64 `json:"price"`
}

// SettleRequest is the confirmed-charge notification. The paying user is
// taken from the verified token, never from the body.
type SettleRequest struct {
	ClassID       int64         `json:"classId" binding:"required,gt=0"`
	AmountCents   int64         `json:"amountCents" binding:"required,gt=0"`
	TransactionID string        `json:"transactionId"`
	Class         ClassSnapshot `json:"class" binding:"required"`
}
