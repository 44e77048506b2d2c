package dto

// RegisterRequest is the self-registration payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@classbooker.app"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Name     string `json:"name" binding:"required" example:"John Doe"`
}

// LoginRequest is the credential payload for token issuance
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@classbooker.app"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}
