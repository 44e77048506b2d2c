package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upstream collaborator errors (store, payment gateway)
	ErrUpstreamFailure = errors.New("upstream service failure")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

// Class errors
var (
	ErrClassNotFound = errors.New("class not found")
	ErrInvalidStatus = errors.New("invalid class status")
	ErrNoSeatsLeft   = errors.New("no available seats")
	ErrNotClassOwner = errors.New("class belongs to another instructor")
)

// Booking errors
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyBooked   = errors.New("class already booked by this user")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError pairs a sentinel with a human-readable message. The sentinel
// keeps errors.Is classification working while the message replaces the
// generic sentinel text in the HTTP response.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
