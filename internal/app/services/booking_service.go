package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// BookingResult reports the outcome of a booking attempt. AlreadyBooked is
// informational: asking to book a class twice is answered, not rejected.
type BookingResult struct {
	Booking       *models.Booking `json:"booking"`
	AlreadyBooked bool            `json:"alreadyBooked"`
}

// BookingService handles booking intents
type BookingService interface {
	Create(ctx context.Context, userEmail string, classID int64) (*BookingResult, error)
	ListForUser(ctx context.Context, userEmail string) ([]*models.Booking, error)
	ListForInstructor(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error)
	Cancel(ctx context.Context, userEmail string, classID int64) (int64, error)
}

type bookingServiceImpl struct {
	bookingRepo repositories.IBookingRepository
	classRepo   repositories.IClassRepository
	logger      zerolog.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repositories.IBookingRepository, classRepo repositories.IClassRepository, logger zerolog.Logger) BookingService {
	return &bookingServiceImpl{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// Create records a booking intent for the caller. A second attempt for the
// same class answers AlreadyBooked without inserting; the unique constraint
// closes the window between the check and the insert.
//
// Seat availability is deliberately not checked here: the intent does not
// hold a seat, and settlement's atomic seat decrement is the real gate.
func (s *bookingServiceImpl) Create(ctx context.Context, userEmail string, classID int64) (*BookingResult, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.GetByClassAndUser(ctx, classID, userEmail)
	if err != nil && !errors.Is(err, apperrors.ErrBookingNotFound) {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if existing != nil {
		return &BookingResult{Booking: existing, AlreadyBooked: true}, nil
	}

	booking := &models.Booking{
		ClassID:   classID,
		UserEmail: userEmail,
		ClassName: class.Name,
		Price:     class.Price,
	}

	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyBooked) {
			return &BookingResult{AlreadyBooked: true}, nil
		}
		return nil, err
	}
	booking.ID = id

	s.logger.Info().Int64("classID", classID).Str("user", userEmail).Msg("Booking created")
	return &BookingResult{Booking: booking}, nil
}

// ListForUser retrieves the caller's bookings
func (s *bookingServiceImpl) ListForUser(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userEmail)
}

// ListForInstructor retrieves bookings on the caller's classes, split by
// class approval status
func (s *bookingServiceImpl) ListForInstructor(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error) {
	return s.bookingRepo.ListByInstructor(ctx, instructorEmail)
}

// Cancel removes the caller's booking for a class and reports the number of
// rows removed. Cancelling a booking that no longer exists is a zero-count
// no-op, not an error.
func (s *bookingServiceImpl) Cancel(ctx context.Context, userEmail string, classID int64) (int64, error) {
	deleted, err := s.bookingRepo.Delete(ctx, classID, userEmail)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info().Int64("classID", classID).Str("user", userEmail).Msg("Booking cancelled")
	}
	return deleted, nil
}
