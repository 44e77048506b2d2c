package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// ClassesByStatus is the administrative split view of the catalog.
type ClassesByStatus struct {
	Approved []*models.Class `json:"approved"`
	Pending  []*models.Class `json:"pending"`
}

// ClassService handles the class catalog
type ClassService interface {
	Create(ctx context.Context, instructorEmail string, name string, totalSeats int, price float64) (*models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	ListApproved(ctx context.Context) ([]*models.Class, error)
	ListAll(ctx context.Context) ([]*models.Class, error)
	ListByStatusSplit(ctx context.Context) (*ClassesByStatus, error)
	ListByInstructor(ctx context.Context, email string) ([]*models.Class, error)
	SetStatus(ctx context.Context, id int64, status models.ClassStatus) error
	UpdateFields(ctx context.Context, id int64, instructorEmail string, update repositories.ClassUpdate) error
	SetFeedback(ctx context.Context, id int64, feedback string) error
}

type classServiceImpl struct {
	classRepo repositories.IClassRepository
	logger    zerolog.Logger
}

// NewClassService creates a new ClassService
func NewClassService(classRepo repositories.IClassRepository, logger zerolog.Logger) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
		logger:    logger,
	}
}

// Create submits a new class for approval. New classes always start pending
// with every seat available.
func (s *classServiceImpl) Create(ctx context.Context, instructorEmail string, name string, totalSeats int, price float64) (*models.Class, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: class name is required", apperrors.ErrValidationFailed)
	}
	if totalSeats <= 0 {
		return nil, fmt.Errorf("%w: total seats must be positive", apperrors.ErrValidationFailed)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}

	class := &models.Class{
		Name:            name,
		InstructorEmail: instructorEmail,
		Price:           price,
		TotalSeats:      totalSeats,
		AvailableSeats:  totalSeats,
		Status:          models.ClassPending,
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, err
	}
	class.ID = id

	s.logger.Info().Int64("classID", id).Str("instructor", instructorEmail).Msg("Class submitted for approval")
	return class, nil
}

// GetByID retrieves a single class
func (s *classServiceImpl) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// ListApproved retrieves the publicly visible catalog
func (s *classServiceImpl) ListApproved(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.ListByStatus(ctx, models.ClassApproved)
}

// ListAll retrieves every class regardless of status
func (s *classServiceImpl) ListAll(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.ListAll(ctx)
}

// ListByStatusSplit retrieves the catalog split into approved and pending
func (s *classServiceImpl) ListByStatusSplit(ctx context.Context) (*ClassesByStatus, error) {
	classes, err := s.classRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	split := &ClassesByStatus{
		Approved: []*models.Class{},
		Pending:  []*models.Class{},
	}
	for _, class := range classes {
		switch class.Status {
		case models.ClassApproved:
			split.Approved = append(split.Approved, class)
		case models.ClassPending:
			split.Pending = append(split.Pending, class)
		}
	}

	return split, nil
}

// ListByInstructor retrieves the classes owned by one instructor
func (s *classServiceImpl) ListByInstructor(ctx context.Context, email string) ([]*models.Class, error) {
	return s.classRepo.ListByInstructor(ctx, email)
}

// SetStatus transitions a class's approval status. Admin-only at the route
// level.
func (s *classServiceImpl) SetStatus(ctx context.Context, id int64, status models.ClassStatus) error {
	if !status.Valid() || status == models.ClassPending {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	if err := s.classRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info().Int64("classID", id).Str("status", string(status)).Msg("Class status updated")
	return nil
}

// UpdateFields applies a partial content update after verifying the caller
// owns the class.
func (s *classServiceImpl) UpdateFields(ctx context.Context, id int64, instructorEmail string, update repositories.ClassUpdate) error {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if class.InstructorEmail != instructorEmail {
		return apperrors.NewCustomError(apperrors.ErrNotClassOwner,
			"Only the owning instructor may update this class")
	}

	if update.AvailableSeats != nil && *update.AvailableSeats < 0 {
		return fmt.Errorf("%w: available seats cannot be negative", apperrors.ErrValidationFailed)
	}
	if update.Price != nil && *update.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}

	return s.classRepo.UpdateFields(ctx, id, update)
}

// SetFeedback records review feedback on a class
func (s *classServiceImpl) SetFeedback(ctx context.Context, id int64, feedback string) error {
	return s.classRepo.UpdateFeedback(ctx, id, feedback)
}
