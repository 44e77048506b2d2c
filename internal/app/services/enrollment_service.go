package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
)

// EnrollmentService reads the enrollment ledger. Enrollments are written
// only by payment settlement.
type EnrollmentService interface {
	ListForUser(ctx context.Context, userEmail string) ([]*models.Enrollment, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// ListForUser retrieves the caller's enrollments
func (s *enrollmentServiceImpl) ListForUser(ctx context.Context, userEmail string) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userEmail)
}
