package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// UserService handles user listing and role mutation
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListInstructors(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, userID int64, role models.RoleType) error
}

type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers retrieves every user record
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListAll(ctx)
}

// ListInstructors retrieves all users with the instructor role
func (s *userServiceImpl) ListInstructors(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListByRole(ctx, models.RoleInstructor)
}

// SetRole assigns a role to a user. The operation is idempotent; an unknown
// user id returns ErrUserNotFound without touching anything.
func (s *userServiceImpl) SetRole(ctx context.Context, userID int64, role models.RoleType) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("Role assigned")
	return nil
}
