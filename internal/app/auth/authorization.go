package auth

import (
	"context"
	"errors"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// AuthorizationService answers role-capability questions for identity-bound
// endpoints.
type AuthorizationService struct {
	userRepo repositories.IUserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// HasRole reports whether targetEmail holds the given role. The check is
// identity-bound: when the authenticated caller asks about anyone but
// themselves the answer is false, never an error, so the endpoint cannot
// be used to probe whether an account exists. A missing record is likewise
// just false.
func (s *AuthorizationService) HasRole(ctx context.Context, callerEmail, targetEmail string, role models.RoleType) (bool, error) {
	if callerEmail != targetEmail {
		return false, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == role, nil
}

// IsAdmin reports whether the identity-bound target holds the admin role.
func (s *AuthorizationService) IsAdmin(ctx context.Context, callerEmail, targetEmail string) (bool, error) {
	return s.HasRole(ctx, callerEmail, targetEmail, models.RoleAdmin)
}

// IsInstructor reports whether the identity-bound target holds the
// instructor role.
func (s *AuthorizationService) IsInstructor(ctx context.Context, callerEmail, targetEmail string) (bool, error) {
	return s.HasRole(ctx, callerEmail, targetEmail, models.RoleInstructor)
}
