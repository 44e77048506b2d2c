package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
	"github.com/deniz/classbooker/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// RegisterResult reports the outcome of an idempotent registration.
// AlreadyExists is informational, not an error: re-registering the same
// email is a no-op.
type RegisterResult struct {
	UserID        int64 `json:"userId"`
	AlreadyExists bool  `json:"alreadyExists"`
}

// LoginResult carries the issued token and its lifetime in seconds.
type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
	Role      models.RoleType `json:"role"`
}

// AuthService handles registration and token issuance
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user unless the email is already taken. Registration
// with a known email mutates nothing and reports AlreadyExists.
func (s *authServiceImpl) Register(ctx context.Context, email, password, name string) (*RegisterResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return &RegisterResult{UserID: existing.ID, AlreadyExists: true}, nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.userRepo.Create(ctx, &models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     models.RoleUnset,
	})
	if err != nil {
		// Lost the check-then-insert race; the constraint caught it.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return &RegisterResult{AlreadyExists: true}, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("email", email).Int64("userID", id).Msg("User registered")
	return &RegisterResult{UserID: id}, nil
}

// Login verifies credentials and issues an access token.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a bad password so login never reveals
			// whether the email is registered.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Debug().Str("email", email).Msg("Token issued")
	return &LoginResult{Token: token, ExpiresIn: expiresIn, Role: user.Role}, nil
}
