package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
	"github.com/deniz/classbooker/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "classbooker.test",
	})
}

func TestRegister_CreatesUserWithoutRole(t *testing.T) {
	var created *models.User
	userRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
		CreateFunc: func(ctx context.Context, user *models.User) (int64, error) {
			created = user
			return 1, nil
		},
	}
	svc := NewAuthService(userRepo, testJWTService(), zerolog.Nop())

	result, err := svc.Register(context.Background(), "Student@Classbooker.app", "s3cret-pass", "John Doe")

	require.NoError(t, err)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, int64(1), result.UserID)
	require.NotNil(t, created)
	assert.Equal(t, "student@classbooker.app", created.Email)
	assert.Equal(t, models.RoleUnset, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.Password)
}

func TestRegister_ExistingEmailIsNoOp(t *testing.T) {
	userRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 5, Email: email}, nil
		},
		CreateFunc: func(ctx context.Context, user *models.User) (int64, error) {
			t.Fatal("no insert expected for an existing email")
			return 0, nil
		},
	}
	svc := NewAuthService(userRepo, testJWTService(), zerolog.Nop())

	result, err := svc.Register(context.Background(), "student@classbooker.app", "s3cret-pass", "John Doe")

	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, int64(5), result.UserID)
}

func TestRegister_LostRaceAnswersAlreadyExists(t *testing.T) {
	userRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
		CreateFunc: func(ctx context.Context, user *models.User) (int64, error) {
			return 0, apperrors.ErrEmailAlreadyExists
		},
	}
	svc := NewAuthService(userRepo, testJWTService(), zerolog.Nop())

	result, err := svc.Register(context.Background(), "student@classbooker.app", "s3cret-pass", "John Doe")

	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
}

func TestRegister_RejectsInvalidEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testJWTService(), zerolog.Nop())

	_, err := svc.Register(context.Background(), "not-an-email", "s3cret-pass", "John Doe")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_AcceptsLongTLD(t *testing.T) {
	userRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
		CreateFunc: func(ctx context.Context, user *models.User) (int64, error) {
			return 7, nil
		},
	}
	svc := NewAuthService(userRepo, testJWTService(), zerolog.Nop())

	result, err := svc.Register(context.Background(), "curator@example.museum", "s3cret-pass", "Ada Curator")

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.UserID)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testJWTService(), zerolog.Nop())

	_, err := svc.Register(context.Background(), "student@classbooker.app", "short", "John Doe")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLogin_IssuesTokenWithRole(t *testing.T) {
	hashed, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:       1,
				Email:    email,
				Password: hashed,
				Role:     models.RoleInstructor,
			}, nil
		},
	}
	jwtService := testJWTService()
	svc := NewAuthService(userRepo, jwtService, zerolog.Nop())

	result, err := svc.Login(context.Background(), "painter@classbooker.app", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, result.Role)
	assert.Equal(t, 3600, result.ExpiresIn)

	claims, err := jwtService.ValidateAndExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "painter@classbooker.app", claims.Email)
	assert.Equal(t, string(models.RoleInstructor), claims.Role)
}

func TestLogin_UnknownEmailAndBadPasswordAreIndistinguishable(t *testing.T) {
	hashed, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	unknownRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}
	knownRepo := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hashed}, nil
		},
	}

	_, errUnknown := NewAuthService(unknownRepo, testJWTService(), zerolog.Nop()).
		Login(context.Background(), "ghost@classbooker.app", "whatever-pass")
	_, errBadPassword := NewAuthService(knownRepo, testJWTService(), zerolog.Nop()).
		Login(context.Background(), "student@classbooker.app", "wrong-pass")

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPassword, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errBadPassword)
}
