package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

func TestSetRole_RejectsUnknownRole(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, zerolog.Nop())

	err := svc.SetRole(context.Background(), 1, models.RoleType("superuser"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestSetRole_AssignsAndClears(t *testing.T) {
	var applied models.RoleType
	userRepo := &mockUserRepo{
		UpdateRoleFunc: func(ctx context.Context, id int64, role models.RoleType) error {
			applied = role
			return nil
		},
	}
	svc := NewUserService(userRepo, zerolog.Nop())

	require.NoError(t, svc.SetRole(context.Background(), 1, models.RoleInstructor))
	assert.Equal(t, models.RoleInstructor, applied)

	// Setting the empty role clears a previous assignment.
	require.NoError(t, svc.SetRole(context.Background(), 1, models.RoleUnset))
	assert.Equal(t, models.RoleUnset, applied)
}

func TestSetRole_UnknownUser(t *testing.T) {
	userRepo := &mockUserRepo{
		UpdateRoleFunc: func(ctx context.Context, id int64, role models.RoleType) error {
			return apperrors.ErrUserNotFound
		},
	}
	svc := NewUserService(userRepo, zerolog.Nop())

	err := svc.SetRole(context.Background(), 99, models.RoleAdmin)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListInstructors_QueriesByRole(t *testing.T) {
	var queried models.RoleType
	userRepo := &mockUserRepo{
		ListByRoleFunc: func(ctx context.Context, role models.RoleType) ([]*models.User, error) {
			queried = role
			return []*models.User{{ID: 1, Role: role}}, nil
		},
	}
	svc := NewUserService(userRepo, zerolog.Nop())

	users, err := svc.ListInstructors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, queried)
	assert.Len(t, users, 1)
}
