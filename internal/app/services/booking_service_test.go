package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

func approvedClass() *models.Class {
	return &models.Class{
		ID:              42,
		Name:            "Watercolor Basics",
		InstructorEmail: "painter@classbooker.app",
		Price:           20,
		TotalSeats:      10,
		AvailableSeats:  10,
		Status:          models.ClassApproved,
	}
}

func TestBookingCreate_SnapshotsClass(t *testing.T) {
	classRepo := &mockClassRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return approvedClass(), nil
		},
	}
	var stored *models.Booking
	bookingRepo := &mockBookingRepo{
		GetByClassAndUserFunc: func(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
			return nil, apperrors.ErrBookingNotFound
		},
		CreateFunc: func(ctx context.Context, booking *models.Booking) (int64, error) {
			stored = booking
			return 1, nil
		},
	}
	svc := NewBookingService(bookingRepo, classRepo, zerolog.Nop())

	result, err := svc.Create(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.False(t, result.AlreadyBooked)
	require.NotNil(t, stored)
	assert.Equal(t, "Watercolor Basics", stored.ClassName)
	assert.Equal(t, 20.0, stored.Price)
	assert.Equal(t, int64(1), result.Booking.ID)
}

func TestBookingCreate_SecondAttemptAnswersExisting(t *testing.T) {
	existing := &models.Booking{ID: 1, ClassID: 42, UserEmail: "student@classbooker.app"}
	classRepo := &mockClassRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return approvedClass(), nil
		},
	}
	bookingRepo := &mockBookingRepo{
		GetByClassAndUserFunc: func(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
			return existing, nil
		},
	}
	svc := NewBookingService(bookingRepo, classRepo, zerolog.Nop())

	result, err := svc.Create(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.True(t, result.AlreadyBooked)
	assert.Equal(t, existing, result.Booking)
}

func TestBookingCreate_LostRaceStillAnswersAlreadyBooked(t *testing.T) {
	classRepo := &mockClassRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return approvedClass(), nil
		},
	}
	bookingRepo := &mockBookingRepo{
		GetByClassAndUserFunc: func(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
			return nil, apperrors.ErrBookingNotFound
		},
		CreateFunc: func(ctx context.Context, booking *models.Booking) (int64, error) {
			// A concurrent request inserted between the check and the insert;
			// the unique constraint catches it.
			return 0, apperrors.ErrAlreadyBooked
		},
	}
	svc := NewBookingService(bookingRepo, classRepo, zerolog.Nop())

	result, err := svc.Create(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.True(t, result.AlreadyBooked)
}

func TestBookingCreate_ZeroSeatsStillBookable(t *testing.T) {
	full := approvedClass()
	full.AvailableSeats = 0

	classRepo := &mockClassRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return full, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		GetByClassAndUserFunc: func(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
			return nil, apperrors.ErrBookingNotFound
		},
		CreateFunc: func(ctx context.Context, booking *models.Booking) (int64, error) {
			return 2, nil
		},
	}
	svc := NewBookingService(bookingRepo, classRepo, zerolog.Nop())

	// The intent does not hold a seat; settlement's atomic decrement decides.
	result, err := svc.Create(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.False(t, result.AlreadyBooked)
}

func TestBookingCreate_UnknownClass(t *testing.T) {
	classRepo := &mockClassRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return nil, apperrors.ErrClassNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, classRepo, zerolog.Nop())

	_, err := svc.Create(context.Background(), "student@classbooker.app", 99)

	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestBookingCancel_ReportsDeletionCount(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		DeleteFunc: func(ctx context.Context, classID int64, userEmail string) (int64, error) {
			return 1, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockClassRepo{}, zerolog.Nop())

	deleted, err := svc.Cancel(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestBookingCancel_MissingBookingIsZeroCountNoOp(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		DeleteFunc: func(ctx context.Context, classID int64, userEmail string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockClassRepo{}, zerolog.Nop())

	deleted, err := svc.Cancel(context.Background(), "student@classbooker.app", 42)

	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestBookingCancel_StoreFailure(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		DeleteFunc: func(ctx context.Context, classID int64, userEmail string) (int64, error) {
			return 0, errors.New("store unavailable")
		},
	}
	svc := NewBookingService(bookingRepo, &mockClassRepo{}, zerolog.Nop())

	_, err := svc.Cancel(context.Background(), "student@classbooker.app", 42)

	assert.Error(t, err)
}
