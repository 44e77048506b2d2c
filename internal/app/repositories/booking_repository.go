package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
	"github.com/deniz/classbooker/internal/pkg/dberrors"
)

// IBookingRepository defines the interface for booking-related database operations
type IBookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (int64, error)
	GetByClassAndUser(ctx context.Context, classID int64, userEmail string) (*models.Booking, error)
	Exists(ctx context.Context, classID int64, userEmail string) (bool, error)
	ListByUser(ctx context.Context, userEmail string) ([]*models.Booking, error)
	ListByInstructor(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error)
	Delete(ctx context.Context, classID int64, userEmail string) (int64, error)
}

// BookingRepository handles booking database operations
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		db: db,
	}
}

// Create inserts a new booking intent and returns its id. The unique
// constraint on (class_id, user_email) turns a concurrent duplicate insert
// into ErrAlreadyBooked instead of a silent second row.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (class_id, user_email, class_name, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		booking.ClassID, booking.UserEmail, booking.ClassName, booking.Price).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "bookings_class_user_uq") {
			return 0, apperrors.ErrAlreadyBooked
		}
		return 0, fmt.Errorf("error creating booking: %w", err)
	}

	return id, nil
}

// GetByClassAndUser retrieves the booking for a (class, user) pair
func (r *BookingRepository) GetByClassAndUser(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
	booking := &models.Booking{}
	err := r.db.QueryRow(ctx, `
		SELECT id, class_id, user_email, class_name, price, created_at
		FROM bookings
		WHERE class_id = $1 AND user_email = $2`,
		classID, userEmail).Scan(
		&booking.ID, &booking.ClassID, &booking.UserEmail, &booking.ClassName,
		&booking.Price, &booking.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error getting booking: %w", err)
	}

	return booking, nil
}

// Exists checks whether a booking exists for a (class, user) pair
func (r *BookingRepository) Exists(ctx context.Context, classID int64, userEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM bookings WHERE class_id = $1 AND user_email = $2)`,
		classID, userEmail).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking booking existence: %w", err)
	}

	return exists, nil
}

// ListByUser retrieves all bookings owned by the given user
func (r *BookingRepository) ListByUser(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, class_id, user_email, class_name, price, created_at
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC`,
		userEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByInstructor retrieves bookings on the instructor's classes, split by
// the current approval status of the booked class.
func (r *BookingRepository) ListByInstructor(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.class_id, b.user_email, b.class_name, b.price, b.created_at, c.status
		FROM bookings b
		JOIN classes c ON c.id = b.class_id
		WHERE c.instructor_email = $1
		ORDER BY b.created_at DESC`,
		instructorEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing instructor bookings: %w", err)
	}
	defer rows.Close()

	result := &models.InstructorBookings{
		Approved: []*models.Booking{},
		Pending:  []*models.Booking{},
	}
	for rows.Next() {
		booking := &models.Booking{}
		var status models.ClassStatus
		if err := rows.Scan(
			&booking.ID, &booking.ClassID, &booking.UserEmail, &booking.ClassName,
			&booking.Price, &booking.CreatedAt, &status); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		if status == models.ClassApproved {
			result.Approved = append(result.Approved, booking)
		} else {
			result.Pending = append(result.Pending, booking)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return result, nil
}

// Delete removes the booking for a (class, user) pair and reports how many
// rows were removed. Zero is not an error; settlement and cancellation treat
// an already-absent booking as a no-op.
func (r *BookingRepository) Delete(ctx context.Context, classID int64, userEmail string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM bookings
		WHERE class_id = $1 AND user_email = $2`,
		classID, userEmail)
	if err != nil {
		return 0, fmt.Errorf("error deleting booking: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanBookings(rows pgx.Rows) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for rows.Next() {
		booking := &models.Booking{}
		if err := rows.Scan(
			&booking.ID, &booking.ClassID, &booking.UserEmail, &booking.ClassName,
			&booking.Price, &booking.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}
