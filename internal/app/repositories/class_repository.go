package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// ClassUpdate carries the optional fields of an instructor update.
// Nil fields are left untouched.
type ClassUpdate struct {
	Name           *string
	AvailableSeats *int
	Price          *float64
}

// IClassRepository defines the interface for class-related database operations
type IClassRepository interface {
	Create(ctx context.Context, class *models.Class) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	ListAll(ctx context.Context) ([]*models.Class, error)
	ListByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]*models.Class, error)
	UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) error
	UpdateFields(ctx context.Context, id int64, update ClassUpdate) error
	UpdateFeedback(ctx context.Context, id int64, feedback string) error
	AdjustSeats(ctx context.Context, id int64, deltaAvailable, deltaEnrolled int) error
}

// ClassRepository handles class database operations
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

const classColumns = `id, name, instructor_email, price, total_seats,
	available_seats, enrolled_students, status, feedback, created_at`

// Create inserts a new class and returns its id
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO classes (name, instructor_email, price, total_seats, available_seats, enrolled_students, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		class.Name, class.InstructorEmail, class.Price, class.TotalSeats,
		class.AvailableSeats, class.EnrolledStudents, class.Status).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	class := &models.Class{}
	err := r.db.QueryRow(ctx, `
		SELECT `+classColumns+`
		FROM classes
		WHERE id = $1`,
		id).Scan(
		&class.ID, &class.Name, &class.InstructorEmail, &class.Price, &class.TotalSeats,
		&class.AvailableSeats, &class.EnrolledStudents, &class.Status, &class.Feedback, &class.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error getting class by id: %w", err)
	}

	return class, nil
}

// ListAll retrieves every class record
func (r *ClassRepository) ListAll(ctx context.Context) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+classColumns+`
		FROM classes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListByStatus retrieves classes with the given approval status
func (r *ClassRepository) ListByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+classColumns+`
		FROM classes
		WHERE status = $1
		ORDER BY created_at DESC`,
		status)
	if err != nil {
		return nil, fmt.Errorf("error listing classes by status: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListByInstructor retrieves classes owned by the given instructor
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+classColumns+`
		FROM classes
		WHERE instructor_email = $1
		ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("error listing classes by instructor: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// UpdateStatus transitions the approval status of a class
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classes
		SET status = $2
		WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("error updating class status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// UpdateFields applies a partial content update; only non-nil fields change.
func (r *ClassRepository) UpdateFields(ctx context.Context, id int64, update ClassUpdate) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classes
		SET name = COALESCE($2, name),
		    available_seats = COALESCE($3, available_seats),
		    price = COALESCE($4, price)
		WHERE id = $1`,
		id, update.Name, update.AvailableSeats, update.Price)
	if err != nil {
		return fmt.Errorf("error updating class fields: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// UpdateFeedback sets the review feedback text of a class
func (r *ClassRepository) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classes
		SET feedback = $2
		WHERE id = $1`,
		id, feedback)
	if err != nil {
		return fmt.Errorf("error updating class feedback: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// AdjustSeats applies both seat deltas in one atomic statement so concurrent
// settlements for the same class cannot lose updates. The WHERE guard keeps
// available_seats from ever going negative; when it blocks, ErrNoSeatsLeft
// is returned for an existing class and ErrClassNotFound otherwise.
func (r *ClassRepository) AdjustSeats(ctx context.Context, id int64, deltaAvailable, deltaEnrolled int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classes
		SET available_seats = available_seats + $2,
		    enrolled_students = enrolled_students + $3
		WHERE id = $1
		  AND available_seats + $2 >= 0
		  AND enrolled_students + $3 >= 0`,
		id, deltaAvailable, deltaEnrolled)
	if err != nil {
		return fmt.Errorf("error adjusting class seats: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`,
			id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking class existence: %w", err)
		}
		if !exists {
			return apperrors.ErrClassNotFound
		}
		return apperrors.ErrNoSeatsLeft
	}

	return nil
}

func scanClasses(rows pgx.Rows) ([]*models.Class, error) {
	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(
			&class.ID, &class.Name, &class.InstructorEmail, &class.Price, &class.TotalSeats,
			&class.AvailableSeats, &class.EnrolledStudents, &class.Status, &class.Feedback, &class.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}
