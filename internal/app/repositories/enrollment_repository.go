package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/classbooker/internal/app/models"
)

// IEnrollmentRepository defines the interface for enrollment-related database operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	ListByUser(ctx context.Context, userEmail string) ([]*models.Enrollment, error)
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment record and returns its id
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (user_email, class_id, class_name, instructor_email, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		enrollment.UserEmail, enrollment.ClassID, enrollment.ClassName,
		enrollment.InstructorEmail, enrollment.Price).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// ListByUser retrieves all enrollments of the given user
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userEmail string) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_email, class_id, class_name, instructor_email, price, enrolled_at
		FROM enrollments
		WHERE user_email = $1
		ORDER BY enrolled_at DESC`,
		userEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(
			&enrollment.ID, &enrollment.UserEmail, &enrollment.ClassID, &enrollment.ClassName,
			&enrollment.InstructorEmail, &enrollment.Price, &enrollment.EnrolledAt); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}
