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

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	UpdateRole(ctx context.Context, id int64, role models.RoleType) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user and returns its id. A concurrent insert with the
// same email surfaces as ErrEmailAlreadyExists via the unique constraint.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Email, user.Password, user.Name, user.Role).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_uq") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, name, role, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// ListAll retrieves every user record
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, password, name, role, created_at, updated_at
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListByRole retrieves all users holding the given role
func (r *UserRepository) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, password, name, role, created_at, updated_at
		FROM users
		WHERE role = $1
		ORDER BY id`,
		role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateRole sets the role of a user. Setting the role a user already holds
// is a no-op success; an unknown id returns ErrUserNotFound.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.RoleType) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET role = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`,
		id, role)
	if err != nil {
		return fmt.Errorf("error updating user role: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
