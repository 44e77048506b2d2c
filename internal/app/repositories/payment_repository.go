package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/classbooker/internal/app/models"
)

// IPaymentRepository defines the interface for payment-related database operations
type IPaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (int64, error)
	ListByUser(ctx context.Context, userEmail string) ([]*models.Payment, error)
}

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Create inserts a new payment audit record and returns its id
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (user_email, amount_cents, class_id, transaction_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		payment.UserEmail, payment.AmountCents, payment.ClassID, payment.TransactionID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return id, nil
}

// ListByUser retrieves the payments of a user, most recent first
func (r *PaymentRepository) ListByUser(ctx context.Context, userEmail string) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_email, amount_cents, class_id, transaction_id, created_at
		FROM payments
		WHERE user_email = $1
		ORDER BY created_at DESC`,
		userEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(
			&payment.ID, &payment.UserEmail, &payment.AmountCents, &payment.ClassID,
			&payment.TransactionID, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}
