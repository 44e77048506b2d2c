package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
	"github.com/deniz/classbooker/internal/pkg/paygate"
)

// SettlementStep names one write of the settlement sequence.
type SettlementStep string

const (
	StepRecordPayment    SettlementStep = "record_payment"
	StepRecordEnrollment SettlementStep = "record_enrollment"
	StepAdjustSeats      SettlementStep = "adjust_seats"
	StepRemoveBooking    SettlementStep = "remove_booking"
)

// StepOutcome is the per-write result inside a settlement.
type StepOutcome string

const (
	StepDone    StepOutcome = "done"
	StepSkipped StepOutcome = "skipped"
	StepFailed  StepOutcome = "failed"
)

// StepResult reports one settlement write.
type StepResult struct {
	Step    SettlementStep `json:"step"`
	Outcome StepOutcome    `json:"outcome"`
	Error   string         `json:"error,omitempty"`
}

// SettlementResult is the saga record of one settlement run. The four writes
// span independent tables with no shared transaction, so each is reported
// individually; a partial failure is handed to the caller for manual
// reconciliation instead of being rolled back.
type SettlementResult struct {
	PaymentID int64        `json:"paymentId,omitempty"`
	Settled   bool         `json:"settled"`
	Steps     []StepResult `json:"steps"`
}

// Failed reports whether any step of the sequence failed.
func (r *SettlementResult) Failed() bool {
	for _, step := range r.Steps {
		if step.Outcome == StepFailed {
			return true
		}
	}
	return false
}

// SettlementRequest is the confirmed-charge notification from the client,
// carrying a denormalized snapshot of the booked class.
type SettlementRequest struct {
	UserEmail       string
	ClassID         int64
	ClassName       string
	InstructorEmail string
	Price           float64
	AmountCents     int64
	TransactionID   string
}

// IntentResult carries the client-usable secret for a created intent.
type IntentResult struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentService creates payable intents and settles confirmed charges
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*IntentResult, error)
	Settle(ctx context.Context, req SettlementRequest) (*SettlementResult, error)
	ListPayments(ctx context.Context, userEmail string) ([]*models.Payment, error)
}

type paymentServiceImpl struct {
	paymentRepo    repositories.IPaymentRepository
	enrollmentRepo repositories.IEnrollmentRepository
	classRepo      repositories.IClassRepository
	bookingRepo    repositories.IBookingRepository
	gateway        paygate.Gateway
	currency       string
	logger         zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo repositories.IPaymentRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	classRepo repositories.IClassRepository,
	bookingRepo repositories.IBookingRepository,
	gateway paygate.Gateway,
	currency string,
	logger zerolog.Logger,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
		classRepo:      classRepo,
		bookingRepo:    bookingRepo,
		gateway:        gateway,
		currency:       currency,
		logger:         logger,
	}
}

// CreateIntent converts the class price from major to minor currency units
// and asks the gateway for a payable intent. No local state changes.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (*IntentResult, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}

	amountCents := int64(math.Round(price * 100))

	intent, err := s.gateway.CreateIntent(ctx, paygate.CreateIntentRequest{
		AmountCents:    amountCents,
		Currency:       s.currency,
		PaymentMethods: []string{"card"},
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFailure, err)
	}

	return &IntentResult{ClientSecret: intent.ClientSecret}, nil
}

// Settle runs the four-write sequence that turns a paid booking into an
// enrollment:
//
//  1. insert the payment record, first so a confirmed charge is never
//     lost,
//  2. insert the enrollment snapshot,
//  3. decrement available seats and increment the enrolled count,
//  4. delete the booking intent.
//
// The seat write precedes the booking delete on purpose: if seats cannot be
// adjusted the intent stays on file and the settlement remains retryable.
// Steps 3 and 4 are skipped when the booking is already gone, so a duplicate
// confirmation from the gateway never decrements seats twice. On the first
// failed step the remaining steps are skipped and the saga record is
// returned for manual reconciliation.
func (s *paymentServiceImpl) Settle(ctx context.Context, req SettlementRequest) (*SettlementResult, error) {
	result := &SettlementResult{}

	// Step 1: payment audit record.
	paymentID, err := s.paymentRepo.Create(ctx, &models.Payment{
		UserEmail:     req.UserEmail,
		AmountCents:   req.AmountCents,
		ClassID:       req.ClassID,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user", req.UserEmail).Int64("classID", req.ClassID).
			Msg("Settlement failed before the charge could be recorded")
		result.Steps = append(result.Steps,
			StepResult{Step: StepRecordPayment, Outcome: StepFailed, Error: err.Error()},
			StepResult{Step: StepRecordEnrollment, Outcome: StepSkipped},
			StepResult{Step: StepAdjustSeats, Outcome: StepSkipped},
			StepResult{Step: StepRemoveBooking, Outcome: StepSkipped})
		return result, fmt.Errorf("%w: recording payment: %v", apperrors.ErrUpstreamFailure, err)
	}
	result.PaymentID = paymentID
	result.Steps = append(result.Steps, StepResult{Step: StepRecordPayment, Outcome: StepDone})

	// Step 2: enrollment snapshot.
	if _, err := s.enrollmentRepo.Create(ctx, &models.Enrollment{
		UserEmail:       req.UserEmail,
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
	}); err != nil {
		s.logger.Error().Err(err).Int64("paymentID", paymentID).
			Msg("Settlement partially failed: payment recorded but enrollment was not")
		result.Steps = append(result.Steps,
			StepResult{Step: StepRecordEnrollment, Outcome: StepFailed, Error: err.Error()},
			StepResult{Step: StepAdjustSeats, Outcome: StepSkipped},
			StepResult{Step: StepRemoveBooking, Outcome: StepSkipped})
		return result, nil
	}
	result.Steps = append(result.Steps, StepResult{Step: StepRecordEnrollment, Outcome: StepDone})

	// Idempotency guard: a duplicate confirmation finds the booking already
	// deleted and must not touch seats again.
	exists, err := s.bookingRepo.Exists(ctx, req.ClassID, req.UserEmail)
	if err != nil {
		result.Steps = append(result.Steps,
			StepResult{Step: StepAdjustSeats, Outcome: StepFailed, Error: err.Error()},
			StepResult{Step: StepRemoveBooking, Outcome: StepSkipped})
		return result, nil
	}
	if !exists {
		s.logger.Warn().Str("user", req.UserEmail).Int64("classID", req.ClassID).
			Msg("Booking already settled; skipping seat adjustment")
		result.Steps = append(result.Steps,
			StepResult{Step: StepAdjustSeats, Outcome: StepSkipped},
			StepResult{Step: StepRemoveBooking, Outcome: StepSkipped})
		result.Settled = true
		return result, nil
	}

	// Step 3: one seat moves from available to enrolled.
	if err := s.classRepo.AdjustSeats(ctx, req.ClassID, -1, +1); err != nil {
		// The booking stays on file so the settlement can be retried.
		result.Steps = append(result.Steps,
			StepResult{Step: StepAdjustSeats, Outcome: StepFailed, Error: err.Error()},
			StepResult{Step: StepRemoveBooking, Outcome: StepSkipped})
		return result, nil
	}
	result.Steps = append(result.Steps, StepResult{Step: StepAdjustSeats, Outcome: StepDone})

	// Step 4: the intent is consumed.
	if _, err := s.bookingRepo.Delete(ctx, req.ClassID, req.UserEmail); err != nil {
		result.Steps = append(result.Steps,
			StepResult{Step: StepRemoveBooking, Outcome: StepFailed, Error: err.Error()})
		return result, nil
	}
	result.Steps = append(result.Steps, StepResult{Step: StepRemoveBooking, Outcome: StepDone})

	result.Settled = true
	s.logger.Info().Int64("paymentID", paymentID).Str("user", req.UserEmail).
		Int64("classID", req.ClassID).Msg("Booking settled into enrollment")
	return result, nil
}

// ListPayments retrieves a user's payment history, most recent first
func (s *paymentServiceImpl) ListPayments(ctx context.Context, userEmail string) ([]*models.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userEmail)
}
