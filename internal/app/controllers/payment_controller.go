package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
)

// PaymentController creates payable intents and settles confirmed charges
type PaymentController struct {
	paymentService services.PaymentService
	logger         zerolog.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreateIntent asks the payment gateway for a payable intent
// @Summary Create a payment intent
// @Description Converts the class price to minor currency units and asks the gateway for an intent, returning its client secret.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIntentRequest true "Price in major units"
// @Success 200 {object} dto.APIResponse{data=dto.CreateIntentResponse} "Intent created"
// @Failure 502 {object} dto.APIResponse "Payment gateway unavailable"
// @Router /payments/intent [post]
func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	var req dto.CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.paymentService.CreateIntent(ctx, req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.CreateIntentResponse{
		ClientSecret: result.ClientSecret,
	}))
}

// Settle records a confirmed charge and completes the enrollment
// @Summary Settle a confirmed payment
// @Description Runs the post-payment sequence: record the payment, record the enrollment, adjust seats, remove the booking. Steps are reported individually; a partial failure answers 207 with the per-step record for manual reconciliation.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SettleRequest true "Confirmed charge"
// @Success 201 {object} dto.APIResponse "Settlement completed"
// @Failure 207 {object} dto.APIResponse "Settlement partially completed"
// @Failure 502 {object} dto.APIResponse "Payment could not be recorded"
// @Router /payments [post]
func (c *PaymentController) Settle(ctx *gin.Context) {
	var req dto.SettleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userEmail := middleware.AuthenticatedEmail(ctx)

	result, err := c.paymentService.Settle(ctx, services.SettlementRequest{
		UserEmail:       userEmail,
		ClassID:         req.ClassID,
		ClassName:       req.Class.Name,
		InstructorEmail: req.Class.InstructorEmail,
		Price:           req.Class.Price,
		AmountCents:     req.AmountCents,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.Failed() {
		c.logger.Error().
			Str("user", userEmail).
			Int64("classID", req.ClassID).
			Int64("paymentID", result.PaymentID).
			Msg("Settlement completed partially, manual reconciliation required")

		detail := dto.NewErrorDetail(dto.ErrorCodeSettlementIncomplete, "Settlement completed partially").
			WithDetails(result)
		ctx.JSON(http.StatusMultiStatus, dto.NewErrorResponse(detail))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(result))
}

// ListPayments returns the caller's payment history
// @Summary List a user's payments
// @Description Returns recorded payments for the given email, newest first. Identity-bound: the email must match the caller's token.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse "The user's payments"
// @Failure 403 {object} dto.APIResponse "Email does not match the caller"
// @Router /users/{email}/payments [get]
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	email, ok := middleware.BindEmailParam(ctx, "email")
	if !ok {
		return
	}

	payments, err := c.paymentService.ListPayments(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payments))
}
