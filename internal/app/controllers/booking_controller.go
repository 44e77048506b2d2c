package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// BookingController handles booking intents
type BookingController struct {
	bookingService services.BookingService
	logger         zerolog.Logger
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService services.BookingService, logger zerolog.Logger) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Create records a booking intent for the authenticated user
// @Summary Book a class
// @Description Records a booking for the calling user with a denormalized snapshot of the class. Booking the same class twice answers the existing booking instead of erroring.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Class to book"
// @Success 201 {object} dto.APIResponse "Booking recorded"
// @Success 200 {object} dto.APIResponse "Class was already booked"
// @Failure 404 {object} dto.APIResponse "Class not found"
// @Router /bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userEmail := middleware.AuthenticatedEmail(ctx)

	result, err := c.bookingService.Create(ctx, userEmail, req.ClassID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyBooked {
		status = http.StatusOK
	}

	ctx.JSON(status, dto.NewDataResponse(result))
}

// ListForUser returns the caller's bookings
// @Summary List a user's bookings
// @Description Returns pending bookings for the given email. Identity-bound: the email must match the caller's token.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse "The user's bookings"
// @Failure 403 {object} dto.APIResponse "Email does not match the caller"
// @Router /users/{email}/bookings [get]
func (c *BookingController) ListForUser(ctx *gin.Context) {
	email, ok := middleware.BindEmailParam(ctx, "email")
	if !ok {
		return
	}

	bookings, err := c.bookingService.ListForUser(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bookings))
}

// ListForInstructor returns bookings against the instructor's classes
// @Summary List bookings for an instructor's classes
// @Description Returns bookings against the instructor's classes, split by class approval status. Identity-bound.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email path string true "Instructor email"
// @Success 200 {object} dto.APIResponse "Bookings split by class status"
// @Failure 403 {object} dto.APIResponse "Email does not match the caller"
// @Router /instructors/{email}/bookings [get]
func (c *BookingController) ListForInstructor(ctx *gin.Context) {
	email, ok := middleware.BindEmailParam(ctx, "email")
	if !ok {
		return
	}

	bookings, err := c.bookingService.ListForInstructor(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bookings))
}

// Cancel deletes the caller's booking for a class
// @Summary Cancel a booking
// @Description Deletes the caller's booking for the given class. Cancelling a booking that does not exist reports zero deletions.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param classId path int true "Class ID"
// @Success 200 {object} dto.APIResponse "Deletion count"
// @Router /bookings/{classId} [delete]
func (c *BookingController) Cancel(ctx *gin.Context) {
	classID, err := strconv.ParseInt(ctx.Param("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid class ID"))
		return
	}

	userEmail := middleware.AuthenticatedEmail(ctx)

	deleted, err := c.bookingService.Cancel(ctx, userEmail, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Debug().Str("user", userEmail).Int64("classID", classID).Int64("deleted", deleted).Msg("Booking cancel processed")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"deletedCount": deleted}))
}
