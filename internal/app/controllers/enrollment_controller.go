package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
)

// EnrollmentController reads enrollment records
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// ListForUser returns the caller's enrollments
// @Summary List a user's enrollments
// @Description Returns enrollment records for the given email. Identity-bound: the email must match the caller's token.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse "The user's enrollments"
// @Failure 403 {object} dto.APIResponse "Email does not match the caller"
// @Router /users/{email}/enrollments [get]
func (c *EnrollmentController) ListForUser(ctx *gin.Context) {
	email, ok := middleware.BindEmailParam(ctx, "email")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.ListForUser(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(enrollments))
}
