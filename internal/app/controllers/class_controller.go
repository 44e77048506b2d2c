package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// ClassController handles the class catalog and the approval workflow
type ClassController struct {
	classService services.ClassService
	logger       zerolog.Logger
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService, logger zerolog.Logger) *ClassController {
	return &ClassController{
		classService: classService,
		logger:       logger,
	}
}

func parseClassID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid class ID"))
		return 0, false
	}
	return id, true
}

// ListApproved returns the public catalog of approved classes
// @Summary List approved classes
// @Description Returns the browsable catalog. No authentication required.
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse "Approved classes"
// @Router /classes [get]
func (c *ClassController) ListApproved(ctx *gin.Context) {
	classes, err := c.classService.ListApproved(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(classes))
}

// ListAll returns every class regardless of status
// @Summary List all classes
// @Description Returns approved and pending classes split by status. Admin only.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Classes split by status"
// @Router /classes/all [get]
func (c *ClassController) ListAll(ctx *gin.Context) {
	classes, err := c.classService.ListByStatusSplit(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(classes))
}

// GetByID returns one class
// @Summary Get a class
// @Description Returns a single class by ID.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse "The class"
// @Failure 404 {object} dto.APIResponse "Class not found"
// @Router /classes/{id} [get]
func (c *ClassController) GetByID(ctx *gin.Context) {
	id, ok := parseClassID(ctx)
	if !ok {
		return
	}

	class, err := c.classService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(class))
}

// Create submits a new class for approval
// @Summary Submit a class
// @Description Creates a class in pending status with all seats available. Instructor only; the instructor is taken from the verified token.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class submission"
// @Success 201 {object} dto.APIResponse "Created class"
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 403 {object} dto.APIResponse "Caller is not an instructor"
// @Router /classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	instructorEmail := middleware.AuthenticatedEmail(ctx)

	class, err := c.classService.Create(ctx, instructorEmail, req.Name, req.TotalSeats, req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classID", class.ID).Str("instructor", instructorEmail).Msg("Class submitted for approval")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(class))
}

// Update applies a partial content update to the caller's own class
// @Summary Update a class
// @Description Updates name, seats, or price on a class owned by the calling instructor. Omitted fields are left unchanged.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.UpdateClassRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Class updated"
// @Failure 403 {object} dto.APIResponse "Class belongs to another instructor"
// @Failure 404 {object} dto.APIResponse "Class not found"
// @Router /classes/{id} [patch]
func (c *ClassController) Update(ctx *gin.Context) {
	id, ok := parseClassID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	update := repositories.ClassUpdate{
		Name:           req.Name,
		AvailableSeats: req.AvailableSeats,
		Price:          req.Price,
	}

	if err := c.classService.UpdateFields(ctx, id, middleware.AuthenticatedEmail(ctx), update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"updated": true}))
}

// SetStatus approves or denies a pending class
// @Summary Approve or deny a class
// @Description Moves a class to approved or denied status. Admin only; moving back to pending is rejected.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.SetStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 404 {object} dto.APIResponse "Class not found"
// @Router /classes/{id}/status [patch]
func (c *ClassController) SetStatus(ctx *gin.Context) {
	id, ok := parseClassID(ctx)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.classService.SetStatus(ctx, id, models.ClassStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classID", id).Str("status", req.Status).Msg("Class status updated")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"updated": true}))
}

// SetFeedback records review feedback on a class
// @Summary Leave feedback on a class
// @Description Stores free-form feedback on a class, typically alongside a denial.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.SetFeedbackRequest true "Feedback text"
// @Success 200 {object} dto.APIResponse "Feedback stored"
// @Failure 404 {object} dto.APIResponse "Class not found"
// @Router /classes/{id}/feedback [patch]
func (c *ClassController) SetFeedback(ctx *gin.Context) {
	id, ok := parseClassID(ctx)
	if !ok {
		return
	}

	var req dto.SetFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.classService.SetFeedback(ctx, id, req.Feedback); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"updated": true}))
}

// ListByInstructor returns the calling instructor's own classes
// @Summary List an instructor's classes
// @Description Returns classes submitted by the given instructor. Identity-bound: the email must match the caller's token.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param email path string true "Instructor email"
// @Success 200 {object} dto.APIResponse "The instructor's classes"
// @Failure 403 {object} dto.APIResponse "Email does not match the caller"
// @Router /instructors/{email}/classes [get]
func (c *ClassController) ListByInstructor(ctx *gin.Context) {
	email, ok := middleware.BindEmailParam(ctx, "email")
	if !ok {
		return
	}

	classes, err := c.classService.ListByInstructor(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(classes))
}
