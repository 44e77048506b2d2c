package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/deniz/classbooker/internal/app/auth"
	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// UserController handles user administration and capability checks
type UserController struct {
	userService  services.UserService
	authzService *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, authzService *appauth.AuthorizationService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:  userService,
		authzService: authzService,
		logger:       logger,
	}
}

// ListUsers returns every registered user
// @Summary List users
// @Description Returns all users. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "All users"
// @Failure 403 {object} dto.APIResponse "Caller is not an admin"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

// ListInstructors returns users holding the instructor role
// @Summary List instructors
// @Description Returns all users with the instructor role. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Instructor users"
// @Router /users/instructors [get]
func (c *UserController) ListInstructors(ctx *gin.Context) {
	users, err := c.userService.ListInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

// SetRole assigns or clears a user's role
// @Summary Set a user's role
// @Description Assigns the instructor or admin role to a user, or clears it. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetRoleRequest true "Role assignment"
// @Success 200 {object} dto.APIResponse "Role updated"
// @Failure 400 {object} dto.APIResponse "Unknown role"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/roles/{id} [patch]
func (c *UserController) SetRole(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid user ID"))
		return
	}

	var req dto.SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.SetRole(ctx, userID, models.RoleType(req.Role)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Str("role", req.Role).Msg("User role updated")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"updated": true}))
}

// CheckAdmin answers whether the caller holds the admin role
// @Summary Check admin capability
// @Description Answers whether the given email holds the admin role. The check is bound to the caller's own identity; asking about another email answers false rather than erroring.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse "Capability answer"
// @Router /users/{email}/admin [get]
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")
	caller := middleware.AuthenticatedEmail(ctx)

	hasRole, err := c.authzService.IsAdmin(ctx, caller, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.RoleCheckResponse{
		Email:   email,
		HasRole: hasRole,
	}))
}

// CheckInstructor answers whether the caller holds the instructor role
// @Summary Check instructor capability
// @Description Answers whether the given email holds the instructor role, bound to the caller's own identity.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse "Capability answer"
// @Router /users/{email}/instructor [get]
func (c *UserController) CheckInstructor(ctx *gin.Context) {
	email := ctx.Param("email")
	caller := middleware.AuthenticatedEmail(ctx)

	hasRole, err := c.authzService.IsInstructor(ctx, caller, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.RoleCheckResponse{
		Email:   email,
		HasRole: hasRole,
	}))
}
