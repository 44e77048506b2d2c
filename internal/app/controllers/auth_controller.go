// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/classbooker/internal/app/models/dto"
	"github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user self-registration
// @Summary Register a new user
// @Description Creates a student account. Registering an email that already exists is a no-op and still answers 200.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 200 {object} dto.APIResponse "Registration accepted"
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.AlreadyExists {
		c.logger.Debug().Str("email", req.Email).Msg("Registration for existing email ignored")
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(result))
}

// Login handles credential verification and token issuance
// @Summary Log in
// @Description Verifies credentials and issues a bearer token carrying the user's identity and role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "User credentials"
// @Success 200 {object} dto.APIResponse "Token issued"
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 401 {object} dto.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(result))
}
