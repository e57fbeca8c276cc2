package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
	"github.com/trackspend/expense_tracker_app/internal/middleware"
	"github.com/trackspend/expense_tracker_app/internal/platform/config"
	"github.com/trackspend/expense_tracker_app/internal/utils"
)

type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// signUp godoc
// @Summary Register a new user
// @Description Creates an account and returns the user with a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.SignUpRequest true "Registration details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 409 {object} dto.Response "Email already registered"
// @Router /auth/signup [post]
func (h *authHandler) signUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(dto.SignUpBindingError(err), "Invalid input")))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.Err(apperrors.MessageFor(err, "User with this email already exists")))
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to register user"))
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to register user"))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("User registered successfully", dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	}))
}

// signIn godoc
// @Summary Sign in
// @Description Verifies credentials and returns the user with a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Router /auth/signin [post]
func (h *authHandler) signIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(dto.SignInBindingError(err), "Invalid input")))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.Err("Invalid email or password"))
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to sign in"))
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to sign in"))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("User signed in successfully", dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	}))
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *authHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("User not found"))
			return
		}
		logger.Error("Failed to load profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to retrieve profile"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProfileResponse(user)))
}
