package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tracking-service/internal/api/dto"
	"github.com/spec-kit/tracking-service/internal/service"
	apperrors "github.com/spec-kit/tracking-service/pkg/util"
)

// AuthHandler exposes the login endpoint for both user kinds.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required")
	}

	// The username is trimmed; the password never is.
	username := strings.TrimSpace(req.Username)

	identity, token, _, err := h.auth.Login(c.UserContext(), username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return apperrors.NewNotFound("USER_NOT_FOUND", "user not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			return apperrors.NewUnauthorized("INVALID_CREDENTIALS", "invalid credentials")
		case errors.Is(err, service.ErrAccountDisabled):
			return apperrors.NewUnauthorized("ACCOUNT_DISABLED", "account is disabled")
		case errors.Is(err, service.ErrRepositoryUnavailable):
			return apperrors.NewUnavailable("database temporarily unavailable, please retry later", err)
		default:
			return apperrors.NewInternalError(err)
		}
	}

	return c.JSON(dto.LoginResponse{
		User:        identity.DisplayName,
		AccessToken: token,
		UserType:    string(identity.Role),
	})
}
