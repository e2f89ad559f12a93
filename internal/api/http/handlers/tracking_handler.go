package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tracking-service/internal/api/dto"
	"github.com/spec-kit/tracking-service/internal/auth"
	"github.com/spec-kit/tracking-service/internal/service"
	apperrors "github.com/spec-kit/tracking-service/pkg/util"
)

// TrackingHandler exposes the container lookup endpoint.
type TrackingHandler struct {
	tracking *service.TrackingService
}

// NewTrackingHandler constructs handler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: trackingService}
}

// Track handles POST /order_tracking.
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("TOKEN_INVALID", "authentication required")
	}

	var req dto.TrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	containerNumber := strings.TrimSpace(req.ContainerNumber)
	if containerNumber == "" {
		return apperrors.NewValidationError("container_number required")
	}

	result, err := h.tracking.Track(c.UserContext(), containerNumber, identity)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryUnavailable) {
			return apperrors.NewUnavailable("database temporarily unavailable, please retry later", err)
		}
		return apperrors.NewInternalError(err)
	}

	return c.JSON(result)
}
