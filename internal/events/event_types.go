package events

import (
	"time"

	"github.com/spec-kit/tracking-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded   EventType = "login_succeeded"
	EventTrackingRequest  EventType = "tracking_requested"
	EventTrackingDenied   EventType = "tracking_denied"
	EventTrackingNotFound EventType = "tracking_not_found"
)

// Actor encapsulates the identity behind an event.
type Actor struct {
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginPayload payload.
type LoginPayload struct {
	Username string `json:"username"`
}

// TrackingPayload payload.
type TrackingPayload struct {
	ContainerNumber string `json:"container_number"`
	OrderID         string `json:"order_id,omitempty"`
}
