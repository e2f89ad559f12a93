package domain

import "time"

// ContainerInfo carries the container metadata shown on the pre-port
// timeline.
type ContainerInfo struct {
	ContainerNumber string   `json:"container_number"`
	ContainerType   *string  `json:"container_type,omitempty"`
	WeightLbs       *float64 `json:"weight_lbs,omitempty"`
	SpecialHandling bool     `json:"is_special_container"`
}

// PreportTimeline covers order creation through port offload.
type PreportTimeline struct {
	OrderID   string        `json:"order_id"`
	CreatedAt time.Time     `json:"created_at"`
	ETA       *time.Time    `json:"eta,omitempty"`
	Container ContainerInfo `json:"container"`
	History   []OrderEvent  `json:"history"`
}

// PostportTimeline lists delivery legs after port offload. An order with no
// shipments yields an empty, non-nil list so callers can tell "nothing yet"
// from "not allowed to see".
type PostportTimeline struct {
	Shipments []Shipment `json:"shipment"`
}

// TrackingResult is the response envelope for a container lookup.
//
// Invariants: when HasPermission is false both timelines are nil and Message
// names the container; when the container does not exist HasPermission is
// true (no exposure decision was needed) and Message explains the absence.
type TrackingResult struct {
	Preport       *PreportTimeline  `json:"preport_timenode"`
	Postport      *PostportTimeline `json:"postport_timenode"`
	HasPermission bool              `json:"has_permission"`
	Message       string            `json:"message,omitempty"`
}
