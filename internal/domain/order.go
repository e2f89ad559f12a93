package domain

import "time"

// Order is the read model for a container order. The repository owns its
// lifecycle entirely; this service never writes it.
type Order struct {
	ID              string
	OrderID         string
	ContainerNumber string
	// OwnerCustomerID is nil for administratively created orders, which are
	// visible to staff only.
	OwnerCustomerID *string
	CreatedAt       time.Time
	ETA             *time.Time
	ContainerType   *string
	WeightLbs       *float64
	SpecialHandling bool
	Events          []OrderEvent
	Shipments       []Shipment
}

// OrderEvent is one node of the pre-port history. The stored order of
// events is authoritative; nothing downstream re-sorts them.
type OrderEvent struct {
	Status      string     `json:"status"`
	Description string     `json:"description"`
	Location    *string    `json:"location,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// Shipment is one post-port delivery leg.
type Shipment struct {
	Destination *string    `json:"destination"`
	IsShipped   bool       `json:"is_shipped"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	IsArrived   bool       `json:"is_arrived"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
}
