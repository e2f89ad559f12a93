package dto

// TrackingRequest payload for container lookups.
type TrackingRequest struct {
	ContainerNumber string `json:"container_number"`
}
