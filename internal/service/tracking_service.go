package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tracking-service/internal/domain"
	"github.com/spec-kit/tracking-service/internal/events"
	"github.com/spec-kit/tracking-service/internal/repository"
)

// TrackingService assembles the permission-filtered logistics timeline for
// a container. Permission denial and container absence are successful
// results, not errors; only infrastructure failures return an error.
type TrackingService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewTrackingService builds the service.
func NewTrackingService(orders repository.OrderRepository, dispatcher events.Dispatcher) *TrackingService {
	return &TrackingService{orders: orders, dispatcher: dispatcher}
}

// Track resolves the order behind a container number and builds the
// two-phase timeline the identity is allowed to see.
//
// Staff may view any container. Customers may view a container only when the
// order's owner matches their subject id; ownerless orders are staff-only.
func (s *TrackingService) Track(ctx context.Context, containerNumber string, identity domain.Identity) (domain.TrackingResult, error) {
	order, err := s.orders.FindByContainer(ctx, containerNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence of data is not a permission failure.
			s.publish(ctx, events.EventTrackingNotFound, identity, containerNumber, "")
			return domain.TrackingResult{
				HasPermission: true,
				Message:       fmt.Sprintf("no information found for container %s", containerNumber),
			}, nil
		}
		return domain.TrackingResult{}, errors.Join(ErrRepositoryUnavailable, err)
	}

	if identity.IsCustomer() && !ownedBy(order, identity.SubjectID) {
		s.publish(ctx, events.EventTrackingDenied, identity, containerNumber, order.OrderID)
		return domain.TrackingResult{
			HasPermission: false,
			Message: fmt.Sprintf(
				"you do not have permission to view container %s; it belongs to another customer",
				containerNumber),
		}, nil
	}

	s.publish(ctx, events.EventTrackingRequest, identity, containerNumber, order.OrderID)
	return domain.TrackingResult{
		Preport:       buildPreport(order),
		Postport:      buildPostport(order),
		HasPermission: true,
	}, nil
}

func ownedBy(order *domain.Order, customerID string) bool {
	return order.OwnerCustomerID != nil && *order.OwnerCustomerID == customerID
}

// buildPreport renders the event history exactly as stored; the repository
// is the source of ordering truth.
func buildPreport(order *domain.Order) *domain.PreportTimeline {
	history := make([]domain.OrderEvent, len(order.Events))
	copy(history, order.Events)

	return &domain.PreportTimeline{
		OrderID:   order.OrderID,
		CreatedAt: order.CreatedAt,
		ETA:       order.ETA,
		Container: domain.ContainerInfo{
			ContainerNumber: order.ContainerNumber,
			ContainerType:   order.ContainerType,
			WeightLbs:       order.WeightLbs,
			SpecialHandling: order.SpecialHandling,
		},
		History: history,
	}
}

// buildPostport always returns a non-nil shipment list so "exists but
// empty" stays distinguishable from "not allowed to see".
func buildPostport(order *domain.Order) *domain.PostportTimeline {
	shipments := make([]domain.Shipment, len(order.Shipments))
	copy(shipments, order.Shipments)
	return &domain.PostportTimeline{Shipments: shipments}
}

func (s *TrackingService) publish(ctx context.Context, eventType events.EventType, identity domain.Identity, containerNumber, orderID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{SubjectID: identity.SubjectID, Role: identity.Role},
		Timestamp: time.Now(),
		Payload:   events.TrackingPayload{ContainerNumber: containerNumber, OrderID: orderID},
	})
}
