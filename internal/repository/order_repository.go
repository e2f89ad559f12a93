package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/tracking-service/internal/domain"
)

// OrderRepository loads the order read model for a container. Returns
// pgx.ErrNoRows when no order references the container number.
type OrderRepository interface {
	FindByContainer(ctx context.Context, containerNumber string) (*domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) FindByContainer(ctx context.Context, containerNumber string) (*domain.Order, error) {
	const orderQuery = `
        SELECT id, order_id, container_number, owner_customer_id, created_at, eta,
               container_type, weight_lbs, special_handling
        FROM orders WHERE container_number=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, orderQuery, containerNumber).Scan(
		&order.ID,
		&order.OrderID,
		&order.ContainerNumber,
		&order.OwnerCustomerID,
		&order.CreatedAt,
		&order.ETA,
		&order.ContainerType,
		&order.WeightLbs,
		&order.SpecialHandling,
	); err != nil {
		return nil, err
	}

	events, err := r.loadEvents(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Events = events

	shipments, err := r.loadShipments(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Shipments = shipments

	return &order, nil
}

// loadEvents preserves the stored position order; the repository is the
// source of ordering truth for the timeline.
func (r *orderRepository) loadEvents(ctx context.Context, orderID string) ([]domain.OrderEvent, error) {
	const query = `
        SELECT status, description, location, occurred_at
        FROM order_events WHERE order_id=$1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.OrderEvent
	for rows.Next() {
		var event domain.OrderEvent
		if err := rows.Scan(
			&event.Status,
			&event.Description,
			&event.Location,
			&event.Timestamp,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *orderRepository) loadShipments(ctx context.Context, orderID string) ([]domain.Shipment, error) {
	const query = `
        SELECT destination, is_shipped, shipped_at, is_arrived, arrived_at
        FROM shipments WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shipments []domain.Shipment
	for rows.Next() {
		var shipment domain.Shipment
		if err := rows.Scan(
			&shipment.Destination,
			&shipment.IsShipped,
			&shipment.ShippedAt,
			&shipment.IsArrived,
			&shipment.ArrivedAt,
		); err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	return shipments, rows.Err()
}
