package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/tracking-service/internal/domain"
)

// CustomerRepository defines read access to the customer directory. The
// directory is written by the peer system; this service only verifies
// credentials against it.
type CustomerRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	const query = `
        SELECT id, name, username, password_hash, active_flag
        FROM customers WHERE username=$1`

	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Username,
		&customer.PasswordHash,
		&customer.Active,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}
