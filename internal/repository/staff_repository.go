package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/tracking-service/internal/domain"
)

// StaffRepository defines read access to the staff directory.
type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	const query = `
        SELECT id, username, first_name, last_name, email, password_hash, active_flag
        FROM staff_users WHERE username=$1`

	var staff domain.StaffUser
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&staff.ID,
		&staff.Username,
		&staff.FirstName,
		&staff.LastName,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Active,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}
