package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tracking-service/internal/auth"
	"github.com/spec-kit/tracking-service/internal/config"
	"github.com/spec-kit/tracking-service/internal/domain"
)

type fakeCustomerRepo struct {
	byUsername map[string]*domain.Customer
	err        error
}

func (f *fakeCustomerRepo) GetByUsername(_ context.Context, username string) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if customer, ok := f.byUsername[username]; ok {
		return customer, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeStaffRepo struct {
	byUsername map[string]*domain.StaffUser
	err        error
}

func (f *fakeStaffRepo) GetByUsername(_ context.Context, username string) (*domain.StaffUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	if staff, ok := f.byUsername[username]; ok {
		return staff, nil
	}
	return nil, pgx.ErrNoRows
}

func hashFor(password string) string {
	return auth.HashPassword(password, "test-salt-0001", 1000)
}

func newTestAuthService(customers *fakeCustomerRepo, staff *fakeStaffRepo) *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret-key", AccessTokenTTLHours: 1}}
	return NewAuthService(cfg, AuthDependencies{CustomerRepo: customers, StaffRepo: staff})
}

func TestLoginCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{byUsername: map[string]*domain.Customer{
		"alice": {ID: "C1", Name: "Acme Imports", Username: "alice", PasswordHash: hashFor("alice-password"), Active: true},
	}}
	staff := &fakeStaffRepo{byUsername: map[string]*domain.StaffUser{}}
	svc := newTestAuthService(customers, staff)

	identity, token, _, err := svc.Login(context.Background(), "alice", "alice-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", identity.Role)
	}
	if identity.SubjectID != "C1" {
		t.Fatalf("expected subject C1, got %q", identity.SubjectID)
	}
	if identity.DisplayName != "Acme Imports" {
		t.Fatalf("expected display name Acme Imports, got %q", identity.DisplayName)
	}

	recovered, err := svc.TokenManager().Validate(token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if recovered != identity {
		t.Fatalf("token identity mismatch: got %+v, want %+v", recovered, identity)
	}
}

func TestLoginStaffOnlyName(t *testing.T) {
	customers := &fakeCustomerRepo{byUsername: map[string]*domain.Customer{}}
	staff := &fakeStaffRepo{byUsername: map[string]*domain.StaffUser{
		"bob": {ID: "S9", Username: "bob", FirstName: "Bob", LastName: "Porter", PasswordHash: hashFor("bob-password"), Active: true},
	}}
	svc := newTestAuthService(customers, staff)

	identity, _, _, err := svc.Login(context.Background(), "bob", "bob-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Role != domain.RoleStaff {
		t.Fatalf("expected staff role, got %q", identity.Role)
	}
	if identity.DisplayName != "Bob Porter" {
		t.Fatalf("expected display name Bob Porter, got %q", identity.DisplayName)
	}
}

func TestLoginCustomerDirectoryTakesPrecedence(t *testing.T) {
	// The same login name in both directories must always resolve as a
	// customer, even when only the staff record's password would match.
	customers := &fakeCustomerRepo{byUsername: map[string]*domain.Customer{
		"shared": {ID: "C7", Name: "Shared Co", Username: "shared", PasswordHash: hashFor("customer-pw"), Active: true},
	}}
	staff := &fakeStaffRepo{byUsername: map[string]*domain.StaffUser{
		"shared": {ID: "S7", Username: "shared", PasswordHash: hashFor("staff-pw"), Active: true},
	}}
	svc := newTestAuthService(customers, staff)

	identity, _, _, err := svc.Login(context.Background(), "shared", "customer-pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", identity.Role)
	}

	if _, _, _, err := svc.Login(context.Background(), "shared", "staff-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials via customer directory, got %v", err)
	}
}

func TestLoginDisabledAccounts(t *testing.T) {
	customers := &fakeCustomerRepo{byUsername: map[string]*domain.Customer{
		"dormant": {ID: "C2", Name: "Dormant Ltd", Username: "dormant", PasswordHash: hashFor("dormant-pw"), Active: false},
	}}
	staff := &fakeStaffRepo{byUsername: map[string]*domain.StaffUser{
		"exstaff": {ID: "S2", Username: "exstaff", PasswordHash: hashFor("exstaff-pw"), Active: false},
	}}
	svc := newTestAuthService(customers, staff)

	// Disabled accounts never authenticate, even with the correct password.
	if _, _, _, err := svc.Login(context.Background(), "dormant", "dormant-pw"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled for customer, got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "exstaff", "exstaff-pw"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled for staff, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	customers := &fakeCustomerRepo{byUsername: map[string]*domain.Customer{
		"alice": {ID: "C1", Name: "Acme Imports", Username: "alice", PasswordHash: hashFor("alice-password"), Active: true},
	}}
	staff := &fakeStaffRepo{byUsername: map[string]*domain.StaffUser{
		"bob": {ID: "S9", Username: "bob", PasswordHash: hashFor("bob-password"), Active: true},
	}}
	svc := newTestAuthService(customers, staff)

	if _, _, _, err := svc.Login(context.Background(), "alice", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for customer, got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "bob", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for staff, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(
		&fakeCustomerRepo{byUsername: map[string]*domain.Customer{}},
		&fakeStaffRepo{byUsername: map[string]*domain.StaffUser{}},
	)

	if _, _, _, err := svc.Login(context.Background(), "ghost", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginRepositoryFailure(t *testing.T) {
	infraErr := errors.New("connection refused")

	svc := newTestAuthService(
		&fakeCustomerRepo{err: infraErr},
		&fakeStaffRepo{byUsername: map[string]*domain.StaffUser{}},
	)

	_, _, _, err := svc.Login(context.Background(), "alice", "alice-password")
	if !errors.Is(err, ErrRepositoryUnavailable) {
		t.Fatalf("expected ErrRepositoryUnavailable, got %v", err)
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Fatalf("infrastructure failure must not be reported as user not found")
	}
}
