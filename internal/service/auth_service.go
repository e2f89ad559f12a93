package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tracking-service/internal/auth"
	"github.com/spec-kit/tracking-service/internal/config"
	"github.com/spec-kit/tracking-service/internal/domain"
	"github.com/spec-kit/tracking-service/internal/events"
	"github.com/spec-kit/tracking-service/internal/repository"
)

// Authentication failure modes. All are client-input errors; infrastructure
// failures surface as ErrRepositoryUnavailable and are never folded into
// "not found".
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDisabled       = errors.New("account disabled")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// AuthService resolves a login name and password into an authenticated
// identity and a signed bearer token.
type AuthService struct {
	customers  repository.CustomerRepository
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CustomerRepo repository.CustomerRepository
	StaffRepo    repository.StaffRepository
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		customers:  deps.CustomerRepo,
		staff:      deps.StaffRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLHours),
		dispatcher: deps.Dispatcher,
	}
}

// Login authenticates a login name against both directories and issues a
// token on success.
//
// The lookup order is fixed policy: the customer directory is consulted
// first, so a login name present in both directories always resolves as a
// customer. Disabled accounts never authenticate, even with a correct
// password.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Identity, string, time.Time, error) {
	customer, err := s.customers.GetByUsername(ctx, username)
	if err == nil {
		return s.loginCustomer(ctx, customer, password)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Identity{}, "", time.Time{}, errors.Join(ErrRepositoryUnavailable, err)
	}

	staff, err := s.staff.GetByUsername(ctx, username)
	if err == nil {
		return s.loginStaff(ctx, staff, password)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Identity{}, "", time.Time{}, errors.Join(ErrRepositoryUnavailable, err)
	}

	return domain.Identity{}, "", time.Time{}, ErrUserNotFound
}

func (s *AuthService) loginCustomer(ctx context.Context, customer *domain.Customer, password string) (domain.Identity, string, time.Time, error) {
	if !customer.Active {
		return domain.Identity{}, "", time.Time{}, ErrAccountDisabled
	}
	if !auth.VerifyPassword(password, customer.PasswordHash) {
		return domain.Identity{}, "", time.Time{}, ErrInvalidCredentials
	}

	identity := domain.Identity{
		SubjectID:   customer.ID,
		DisplayName: customer.Name,
		Role:        domain.RoleCustomer,
	}
	return s.issue(ctx, identity, customer.Username)
}

func (s *AuthService) loginStaff(ctx context.Context, staff *domain.StaffUser, password string) (domain.Identity, string, time.Time, error) {
	if !staff.Active {
		return domain.Identity{}, "", time.Time{}, ErrAccountDisabled
	}
	if !auth.VerifyPassword(password, staff.PasswordHash) {
		return domain.Identity{}, "", time.Time{}, ErrInvalidCredentials
	}

	identity := domain.Identity{
		SubjectID:   staff.ID,
		DisplayName: staff.DisplayName(),
		Role:        domain.RoleStaff,
	}
	return s.issue(ctx, identity, staff.Username)
}

func (s *AuthService) issue(ctx context.Context, identity domain.Identity, username string) (domain.Identity, string, time.Time, error) {
	token, expiresAt, err := s.tokenMgr.Issue(identity)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLoginSucceeded,
			Actor:     events.Actor{SubjectID: identity.SubjectID, Role: identity.Role},
			Timestamp: time.Now(),
			Payload:   events.LoginPayload{Username: username},
		})
	}
	return identity, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
