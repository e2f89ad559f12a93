package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/tracking-service/internal/domain"
)

// Token validation failure modes. Expiry is distinguished so clients can
// tell "log in again" from "this token was never good".
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// TokenManager issues and validates the HS256 bearer tokens shared with the
// peer system. Tokens are stateless: signature plus expiry fully determine
// validity, and the embedded identity is the sole source of truth for role
// and subject after login.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager for the shared signing secret.
func NewTokenManager(secret string, ttlHours int) *TokenManager {
	if ttlHours <= 0 {
		ttlHours = 12
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

// Claims is the JWT payload. Field names match what the peer system emits.
type Claims struct {
	DisplayName string      `json:"display_name"`
	Role        domain.Role `json:"user_type"`
	jwt.RegisteredClaims
}

// Issue signs a token embedding the identity and an expiry timestamp.
func (tm *TokenManager) Issue(identity domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate checks signature and expiry and returns the embedded identity
// unchanged. It fails with ErrTokenExpired when only the expiry has passed
// and ErrTokenInvalid for every other defect.
func (tm *TokenManager) Validate(tokenStr string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, ErrTokenInvalid
	}
	if claims.Role != domain.RoleCustomer && claims.Role != domain.RoleStaff {
		return domain.Identity{}, ErrTokenInvalid
	}

	return domain.Identity{
		SubjectID:   claims.Subject,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
	}, nil
}
