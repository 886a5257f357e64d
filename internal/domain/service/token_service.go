package service

import (
	"time"

	"workgroup/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID         int64  `json:"uid"`
	Role           string `json:"role"`
	WorkingGroupID *int64 `json:"working_group_id,omitempty"`
	GroupName      string `json:"group_name,omitempty"`
	jwt.RegisteredClaims
}

// Username returns the subject of the token.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a new access token for the claims. Registered time claims are set by the service.
	GenerateAccessToken(claims Claims) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
