package token

import (
	"fmt"
	"time"

	"member-service/app/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Provider issues and validates the HS256-signed access/refresh token pair.
// The subject of both tokens is the member id; only the access token carries
// the privilege claim.
type Provider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Claims are the registered claims plus the member's privilege labels
type Claims struct {
	jwt.RegisteredClaims
	Privileges []string `json:"auth,omitempty"`
}

// NewProvider creates a token provider. The refresh lifetime must exceed the
// access lifetime so a pair can always be renewed before its session ends.
func NewProvider(secret string, accessTTL, refreshTTL time.Duration) (*Provider, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}
	if refreshTTL <= accessTTL {
		return nil, fmt.Errorf("refresh lifetime (%v) must exceed access lifetime (%v)", refreshTTL, accessTTL)
	}

	return &Provider{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Issue mints a token pair for the member
func (p *Provider) Issue(member *domain.Member) (*domain.TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(p.accessTTL)
	refreshExpiry := now.Add(p.refreshTTL)

	accessToken, err := p.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
		},
		Privileges: member.Privileges,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := p.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		GrantType:        "Bearer",
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiry,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

// Validate reports whether the token is well-formed, signed by us and unexpired
func (p *Provider) Validate(token string) bool {
	_, err := p.parse(token)
	return err == nil
}

// ParseMemberID extracts the member id encoded in the token's subject
func (p *Provider) ParseMemberID(token string) (uuid.UUID, error) {
	claims, err := p.parse(token)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return id, nil
}

// RemainingTTL returns the time left before the token's natural expiry
func (p *Provider) RemainingTTL(token string) (time.Duration, error) {
	claims, err := p.parse(token)
	if err != nil {
		return 0, err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (p *Provider) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *Provider) parse(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
