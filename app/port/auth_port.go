package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"
	"errors"
	"time"

	"member-service/app/domain"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by SessionCache.Get when no entry exists for the
// key. For refresh-token keys an absent entry means "no active session".
var ErrCacheMiss = errors.New("cache miss")

// AuthUsecase defines the authentication lifecycle business logic interface
type AuthUsecase interface {
	// Account flows
	SignUp(ctx context.Context, req domain.SignUpRequest) error
	ResetPassword(ctx context.Context, email, name string) error

	// Session lifecycle
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Reissue(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error

	// Authorize checks cryptographic validity and the revocation marker,
	// returning the member id encoded in the token.
	Authorize(ctx context.Context, accessToken string) (uuid.UUID, error)
}

// OAuthUsecase defines the SNS (Kakao) login business logic interface
type OAuthUsecase interface {
	AuthorizeURL() string
	Login(ctx context.Context, code string) (*domain.TokenPair, error)
}

// TokenProvider defines the token issuer contract
type TokenProvider interface {
	Issue(member *domain.Member) (*domain.TokenPair, error)
	Validate(token string) bool
	ParseMemberID(token string) (uuid.UUID, error)
	RemainingTTL(token string) (time.Duration, error)
}

// SessionCache defines the TTL key-value store backing refresh tokens and
// access-token revocation markers. Expiry is handled by the store itself.
type SessionCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// OAuthGateway defines the OAuth provider integration interface
type OAuthGateway interface {
	AuthorizeURL() string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, oauthToken string) (*domain.OAuthProfile, error)
}

// MailSender defines the mail delivery gateway interface
type MailSender interface {
	SendPasswordReset(ctx context.Context, to, name, tempPassword string) error
}
