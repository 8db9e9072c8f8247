package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"member-service/app/domain"
	"member-service/app/driver/kakao"
	"member-service/app/port"
)

// OAuthGateway implements port.OAuthGateway over the Kakao client.
// It acts as an anti-corruption layer between the domain and the provider's
// wire format.
type OAuthGateway struct {
	client *kakao.Client
	logger *slog.Logger
}

// NewOAuthGateway creates a new OAuthGateway instance
func NewOAuthGateway(client *kakao.Client, logger *slog.Logger) port.OAuthGateway {
	return &OAuthGateway{
		client: client,
		logger: logger.With("component", "oauth_gateway"),
	}
}

// AuthorizeURL returns the provider URL the member is redirected to
func (g *OAuthGateway) AuthorizeURL() string {
	return g.client.AuthorizeURL()
}

// ExchangeCode exchanges an authorization code for a provider access token
func (g *OAuthGateway) ExchangeCode(ctx context.Context, code string) (string, error) {
	tokenResp, err := g.client.ExchangeCode(ctx, code)
	if err != nil {
		g.logger.Error("failed to exchange authorization code", "error", err)
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return tokenResp.AccessToken, nil
}

// FetchProfile fetches the member's account profile from the provider
func (g *OAuthGateway) FetchProfile(ctx context.Context, oauthToken string) (*domain.OAuthProfile, error) {
	user, err := g.client.FetchUser(ctx, oauthToken)
	if err != nil {
		g.logger.Error("failed to fetch oauth profile", "error", err)
		return nil, fmt.Errorf("failed to fetch oauth profile: %w", err)
	}

	if user.KakaoAccount.Email == "" {
		return nil, fmt.Errorf("oauth profile contained no email")
	}

	g.logger.Info("oauth profile fetched", "nickname", user.Properties.Nickname)

	return &domain.OAuthProfile{
		Email:    user.KakaoAccount.Email,
		Nickname: user.Properties.Nickname,
		ImageURL: user.Properties.ProfileImage,
	}, nil
}
