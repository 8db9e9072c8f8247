package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"member-service/app/domain"
	"member-service/app/port"
	"member-service/app/utils/password"
)

// OAuthUseCase implements SNS login. A first login provisions the account; a
// later login reuses it and refreshes the profile image from the provider.
type OAuthUseCase struct {
	memberRepo port.MemberRepository
	gateway    port.OAuthGateway
	tokens     port.TokenProvider
	sessions   port.SessionCache
	logger     *slog.Logger
}

// NewOAuthUseCase creates a new OAuthUseCase instance
func NewOAuthUseCase(
	memberRepo port.MemberRepository,
	gateway port.OAuthGateway,
	tokens port.TokenProvider,
	sessions port.SessionCache,
	logger *slog.Logger,
) *OAuthUseCase {
	return &OAuthUseCase{
		memberRepo: memberRepo,
		gateway:    gateway,
		tokens:     tokens,
		sessions:   sessions,
		logger:     logger.With("component", "oauth_usecase"),
	}
}

// AuthorizeURL returns the provider's consent page URL
func (uc *OAuthUseCase) AuthorizeURL() string {
	return uc.gateway.AuthorizeURL()
}

// Login exchanges the authorization code for a provider profile and starts a
// session for the matching member, provisioning one on first login.
func (uc *OAuthUseCase) Login(ctx context.Context, code string) (*domain.TokenPair, error) {
	oauthToken, err := uc.gateway.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	profile, err := uc.gateway.FetchProfile(ctx, oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	member, err := uc.memberRepo.FindByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, domain.ErrMemberNotFound):
		member, err = uc.provision(ctx, profile)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to find member: %w", err)
	default:
		if err := member.CheckLoginable(); err != nil {
			return nil, err
		}
		if member.State == domain.MemberStateWaiting {
			member.Activate()
			if err := uc.memberRepo.UpdateState(ctx, member.ID, domain.MemberStateActive, nil); err != nil {
				return nil, fmt.Errorf("failed to reactivate member: %w", err)
			}
		}
		if member.SNS {
			member.RefreshSNSProfile(profile.ImageURL)
			if err := uc.memberRepo.Update(ctx, member); err != nil {
				return nil, fmt.Errorf("failed to refresh profile: %w", err)
			}
		}
	}

	pair, err := uc.tokens.Issue(member)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	key := domain.RefreshKey(member.ID.String())
	if err := uc.sessions.Set(ctx, key, pair.RefreshToken, pair.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	uc.logger.Info("sns session started", "member_id", member.ID.String())
	return pair, nil
}

// provision creates the account backing a first-time SNS login. The password
// slot is filled with a hash of the email; it is never used to log in.
func (uc *OAuthUseCase) provision(ctx context.Context, profile *domain.OAuthProfile) (*domain.Member, error) {
	hash, err := password.Hash(profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	member, err := domain.NewSNSMember(profile.Email, profile.Nickname, profile.ImageURL, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	uc.logger.Info("sns member provisioned", "member_id", member.ID.String())
	return member, nil
}

var _ port.OAuthUsecase = (*OAuthUseCase)(nil)
