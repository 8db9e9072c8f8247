package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"member-service/app/domain"
	"member-service/app/port"
	"member-service/app/utils/password"
)

// AuthUseCase implements the authentication lifecycle: registration, password
// login, token reissue, logout and password reset.
type AuthUseCase struct {
	memberRepo port.MemberRepository
	tokens     port.TokenProvider
	sessions   port.SessionCache
	mail       port.MailSender
	logger     *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	memberRepo port.MemberRepository,
	tokens port.TokenProvider,
	sessions port.SessionCache,
	mail port.MailSender,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		memberRepo: memberRepo,
		tokens:     tokens,
		sessions:   sessions,
		mail:       mail,
		logger:     logger.With("component", "auth_usecase"),
	}
}

// SignUp registers a new member. Email and nickname must both be unused.
func (uc *AuthUseCase) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	exists, err := uc.memberRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: email taken", domain.ErrDuplicateMember)
	}

	exists, err = uc.memberRepo.ExistsByNickname(ctx, req.Nickname)
	if err != nil {
		return fmt.Errorf("failed to check nickname: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: nickname taken", domain.ErrDuplicateMember)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	member, err := domain.NewMember(req.Email, req.Name, req.Nickname, hash)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	uc.logger.Info("member registered", "member_id", member.ID.String())
	return nil
}

// Login verifies the credentials and mints a fresh token pair. The refresh
// token is cached under the member's key, replacing any earlier session.
// A member waiting on resignation is reactivated by logging in.
func (uc *AuthUseCase) Login(ctx context.Context, email, pw string) (*domain.TokenPair, error) {
	member, err := uc.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	if err := member.CheckLoginable(); err != nil {
		return nil, err
	}

	if !password.Verify(member.PasswordHash, pw) {
		return nil, domain.ErrInvalidCredentials
	}

	if member.State == domain.MemberStateWaiting {
		member.Activate()
		if err := uc.memberRepo.UpdateState(ctx, member.ID, domain.MemberStateActive, nil); err != nil {
			return nil, fmt.Errorf("failed to reactivate member: %w", err)
		}
		uc.logger.Info("member reactivated on login", "member_id", member.ID.String())
	}

	return uc.startSession(ctx, member)
}

// Reissue exchanges a valid, current refresh token for a fresh pair. The
// presented token must match the cached one; a mismatch means the token was
// superseded by a later login or reissue.
func (uc *AuthUseCase) Reissue(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if !uc.tokens.Validate(refreshToken) {
		return nil, domain.ErrInvalidRefreshToken
	}

	memberID, err := uc.tokens.ParseMemberID(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	// The account must still exist before the session is consulted; a member
	// deleted after their last login reads as gone, not as a stale session.
	member, err := uc.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	cached, err := uc.sessions.Get(ctx, domain.RefreshKey(memberID.String()))
	if err != nil {
		if errors.Is(err, port.ErrCacheMiss) {
			return nil, domain.ErrRefreshTokenNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if cached != refreshToken {
		return nil, domain.ErrRefreshTokenMismatch
	}

	return uc.startSession(ctx, member)
}

// Logout revokes the presented access token and drops the member's session.
// The raw access token is marked revoked for its remaining lifetime so the
// marker expires together with the token itself.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	if !uc.tokens.Validate(accessToken) {
		return domain.ErrInvalidAccessToken
	}

	memberID, err := uc.tokens.ParseMemberID(accessToken)
	if err != nil {
		return domain.ErrInvalidAccessToken
	}

	if err := uc.sessions.Delete(ctx, domain.RefreshKey(memberID.String())); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}

	remaining, err := uc.tokens.RemainingTTL(accessToken)
	if err != nil {
		return domain.ErrInvalidAccessToken
	}
	if remaining > 0 {
		if err := uc.sessions.Set(ctx, accessToken, domain.RevokedMarker, remaining); err != nil {
			return fmt.Errorf("failed to mark token revoked: %w", err)
		}
	}

	uc.logger.Info("member logged out", "member_id", memberID.String())
	return nil
}

// Authorize checks the access token's signature, expiry and revocation marker
func (uc *AuthUseCase) Authorize(ctx context.Context, accessToken string) (uuid.UUID, error) {
	if !uc.tokens.Validate(accessToken) {
		return uuid.Nil, domain.ErrInvalidAccessToken
	}

	marker, err := uc.sessions.Get(ctx, accessToken)
	if err != nil && !errors.Is(err, port.ErrCacheMiss) {
		return uuid.Nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if err == nil && marker == domain.RevokedMarker {
		return uuid.Nil, domain.ErrInvalidAccessToken
	}

	memberID, err := uc.tokens.ParseMemberID(accessToken)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidAccessToken
	}

	return memberID, nil
}

// ResetPassword replaces the member's password with a generated temporary one
// and mails it to the registered address. Both email and name must match.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email, name string) error {
	member, err := uc.memberRepo.FindByEmailAndName(ctx, email, name)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}

	temp, err := password.GenerateTemp()
	if err != nil {
		return fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hash, err := password.Hash(temp)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.memberRepo.UpdatePassword(ctx, member.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.mail.SendPasswordReset(ctx, member.Email, member.Name, temp); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}

	uc.logger.Info("password reset issued", "member_id", member.ID.String())
	return nil
}

// startSession mints a token pair and stores the refresh token, replacing any
// previous session for the member.
func (uc *AuthUseCase) startSession(ctx context.Context, member *domain.Member) (*domain.TokenPair, error) {
	pair, err := uc.tokens.Issue(member)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	key := domain.RefreshKey(member.ID.String())
	if err := uc.sessions.Set(ctx, key, pair.RefreshToken, pair.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	uc.logger.Info("session started", "member_id", member.ID.String())
	return pair, nil
}

var _ port.AuthUsecase = (*AuthUseCase)(nil)
