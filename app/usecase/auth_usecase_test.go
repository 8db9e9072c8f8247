package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"member-service/app/domain"
	mock_port "member-service/app/mocks"
	"member-service/app/port"
	"member-service/app/utils/password"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func createTestMember(t *testing.T, plaintext string) *domain.Member {
	t.Helper()
	hash, err := password.Hash(plaintext)
	require.NoError(t, err)
	member, err := domain.NewMember("hong@example.com", "홍길동", "gildong", hash)
	require.NoError(t, err)
	return member
}

func createTestPair(member *domain.Member) *domain.TokenPair {
	now := time.Now()
	return &domain.TokenPair{
		GrantType:        "Bearer",
		AccessToken:      "access-" + member.ID.String(),
		AccessExpiresAt:  now.Add(30 * time.Minute),
		RefreshToken:     "refresh-" + member.ID.String(),
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
	}
}

func newAuthUseCase(ctrl *gomock.Controller) (*AuthUseCase, *mock_port.MockMemberRepository, *mock_port.MockTokenProvider, *mock_port.MockSessionCache, *mock_port.MockMailSender) {
	repo := mock_port.NewMockMemberRepository(ctrl)
	tokens := mock_port.NewMockTokenProvider(ctrl)
	sessions := mock_port.NewMockSessionCache(ctrl)
	mail := mock_port.NewMockMailSender(ctrl)
	uc := NewAuthUseCase(repo, tokens, sessions, mail, testLogger())
	return uc, repo, tokens, sessions, mail
}

func TestAuthUseCase_SignUp(t *testing.T) {
	req := domain.SignUpRequest{
		Email:    "hong@example.com",
		Name:     "홍길동",
		Nickname: "gildong",
		Password: "hunter2!",
	}

	tests := []struct {
		name       string
		req        domain.SignUpRequest
		setupMocks func(*mock_port.MockMemberRepository)
		wantErr    error
	}{
		{
			name: "successful registration",
			req:  req,
			setupMocks: func(repo *mock_port.MockMemberRepository) {
				repo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, nil)
				repo.EXPECT().ExistsByNickname(gomock.Any(), req.Nickname).Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate email",
			req:  req,
			setupMocks: func(repo *mock_port.MockMemberRepository) {
				repo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(true, nil)
			},
			wantErr: domain.ErrDuplicateMember,
		},
		{
			name: "duplicate nickname",
			req:  req,
			setupMocks: func(repo *mock_port.MockMemberRepository) {
				repo.EXPECT().ExistsByEmail(gomock.Any(), req.Email).Return(false, nil)
				repo.EXPECT().ExistsByNickname(gomock.Any(), req.Nickname).Return(true, nil)
			},
			wantErr: domain.ErrDuplicateMember,
		},
		{
			name:       "empty password",
			req:        domain.SignUpRequest{Email: req.Email, Name: req.Name, Nickname: req.Nickname},
			setupMocks: func(repo *mock_port.MockMemberRepository) {},
			wantErr:    domain.ErrInvalidInput,
		},
		{
			name: "invalid email",
			req:  domain.SignUpRequest{Email: "not-an-email", Name: req.Name, Nickname: req.Nickname, Password: req.Password},
			setupMocks: func(repo *mock_port.MockMemberRepository) {
				repo.EXPECT().ExistsByEmail(gomock.Any(), "not-an-email").Return(false, nil)
				repo.EXPECT().ExistsByNickname(gomock.Any(), req.Nickname).Return(false, nil)
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, repo, _, _, _ := newAuthUseCase(ctrl)
			tt.setupMocks(repo)

			err := uc.SignUp(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthUseCase_SignUp_HashedPasswordStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo, _, _, _ := newAuthUseCase(ctrl)

	repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().ExistsByNickname(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Member) error {
			assert.NotEqual(t, "hunter2!", m.PasswordHash)
			assert.True(t, password.Verify(m.PasswordHash, "hunter2!"))
			assert.Equal(t, domain.MemberStateActive, m.State)
			return nil
		})

	err := uc.SignUp(context.Background(), domain.SignUpRequest{
		Email:    "hong@example.com",
		Name:     "홍길동",
		Nickname: "gildong",
		Password: "hunter2!",
	})
	require.NoError(t, err)
}

func TestAuthUseCase_Login(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*testing.T, *mock_port.MockMemberRepository, *mock_port.MockTokenProvider, *mock_port.MockSessionCache) *domain.Member
		password   string
		wantErr    error
	}{
		{
			name:     "successful login stores refresh token",
			password: "secret-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				pair := createTestPair(member)
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
				tokens.EXPECT().Issue(member).Return(pair, nil)
				sessions.EXPECT().
					Set(gomock.Any(), domain.RefreshKey(member.ID.String()), pair.RefreshToken, gomock.Any()).
					Return(nil)
				return member
			},
		},
		{
			name:     "wrong password",
			password: "wrong-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
				return member
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown email reads as member not found",
			password: "secret-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(nil, domain.ErrMemberNotFound)
				return member
			},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name:     "banned member rejected before password check",
			password: "secret-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				member.State = domain.MemberStateBanned
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
				return member
			},
			wantErr: domain.ErrMemberBanned,
		},
		{
			name:     "resigned member rejected",
			password: "secret-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				member.State = domain.MemberStateResigned
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
				return member
			},
			wantErr: domain.ErrMemberResigned,
		},
		{
			name:     "waiting member is reactivated on login",
			password: "secret-pw",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) *domain.Member {
				member := createTestMember(t, "secret-pw")
				now := time.Now()
				require.NoError(t, member.RequestResignation(now))
				pair := createTestPair(member)
				repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
				repo.EXPECT().UpdateState(gomock.Any(), member.ID, domain.MemberStateActive, nil).Return(nil)
				tokens.EXPECT().Issue(member).Return(pair, nil)
				sessions.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				return member
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, repo, tokens, sessions, _ := newAuthUseCase(ctrl)
			member := tt.setupMocks(t, repo, tokens, sessions)

			pair, err := uc.Login(context.Background(), member.Email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				require.NotNil(t, pair)
				assert.NotEmpty(t, pair.AccessToken)
				assert.NotEmpty(t, pair.RefreshToken)
			}
		})
	}
}

func TestAuthUseCase_Login_WaitingMemberClearsResignation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo, tokens, sessions, _ := newAuthUseCase(ctrl)

	member := createTestMember(t, "secret-pw")
	require.NoError(t, member.RequestResignation(time.Now()))

	repo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
	repo.EXPECT().UpdateState(gomock.Any(), member.ID, domain.MemberStateActive, nil).Return(nil)
	tokens.EXPECT().Issue(member).Return(createTestPair(member), nil)
	sessions.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.Login(context.Background(), member.Email, "secret-pw")
	require.NoError(t, err)

	assert.Equal(t, domain.MemberStateActive, member.State)
	assert.Nil(t, member.ResignationRequestedAt)
}

func TestAuthUseCase_Login_UnknownEmailIsNotACredentialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo, _, _, _ := newAuthUseCase(ctrl)
	repo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, domain.ErrMemberNotFound)

	pair, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUseCase_Reissue(t *testing.T) {
	memberID := uuid.New()
	refreshToken := "refresh-current"

	tests := []struct {
		name       string
		setupMocks func(*testing.T, *mock_port.MockMemberRepository, *mock_port.MockTokenProvider, *mock_port.MockSessionCache)
		wantErr    error
	}{
		{
			name: "valid current token is exchanged",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				member := createTestMember(t, "secret-pw")
				member.ID = memberID
				pair := createTestPair(member)
				tokens.EXPECT().Validate(refreshToken).Return(true)
				tokens.EXPECT().ParseMemberID(refreshToken).Return(memberID, nil)
				repo.EXPECT().FindByID(gomock.Any(), memberID).Return(member, nil)
				sessions.EXPECT().Get(gomock.Any(), domain.RefreshKey(memberID.String())).Return(refreshToken, nil)
				tokens.EXPECT().Issue(member).Return(pair, nil)
				sessions.EXPECT().
					Set(gomock.Any(), domain.RefreshKey(memberID.String()), pair.RefreshToken, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "signature or expiry failure",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				tokens.EXPECT().Validate(refreshToken).Return(false)
			},
			wantErr: domain.ErrInvalidRefreshToken,
		},
		{
			name: "deleted account reads as member not found",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				tokens.EXPECT().Validate(refreshToken).Return(true)
				tokens.EXPECT().ParseMemberID(refreshToken).Return(memberID, nil)
				repo.EXPECT().FindByID(gomock.Any(), memberID).Return(nil, domain.ErrMemberNotFound)
			},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name: "no active session",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				tokens.EXPECT().Validate(refreshToken).Return(true)
				tokens.EXPECT().ParseMemberID(refreshToken).Return(memberID, nil)
				repo.EXPECT().FindByID(gomock.Any(), memberID).Return(createTestMember(t, "secret-pw"), nil)
				sessions.EXPECT().Get(gomock.Any(), domain.RefreshKey(memberID.String())).Return("", port.ErrCacheMiss)
			},
			wantErr: domain.ErrRefreshTokenNoSession,
		},
		{
			name: "superseded token is rejected",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				tokens.EXPECT().Validate(refreshToken).Return(true)
				tokens.EXPECT().ParseMemberID(refreshToken).Return(memberID, nil)
				repo.EXPECT().FindByID(gomock.Any(), memberID).Return(createTestMember(t, "secret-pw"), nil)
				sessions.EXPECT().Get(gomock.Any(), domain.RefreshKey(memberID.String())).Return("refresh-newer", nil)
			},
			wantErr: domain.ErrRefreshTokenMismatch,
		},
		{
			name: "cache failure propagates",
			setupMocks: func(t *testing.T, repo *mock_port.MockMemberRepository, tokens *mock_port.MockTokenProvider, sessions *mock_port.MockSessionCache) {
				tokens.EXPECT().Validate(refreshToken).Return(true)
				tokens.EXPECT().ParseMemberID(refreshToken).Return(memberID, nil)
				repo.EXPECT().FindByID(gomock.Any(), memberID).Return(createTestMember(t, "secret-pw"), nil)
				sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
			},
			wantErr: nil, // plain infrastructure error, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, repo, tokens, sessions, _ := newAuthUseCase(ctrl)
			tt.setupMocks(t, repo, tokens, sessions)

			pair, err := uc.Reissue(context.Background(), refreshToken)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
			case tt.name == "cache failure propagates":
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInvalidRefreshToken)
			default:
				require.NoError(t, err)
				require.NotNil(t, pair)
			}
		})
	}
}

func TestAuthUseCase_Reissue_BothSubReasonsUnwrapToInvalid(t *testing.T) {
	assert.ErrorIs(t, domain.ErrRefreshTokenNoSession, domain.ErrInvalidRefreshToken)
	assert.ErrorIs(t, domain.ErrRefreshTokenMismatch, domain.ErrInvalidRefreshToken)
}

func TestAuthUseCase_Logout(t *testing.T) {
	memberID := uuid.New()
	accessToken := "access-token"

	t.Run("drops session and marks token revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, sessions, _ := newAuthUseCase(ctrl)

		tokens.EXPECT().Validate(accessToken).Return(true)
		tokens.EXPECT().ParseMemberID(accessToken).Return(memberID, nil)
		sessions.EXPECT().Delete(gomock.Any(), domain.RefreshKey(memberID.String())).Return(nil)
		tokens.EXPECT().RemainingTTL(accessToken).Return(10*time.Minute, nil)
		sessions.EXPECT().Set(gomock.Any(), accessToken, domain.RevokedMarker, 10*time.Minute).Return(nil)

		err := uc.Logout(context.Background(), accessToken)
		assert.NoError(t, err)
	})

	t.Run("invalid access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, _, _ := newAuthUseCase(ctrl)
		tokens.EXPECT().Validate(accessToken).Return(false)

		err := uc.Logout(context.Background(), accessToken)
		assert.ErrorIs(t, err, domain.ErrInvalidAccessToken)
	})

	t.Run("expired token skips the revocation marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, sessions, _ := newAuthUseCase(ctrl)

		tokens.EXPECT().Validate(accessToken).Return(true)
		tokens.EXPECT().ParseMemberID(accessToken).Return(memberID, nil)
		sessions.EXPECT().Delete(gomock.Any(), domain.RefreshKey(memberID.String())).Return(nil)
		tokens.EXPECT().RemainingTTL(accessToken).Return(time.Duration(0), nil)

		err := uc.Logout(context.Background(), accessToken)
		assert.NoError(t, err)
	})
}

func TestAuthUseCase_Authorize(t *testing.T) {
	memberID := uuid.New()
	accessToken := "access-token"

	t.Run("valid token resolves member id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, sessions, _ := newAuthUseCase(ctrl)

		tokens.EXPECT().Validate(accessToken).Return(true)
		sessions.EXPECT().Get(gomock.Any(), accessToken).Return("", port.ErrCacheMiss)
		tokens.EXPECT().ParseMemberID(accessToken).Return(memberID, nil)

		got, err := uc.Authorize(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, memberID, got)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, sessions, _ := newAuthUseCase(ctrl)

		tokens.EXPECT().Validate(accessToken).Return(true)
		sessions.EXPECT().Get(gomock.Any(), accessToken).Return(domain.RevokedMarker, nil)

		got, err := uc.Authorize(context.Background(), accessToken)
		assert.ErrorIs(t, err, domain.ErrInvalidAccessToken)
		assert.Equal(t, uuid.Nil, got)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, tokens, _, _ := newAuthUseCase(ctrl)
		tokens.EXPECT().Validate(accessToken).Return(false)

		_, err := uc.Authorize(context.Background(), accessToken)
		assert.ErrorIs(t, err, domain.ErrInvalidAccessToken)
	})
}

func TestAuthUseCase_ResetPassword(t *testing.T) {
	t.Run("temporary password is stored hashed and mailed in clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _, mail := newAuthUseCase(ctrl)

		member := createTestMember(t, "old-pw")

		var storedHash, mailedTemp string
		repo.EXPECT().FindByEmailAndName(gomock.Any(), member.Email, member.Name).Return(member, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), member.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, hash string) error {
				storedHash = hash
				return nil
			})
		mail.EXPECT().SendPasswordReset(gomock.Any(), member.Email, member.Name, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, temp string) error {
				mailedTemp = temp
				return nil
			})

		err := uc.ResetPassword(context.Background(), member.Email, member.Name)
		require.NoError(t, err)

		assert.Len(t, mailedTemp, password.TempPasswordLength)
		assert.True(t, password.Verify(storedHash, mailedTemp))
	})

	t.Run("unknown member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _, _ := newAuthUseCase(ctrl)
		repo.EXPECT().FindByEmailAndName(gomock.Any(), "x@example.com", "X").Return(nil, domain.ErrMemberNotFound)

		err := uc.ResetPassword(context.Background(), "x@example.com", "X")
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("mail failure surfaces after password change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _, mail := newAuthUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		repo.EXPECT().FindByEmailAndName(gomock.Any(), member.Email, member.Name).Return(member, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), member.ID, gomock.Any()).Return(nil)
		mail.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp unreachable"))

		err := uc.ResetPassword(context.Background(), member.Email, member.Name)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send reset mail")
	})
}
