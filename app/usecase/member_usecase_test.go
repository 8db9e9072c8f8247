package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"member-service/app/domain"
	mock_port "member-service/app/mocks"
	"member-service/app/utils/password"
)

func newMemberUseCase(ctrl *gomock.Controller) (*MemberUseCase, *mock_port.MockMemberRepository, *mock_port.MockHobbyRepository, *mock_port.MockFileUploader) {
	repo := mock_port.NewMockMemberRepository(ctrl)
	hobbies := mock_port.NewMockHobbyRepository(ctrl)
	uploader := mock_port.NewMockFileUploader(ctrl)
	uc := NewMemberUseCase(repo, hobbies, uploader, testLogger())
	return uc, repo, hobbies, uploader
}

func TestMemberUseCase_Mypage(t *testing.T) {
	member := createTestMember(t, "secret-pw")
	member.Point = 250
	member.Intro = "hello"

	t.Run("own page includes email and name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)
		repo.EXPECT().FindByNickname(gomock.Any(), member.Nickname).Return(member, nil)

		page, err := uc.Mypage(context.Background(), member.ID, member.Nickname)
		require.NoError(t, err)

		assert.Equal(t, member.Email, page.Email)
		assert.Equal(t, member.Name, page.Name)
		assert.Equal(t, 2, page.PointLevel)
		assert.Equal(t, 50, page.PointExp)
	})

	t.Run("someone else's page hides email and name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)
		repo.EXPECT().FindByNickname(gomock.Any(), member.Nickname).Return(member, nil)

		page, err := uc.Mypage(context.Background(), uuid.New(), member.Nickname)
		require.NoError(t, err)

		assert.Empty(t, page.Email)
		assert.Empty(t, page.Name)
		assert.Equal(t, member.Nickname, page.Nickname)
	})

	t.Run("unknown nickname", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)
		repo.EXPECT().FindByNickname(gomock.Any(), "ghost").Return(nil, domain.ErrMemberNotFound)

		page, err := uc.Mypage(context.Background(), uuid.New(), "ghost")
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
		assert.Nil(t, page)
	})
}

func TestMemberUseCase_UpdateProfile(t *testing.T) {
	t.Run("updates nickname intro and password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		repo.EXPECT().ExistsByNickname(gomock.Any(), "newnick").Return(false, nil)
		repo.EXPECT().Update(gomock.Any(), member).Return(nil)

		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: "newnick",
			Intro:    "updated intro",
			Password: "new-pw",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, "newnick", member.Nickname)
		assert.Equal(t, "updated intro", member.Intro)
		assert.True(t, password.Verify(member.PasswordHash, "new-pw"))
	})

	t.Run("empty password keeps the current one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		before := member.PasswordHash
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		repo.EXPECT().Update(gomock.Any(), member).Return(nil)

		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: member.Nickname,
			Intro:    "just the intro",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, before, member.PasswordHash)
	})

	t.Run("sns member keeps the email-derived password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		emailHash, err := password.Hash("sns@example.com")
		require.NoError(t, err)
		member, err := domain.NewSNSMember("sns@example.com", "snsuser", "", emailHash)
		require.NoError(t, err)

		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		repo.EXPECT().Update(gomock.Any(), member).Return(nil)

		err = uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: member.Nickname,
			Password: "chosen-password1!",
		}, nil)
		require.NoError(t, err)

		assert.False(t, password.Verify(member.PasswordHash, "chosen-password1!"))
		assert.True(t, password.Verify(member.PasswordHash, "sns@example.com"))
	})

	t.Run("empty nickname is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Intro: "no nickname sent",
		}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("taken nickname is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		repo.EXPECT().ExistsByNickname(gomock.Any(), "taken").Return(true, nil)

		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: "taken",
		}, nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateMember)
	})

	t.Run("image upload stores the returned url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, uploader := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		uploader.EXPECT().
			Upload(gomock.Any(), "member", "avatar.png", "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, body io.Reader) (string, error) {
				data, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.Equal(t, []byte("png-bytes"), data)
				return "https://cdn.example.com/member/abc.png", nil
			})
		repo.EXPECT().Update(gomock.Any(), member).Return(nil)

		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: member.Nickname,
		}, &domain.ImageUpload{
			Filename:    "avatar.png",
			ContentType: "image/png",
			Body:        []byte("png-bytes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/member/abc.png", member.ImageURL)
	})

	t.Run("upload failure leaves the member untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, uploader := newMemberUseCase(ctrl)

		member := createTestMember(t, "old-pw")
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		uploader.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		err := uc.UpdateProfile(context.Background(), member.ID, domain.UpdateProfileRequest{
			Nickname: member.Nickname,
		}, &domain.ImageUpload{Filename: "a.png", ContentType: "image/png", Body: []byte("x")})
		require.Error(t, err)
		assert.Empty(t, member.ImageURL)
	})
}

func TestMemberUseCase_Resign(t *testing.T) {
	t.Run("active member moves to waiting with a timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "secret-pw")
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		repo.EXPECT().
			UpdateState(gomock.Any(), member.ID, domain.MemberStateWaiting, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ domain.MemberState, at *time.Time) error {
				require.NotNil(t, at)
				assert.WithinDuration(t, time.Now(), *at, time.Second)
				return nil
			})

		err := uc.Resign(context.Background(), member.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MemberStateWaiting, member.State)
	})

	t.Run("second request is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, repo, _, _ := newMemberUseCase(ctrl)

		member := createTestMember(t, "secret-pw")
		require.NoError(t, member.RequestResignation(time.Now()))
		repo.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)

		err := uc.Resign(context.Background(), member.ID)
		assert.ErrorIs(t, err, domain.ErrResignationPending)
	})
}

func TestMemberUseCase_HobbyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo, hobbies, _ := newMemberUseCase(ctrl)

	member := createTestMember(t, "secret-pw")
	memberships := []*domain.HobbyMembership{
		{HobbyID: uuid.New(), HobbyName: "climbing", MemberCount: 12, Owner: true},
		{HobbyID: uuid.New(), HobbyName: "boardgames", MemberCount: 7},
	}

	repo.EXPECT().FindByNickname(gomock.Any(), member.Nickname).Return(member, nil)
	hobbies.EXPECT().ListMemberships(gomock.Any(), member.ID).Return(memberships, nil)

	got, err := uc.HobbyList(context.Background(), uuid.New(), member.Nickname)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "climbing", got[0].HobbyName)
}

func TestMemberUseCase_PendingList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, hobbies, _ := newMemberUseCase(ctrl)

	memberID := uuid.New()
	pending := []*domain.PendingRequest{
		{HobbyID: uuid.New(), HobbyName: "pottery", RequestedAt: time.Now()},
	}
	hobbies.EXPECT().ListPending(gomock.Any(), memberID).Return(pending, nil)

	got, err := uc.PendingList(context.Background(), memberID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pottery", got[0].HobbyName)
}
