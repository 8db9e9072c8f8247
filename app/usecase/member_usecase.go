package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"member-service/app/domain"
	"member-service/app/port"
	"member-service/app/utils/password"
)

// profile images live under this object prefix
const imageDir = "member"

// MemberUseCase implements member profile business logic
type MemberUseCase struct {
	memberRepo port.MemberRepository
	hobbyRepo  port.HobbyRepository
	uploader   port.FileUploader
	logger     *slog.Logger
}

// NewMemberUseCase creates a new MemberUseCase instance
func NewMemberUseCase(
	memberRepo port.MemberRepository,
	hobbyRepo port.HobbyRepository,
	uploader port.FileUploader,
	logger *slog.Logger,
) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		hobbyRepo:  hobbyRepo,
		uploader:   uploader,
		logger:     logger.With("component", "member_usecase"),
	}
}

// Mypage returns the profile view for the given nickname. Email and name are
// included only when the requester is looking at their own page.
func (uc *MemberUseCase) Mypage(ctx context.Context, requesterID uuid.UUID, nickname string) (*domain.Mypage, error) {
	member, err := uc.memberRepo.FindByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	page := &domain.Mypage{
		Nickname:   member.Nickname,
		Intro:      member.Intro,
		Point:      member.Point,
		PointLevel: member.PointLevel(),
		PointExp:   member.PointExp(),
		ImageURL:   member.ImageURL,
	}
	if member.ID == requesterID {
		page.Email = member.Email
		page.Name = member.Name
	}

	return page, nil
}

// UpdateProfile applies the profile changes. The nickname is mandatory; a
// non-empty password replaces the current one on password accounts; a
// provided image is uploaded and its URL stored.
func (uc *MemberUseCase) UpdateProfile(ctx context.Context, memberID uuid.UUID, req domain.UpdateProfileRequest, image *domain.ImageUpload) error {
	if req.Nickname == "" {
		return fmt.Errorf("%w: nickname is required", domain.ErrInvalidInput)
	}

	member, err := uc.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}

	if req.Nickname != member.Nickname {
		taken, err := uc.memberRepo.ExistsByNickname(ctx, req.Nickname)
		if err != nil {
			return fmt.Errorf("failed to check nickname: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: nickname taken", domain.ErrDuplicateMember)
		}
		member.Nickname = req.Nickname
	}
	member.UpdateProfile(member.Nickname, req.Intro)

	// SNS accounts authenticate through their provider and keep the
	// placeholder hash derived from their email; a submitted password is
	// ignored for them.
	if req.Password != "" && !member.SNS {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		member.ChangePassword(hash)
	}

	if image != nil {
		url, err := uc.uploader.Upload(ctx, imageDir, image.Filename, image.ContentType, bytes.NewReader(image.Body))
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		member.ImageURL = url
	}

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	uc.logger.Info("profile updated", "member_id", memberID.String())
	return nil
}

// Resign moves the member to the WAITING state and stamps the request time.
// The account is recoverable by logging in until the grace period elapses.
func (uc *MemberUseCase) Resign(ctx context.Context, memberID uuid.UUID) error {
	member, err := uc.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}

	now := time.Now()
	if err := member.RequestResignation(now); err != nil {
		return err
	}

	if err := uc.memberRepo.UpdateState(ctx, member.ID, domain.MemberStateWaiting, &now); err != nil {
		return fmt.Errorf("failed to update state: %w", err)
	}

	uc.logger.Info("resignation requested", "member_id", memberID.String())
	return nil
}

// HobbyList returns the hobby memberships of the member behind nickname
func (uc *MemberUseCase) HobbyList(ctx context.Context, requesterID uuid.UUID, nickname string) ([]*domain.HobbyMembership, error) {
	member, err := uc.memberRepo.FindByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	memberships, err := uc.hobbyRepo.ListMemberships(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return memberships, nil
}

// PendingList returns the requester's own unresolved join requests
func (uc *MemberUseCase) PendingList(ctx context.Context, memberID uuid.UUID) ([]*domain.PendingRequest, error) {
	pending, err := uc.hobbyRepo.ListPending(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return pending, nil
}

var _ port.MemberUsecase = (*MemberUseCase)(nil)
