package port

//go:generate mockgen -source=member_port.go -destination=../mocks/mock_member_port.go

import (
	"context"
	"io"
	"time"

	"member-service/app/domain"

	"github.com/google/uuid"
)

// MemberUsecase defines member profile business logic interface
type MemberUsecase interface {
	// Mypage returns the profile view for nickname; self view includes
	// email and name, others' view does not.
	Mypage(ctx context.Context, requesterID uuid.UUID, nickname string) (*domain.Mypage, error)
	UpdateProfile(ctx context.Context, memberID uuid.UUID, req domain.UpdateProfileRequest, image *domain.ImageUpload) error
	Resign(ctx context.Context, memberID uuid.UUID) error

	// Membership queries
	HobbyList(ctx context.Context, requesterID uuid.UUID, nickname string) ([]*domain.HobbyMembership, error)
	PendingList(ctx context.Context, memberID uuid.UUID) ([]*domain.PendingRequest, error)
}

// MemberRepository defines member data access interface
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	FindByNickname(ctx context.Context, nickname string) (*domain.Member, error)
	FindByEmailAndName(ctx context.Context, email, name string) (*domain.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	Update(ctx context.Context, member *domain.Member) error
	UpdateState(ctx context.Context, id uuid.UUID, state domain.MemberState, resignationRequestedAt *time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// FileUploader defines the image upload gateway interface
type FileUploader interface {
	Upload(ctx context.Context, dir, filename, contentType string, body io.Reader) (string, error)
}
