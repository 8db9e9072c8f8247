package port

//go:generate mockgen -source=hobby_port.go -destination=../mocks/mock_hobby_port.go

import (
	"context"

	"member-service/app/domain"

	"github.com/google/uuid"
)

// HobbyRepository defines the joined membership queries at the service
// boundary. Both return explicit join results rather than navigable entities.
type HobbyRepository interface {
	ListMemberships(ctx context.Context, memberID uuid.UUID) ([]*domain.HobbyMembership, error)
	ListPending(ctx context.Context, memberID uuid.UUID) ([]*domain.PendingRequest, error)
}
