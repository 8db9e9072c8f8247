package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"member-service/app/domain"
	"member-service/app/port"

	"github.com/google/uuid"
)

// HobbyRepository implements port.HobbyRepository for PostgreSQL. Membership
// and pending views are explicit joins; nothing is lazily navigated.
type HobbyRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewHobbyRepository creates a new PostgreSQL hobby repository
func NewHobbyRepository(db DatabaseIface, logger *slog.Logger) port.HobbyRepository {
	return &HobbyRepository{
		db:     db,
		logger: logger.With("component", "hobby_repository"),
	}
}

// ListMemberships returns the hobbies the member participates in
func (r *HobbyRepository) ListMemberships(ctx context.Context, memberID uuid.UUID) ([]*domain.HobbyMembership, error) {
	query := `
		SELECT h.id, h.name, h.image_url, h.member_count, hm.owner, hm.joined_at
		FROM hobby_members hm
		JOIN hobbies h ON h.id = hm.hobby_id
		WHERE hm.member_id = $1
		ORDER BY hm.joined_at DESC`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		r.logger.Error("failed to list hobby memberships", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list hobby memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]*domain.HobbyMembership, 0)
	for rows.Next() {
		m := &domain.HobbyMembership{}
		if err := rows.Scan(&m.HobbyID, &m.HobbyName, &m.ImageURL, &m.MemberCount, &m.Owner, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hobby membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hobby memberships: %w", err)
	}

	return memberships, nil
}

// ListPending returns the member's join requests awaiting approval
func (r *HobbyRepository) ListPending(ctx context.Context, memberID uuid.UUID) ([]*domain.PendingRequest, error) {
	query := `
		SELECT h.id, h.name, h.image_url, p.requested_at
		FROM pendings p
		JOIN hobbies h ON h.id = p.hobby_id
		WHERE p.member_id = $1
		ORDER BY p.requested_at DESC`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		r.logger.Error("failed to list pending requests", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	pendings := make([]*domain.PendingRequest, 0)
	for rows.Next() {
		p := &domain.PendingRequest{}
		if err := rows.Scan(&p.HobbyID, &p.HobbyName, &p.ImageURL, &p.RequestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pending request: %w", err)
		}
		pendings = append(pendings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending requests: %w", err)
	}

	return pendings, nil
}
