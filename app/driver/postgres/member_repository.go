package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"member-service/app/domain"
	"member-service/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const memberColumns = `
	id, email, name, nickname, password_hash, intro, owned_hobby_count,
	point, image_url, state, sns, privileges, resignation_requested_at,
	created_at, updated_at`

// MemberRepository implements port.MemberRepository for PostgreSQL
type MemberRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewMemberRepository creates a new PostgreSQL member repository
func NewMemberRepository(db DatabaseIface, logger *slog.Logger) port.MemberRepository {
	return &MemberRepository{
		db:     db,
		logger: logger.With("component", "member_repository"),
	}
}

// Create inserts a new member row
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (
			id, email, name, nickname, password_hash, intro, owned_hobby_count,
			point, image_url, state, sns, privileges, resignation_requested_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`

	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.Email,
		member.Name,
		member.Nickname,
		member.PasswordHash,
		member.Intro,
		member.OwnedHobbyCount,
		member.Point,
		member.ImageURL,
		member.State,
		member.SNS,
		member.Privileges,
		member.ResignationRequestedAt,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMember
		}
		r.logger.Error("failed to create member", "email", member.Email, "error", err)
		return fmt.Errorf("failed to create member: %w", err)
	}

	r.logger.Info("member created", "member_id", member.ID, "nickname", member.Nickname)
	return nil
}

// FindByID retrieves a member by id
func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE id = $1`
	return r.scanMember(r.db.QueryRow(ctx, query, id))
}

// FindByEmail retrieves a member by email
func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE email = $1`
	return r.scanMember(r.db.QueryRow(ctx, query, email))
}

// FindByNickname retrieves a member by nickname
func (r *MemberRepository) FindByNickname(ctx context.Context, nickname string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE nickname = $1`
	return r.scanMember(r.db.QueryRow(ctx, query, nickname))
}

// FindByEmailAndName retrieves a member by the email/name pair used by the
// password reset flow
func (r *MemberRepository) FindByEmailAndName(ctx context.Context, email, name string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE email = $1 AND name = $2`
	return r.scanMember(r.db.QueryRow(ctx, query, email, name))
}

// ExistsByEmail reports whether a member exists with the given email
func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE email = $1)`, email)
}

// ExistsByNickname reports whether a member exists with the given nickname
func (r *MemberRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE nickname = $1)`, nickname)
}

// Update persists the mutable member fields
func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members SET
			nickname = $2,
			password_hash = $3,
			intro = $4,
			owned_hobby_count = $5,
			point = $6,
			image_url = $7,
			state = $8,
			sns = $9,
			privileges = $10,
			resignation_requested_at = $11,
			updated_at = $12
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		member.ID,
		member.Nickname,
		member.PasswordHash,
		member.Intro,
		member.OwnedHobbyCount,
		member.Point,
		member.ImageURL,
		member.State,
		member.SNS,
		member.Privileges,
		member.ResignationRequestedAt,
		time.Now(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMember
		}
		r.logger.Error("failed to update member", "member_id", member.ID, "error", err)
		return fmt.Errorf("failed to update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// UpdateState transitions the member's lifecycle state. The resignation
// timestamp travels with the state so the two never diverge.
func (r *MemberRepository) UpdateState(ctx context.Context, id uuid.UUID, state domain.MemberState, resignationRequestedAt *time.Time) error {
	query := `
		UPDATE members SET
			state = $2,
			resignation_requested_at = $3,
			updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, state, resignationRequestedAt, time.Now())
	if err != nil {
		r.logger.Error("failed to update member state", "member_id", id, "state", state, "error", err)
		return fmt.Errorf("failed to update member state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	r.logger.Info("member state updated", "member_id", id, "state", state)
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *MemberRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE members SET password_hash = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, passwordHash, time.Now())
	if err != nil {
		r.logger.Error("failed to update member password", "member_id", id, "error", err)
		return fmt.Errorf("failed to update member password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

func (r *MemberRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member existence: %w", err)
	}
	return exists, nil
}

func (r *MemberRepository) scanMember(row pgx.Row) (*domain.Member, error) {
	member := &domain.Member{}

	err := row.Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.Nickname,
		&member.PasswordHash,
		&member.Intro,
		&member.OwnedHobbyCount,
		&member.Point,
		&member.ImageURL,
		&member.State,
		&member.SNS,
		&member.Privileges,
		&member.ResignationRequestedAt,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		r.logger.Error("failed to scan member row", "error", err)
		return nil, fmt.Errorf("failed to scan member: %w", err)
	}

	return member, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
