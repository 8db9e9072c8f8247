package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// MemberState represents the lifecycle state of a member account
type MemberState string

const (
	MemberStateActive   MemberState = "ACTIVE"
	MemberStateWaiting  MemberState = "WAITING"
	MemberStateBanned   MemberState = "BAN"
	MemberStateResigned MemberState = "RESIGNED"
)

// MemberPrivilege represents a privilege label attached to a member
type MemberPrivilege string

const (
	PrivilegeGeneral MemberPrivilege = "GENERAL"
	PrivilegeAdmin   MemberPrivilege = "ADMIN"
)

// Points per level; the remainder is shown as progress toward the next level
const pointsPerLevel = 100

// Member represents a member account
type Member struct {
	ID                     uuid.UUID    `json:"id"`
	Email                  string       `json:"email"`
	Name                   string       `json:"name"`
	Nickname               string       `json:"nickname"`
	PasswordHash           string       `json:"-"` // Exclude from JSON
	Intro                  string       `json:"intro"`
	OwnedHobbyCount        int          `json:"owned_hobby_count"`
	Point                  int          `json:"point"`
	ImageURL               string       `json:"image_url,omitempty"`
	State                  MemberState  `json:"state"`
	SNS                    bool         `json:"sns"`
	Privileges             []string     `json:"privileges"`
	ResignationRequestedAt *time.Time   `json:"resignation_requested_at,omitempty"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// NewMember creates a new member with validation. New members start in the
// ACTIVE state with the GENERAL privilege.
func NewMember(email, name, nickname, passwordHash string) (*Member, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if nickname == "" {
		return nil, fmt.Errorf("nickname is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()

	member := &Member{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		State:        MemberStateActive,
		Privileges:   []string{string(PrivilegeGeneral)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return member, nil
}

// NewSNSMember creates a member backed by an external OAuth identity.
// SNS members carry a placeholder password hash derived from their email.
func NewSNSMember(email, nickname, imageURL, passwordHash string) (*Member, error) {
	member, err := NewMember(email, nickname, nickname, passwordHash)
	if err != nil {
		return nil, err
	}
	member.SNS = true
	member.ImageURL = imageURL
	return member, nil
}

// CheckLoginable returns the gating error for the member's current state.
// A WAITING member is loginable; the caller is expected to reactivate it.
func (m *Member) CheckLoginable() error {
	switch m.State {
	case MemberStateBanned:
		return ErrMemberBanned
	case MemberStateResigned:
		return ErrMemberResigned
	default:
		return nil
	}
}

// Activate returns a waiting member to the active state. Reactivation clears
// the pending resignation request.
func (m *Member) Activate() {
	m.State = MemberStateActive
	m.ResignationRequestedAt = nil
	m.UpdatedAt = time.Now()
}

// RequestResignation moves an active member to WAITING and stamps the request
// time. The account is never hard-deleted by this service.
func (m *Member) RequestResignation(at time.Time) error {
	if m.State == MemberStateWaiting {
		return ErrResignationPending
	}
	m.State = MemberStateWaiting
	m.ResignationRequestedAt = &at
	m.UpdatedAt = time.Now()
	return nil
}

// ChangePassword replaces the stored password hash
func (m *Member) ChangePassword(passwordHash string) {
	m.PasswordHash = passwordHash
	m.UpdatedAt = time.Now()
}

// UpdateProfile updates the mutable profile fields
func (m *Member) UpdateProfile(nickname, intro string) {
	m.Nickname = nickname
	m.Intro = intro
	m.UpdatedAt = time.Now()
}

// RefreshSNSProfile refreshes the profile image delivered by the OAuth provider
func (m *Member) RefreshSNSProfile(imageURL string) {
	if imageURL != "" {
		m.ImageURL = imageURL
	}
	m.UpdatedAt = time.Now()
}

// PointLevel returns the member's level derived from accumulated points
func (m *Member) PointLevel() int {
	return m.Point / pointsPerLevel
}

// PointExp returns the progress toward the next level
func (m *Member) PointExp() int {
	return m.Point % pointsPerLevel
}

// IsActive returns true if the member is in the active state
func (m *Member) IsActive() bool {
	return m.State == MemberStateActive
}

// HasPrivilege reports whether the member carries the given privilege label
func (m *Member) HasPrivilege(p MemberPrivilege) bool {
	for _, label := range m.Privileges {
		if label == string(p) {
			return true
		}
	}
	return false
}
