package domain

import (
	"time"

	"github.com/google/uuid"
)

// HobbyMembership is the joined view of a member's participation in a hobby
// group. Association traversal happens in the repository query, not here.
type HobbyMembership struct {
	HobbyID     uuid.UUID `json:"hobby_id"`
	HobbyName   string    `json:"hobby_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	MemberCount int       `json:"member_count"`
	Owner       bool      `json:"owner"`
	JoinedAt    time.Time `json:"joined_at"`
}

// PendingRequest is the joined view of a member's not-yet-approved join
// request for a hobby group.
type PendingRequest struct {
	HobbyID     uuid.UUID `json:"hobby_id"`
	HobbyName   string    `json:"hobby_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}
