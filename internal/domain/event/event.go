// Package event defines the notifications emitted for external notifiers and persisters.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type is the routing key of an event.
type Type string

// Event types.
const (
	MatchCreated Type = "match.created"
	SearchSaved  Type = "search.saved"
)

// Event is one domain notification. ID doubles as the broker message id.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New stamps a fresh id.
func New(t Type, payload any, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: t, OccurredAt: at.UTC(), Payload: payload}
}

// MatchCreatedPayload is the body of MatchCreated.
type MatchCreatedPayload struct {
	MatchID     string `json:"match_id"`
	ViewerID    string `json:"viewer_id"`
	CandidateID string `json:"candidate_id"`
	Score       int    `json:"score"`
}

// SearchSavedPayload is the body of SearchSaved.
type SearchSavedPayload struct {
	SearchID string `json:"search_id"`
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	Snapshot any    `json:"snapshot"`
}
