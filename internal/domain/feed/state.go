package feed

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/roommatch/internal/domain/vocab"
)

// Status is the swipe state machine state.
type Status string

// Status constants.
const (
	Active    Status = "active"
	Exhausted Status = "exhausted"
)

// Action is a swipe decision.
type Action string

// Action constants.
const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// Filters are the viewer-selected feed inputs. Changing them forces a rebuild.
type Filters struct {
	City      string   `json:"city,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// NewFilters validates interests against the registry and canonicalizes them (deduplicated, sorted).
func NewFilters(city string, interests []string) (Filters, error) {
	valid, err := vocab.Interests.Validate(interests)
	if err != nil {
		return Filters{}, err
	}
	if len(valid) == 0 {
		valid = nil
	} else {
		slices.Sort(valid)
	}
	return Filters{City: strings.TrimSpace(city), Interests: valid}, nil
}

// Equal reports whether f and o select the same queue.
func (f Filters) Equal(o Filters) bool {
	return f.City == o.City && slices.Equal(f.Interests, o.Interests)
}

// State is the serializable swipe session of one viewer.
// Cursor is in [0, Length] and never decreases within a RosterID/Filters pair.
type State struct {
	ViewerID string  `json:"viewer_id"`
	RosterID string  `json:"roster_id"`
	Filters  Filters `json:"filters"`
	Cursor   int     `json:"cursor"`
	Length   int     `json:"length"`
	Matches  int     `json:"matches"`
}

// NewState returns the initial state for a freshly built queue.
func NewState(viewerID, rosterID string, f Filters, q Queue) State {
	return State{
		ViewerID: viewerID,
		RosterID: rosterID,
		Filters:  f,
		Length:   q.Len(),
	}
}

// Status returns Active while candidates remain, Exhausted otherwise.
func (s State) Status() Status {
	if s.Cursor < s.Length {
		return Active
	}
	return Exhausted
}

// Remaining returns the number of candidates not yet judged.
func (s State) Remaining() int {
	if s.Cursor >= s.Length {
		return 0
	}
	return s.Length - s.Cursor
}

// Outcome reports the effect of a swipe. Applied is false when the state was Exhausted.
type Outcome struct {
	Action    Action `json:"action"`
	Applied   bool   `json:"applied"`
	Candidate *Entry `json:"candidate,omitempty"`
	Match     *Match `json:"match,omitempty"`
}

// Reject skips the current candidate.
func Reject(s State, q Queue) (State, Outcome) {
	cur, ok := current(s, q)
	if !ok {
		return s, Outcome{Action: ActionReject}
	}
	s.Cursor++
	return s, Outcome{Action: ActionReject, Applied: true, Candidate: &cur}
}

// Accept matches the viewer with the current candidate and advances.
func Accept(s State, q Queue) (State, Outcome) {
	cur, ok := current(s, q)
	if !ok {
		return s, Outcome{Action: ActionAccept}
	}
	s.Cursor++
	s.Matches++
	m := Match{
		ViewerID:    s.ViewerID,
		CandidateID: cur.Profile.ID,
		Score:       cur.Score,
	}
	return s, Outcome{Action: ActionAccept, Applied: true, Candidate: &cur, Match: &m}
}

// Current returns the candidate under the cursor.
func Current(s State, q Queue) (Entry, bool) {
	return current(s, q)
}

func current(s State, q Queue) (Entry, bool) {
	if s.Status() != Active {
		return Entry{}, false
	}
	return q.At(s.Cursor)
}

// Sync returns the state for (rosterID, f) given a previously stored state.
// The cursor survives only when viewer, roster, filters and queue length are unchanged;
// any other difference resets to the initial state.
func Sync(prev *State, viewerID, rosterID string, f Filters, q Queue) (State, bool) {
	if prev != nil &&
		prev.ViewerID == viewerID &&
		prev.RosterID == rosterID &&
		prev.Filters.Equal(f) &&
		prev.Length == q.Len() &&
		prev.Cursor <= prev.Length {
		return *prev, false
	}
	return NewState(viewerID, rosterID, f, q), true
}
