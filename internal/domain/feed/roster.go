package feed

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/kailas-cloud/roommatch/internal/domain/profile"
)

// Match is created when a viewer accepts a candidate. ID and CreatedAt are stamped on persist.
type Match struct {
	ID          string    `json:"id,omitempty"`
	ViewerID    string    `json:"viewer_id"`
	CandidateID string    `json:"candidate_id"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Roster is a point-in-time user list identified by a content fingerprint.
type Roster struct {
	ID       string
	Profiles []profile.UserProfile
}

// NewRoster fingerprints profiles. Any content or order change yields a different ID.
func NewRoster(profiles []profile.UserProfile) Roster {
	return Roster{ID: RosterID(profiles), Profiles: profiles}
}

// Find returns the profile with the given id.
func (r Roster) Find(id string) (profile.UserProfile, bool) {
	for _, p := range r.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return profile.UserProfile{}, false
}

// RosterID hashes every field that influences queue building.
func RosterID(profiles []profile.UserProfile) string {
	d := xxhash.New()
	for _, p := range profiles {
		writeField(d, p.ID)
		writeField(d, p.City)
		writeField(d, p.SubLocality)
		writeField(d, string(p.Noise))
		writeField(d, string(p.Goal))
		writeField(d, string(p.Role))
		if p.Commute != nil {
			writeField(d, strconv.Itoa(*p.Commute))
		} else {
			writeField(d, "-")
		}
		for _, v := range p.Interests {
			writeField(d, v)
		}
		writeField(d, "|")
		for _, v := range p.Lifestyle {
			writeField(d, v)
		}
		_, _ = d.WriteString("\n")
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

func writeField(d *xxhash.Digest, v string) {
	_, _ = d.WriteString(v)
	_, _ = d.WriteString("\x00")
}
