package feed

import (
	"sort"

	"github.com/kailas-cloud/roommatch/internal/domain/compat"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
)

// Entry is one scored candidate in a queue.
type Entry struct {
	Profile profile.UserProfile `json:"profile"`
	Score   int                 `json:"score"`
}

// Queue is an ordered, immutable candidate sequence for one viewer.
type Queue struct {
	entries []Entry
}

// Len returns the number of candidates.
func (q Queue) Len() int { return len(q.entries) }

// At returns the candidate at position i.
func (q Queue) At(i int) (Entry, bool) {
	if i < 0 || i >= len(q.entries) {
		return Entry{}, false
	}
	return q.entries[i], true
}

// Entries returns a copy of the candidates in queue order.
func (q Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// BuildQueue ranks the roster for viewer, restricted to the viewer's city.
// A non-empty selectedInterests keeps only candidates sharing one of them.
func BuildQueue(viewer profile.UserProfile, roster []profile.UserProfile, selectedInterests []string) Queue {
	return Build(viewer, roster, Filters{Interests: selectedInterests})
}

// Build ranks the roster for viewer under f. An empty f.City means the viewer's own city.
func Build(viewer profile.UserProfile, roster []profile.UserProfile, f Filters) Queue {
	candidates := make([]Entry, 0, len(roster))
	for _, p := range roster {
		if p.ID == viewer.ID || !p.IsTenant() {
			continue
		}
		candidates = append(candidates, Entry{Profile: p, Score: compat.Score(viewer, p)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	city := f.City
	if city == "" {
		city = viewer.City
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if c.Profile.City != city {
			continue
		}
		if !GoalAccepts(viewer.Goal, c.Profile.Goal) {
			continue
		}
		if len(f.Interests) > 0 && !compat.Intersects(c.Profile.Interests, f.Interests) {
			continue
		}
		kept = append(kept, c)
	}

	return Queue{entries: kept}
}

// GoalAccepts reports whether a viewer with goal viewer may see a candidate with goal candidate.
//
//	Unset, Both    -> every goal
//	SeekRoom       -> SeekApartment, Both
//	SeekApartment  -> SeekRoom, Both
//
// A candidate with an Unset goal is therefore hidden from viewers with an explicit goal,
// while an Unset viewer sees everyone.
func GoalAccepts(viewer, candidate profile.RentalGoal) bool {
	switch viewer {
	case profile.GoalSeekRoomWithMates:
		return candidate == profile.GoalSeekApartmentWithMates || candidate == profile.GoalBoth
	case profile.GoalSeekApartmentWithMates:
		return candidate == profile.GoalSeekRoomWithMates || candidate == profile.GoalBoth
	default:
		return true
	}
}
