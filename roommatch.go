// Package roommatch exposes the pure matching engine: compatibility scoring,
// feed queues and cursors, property filtering and saved-search snapshots.
// None of these functions touch storage. For a connected client see pkg/sdk.
package roommatch

import (
	"github.com/kailas-cloud/roommatch/internal/domain/compat"
	"github.com/kailas-cloud/roommatch/internal/domain/feed"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	"github.com/kailas-cloud/roommatch/internal/domain/property"
	"github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
)

// Profile, feed and property types.
type (
	Profile       = profile.UserProfile
	Breakdown     = compat.Breakdown
	Queue         = feed.Queue
	Entry         = feed.Entry
	FeedFilters   = feed.Filters
	FeedState     = feed.State
	Outcome       = feed.Outcome
	Property      = property.Record
	Query         = property.Query
	QueryParams   = property.QueryParams
	QuerySnapshot = savedsearch.Snapshot
)

// Score returns the 0..100 compatibility of a and b. Symmetric.
func Score(a, b Profile) int { return compat.Score(a, b) }

// Explain returns the score with its per-category parts and shared tags.
func Explain(a, b Profile) Breakdown { return compat.Explain(a, b) }

// BuildQueue ranks roster for viewer by descending score within the viewer's city.
func BuildQueue(viewer Profile, roster []Profile, selectedInterests []string) Queue {
	return feed.BuildQueue(viewer, roster, selectedInterests)
}

// NewFeed returns the cursor at the head of q.
func NewFeed(viewer Profile, roster []Profile, q Queue) FeedState {
	return feed.NewState(viewer.ID, feed.RosterID(roster), feed.Filters{}, q)
}

// Accept likes the current candidate and advances the cursor.
func Accept(s FeedState, q Queue) (FeedState, Outcome) { return feed.Accept(s, q) }

// Reject skips the current candidate.
func Reject(s FeedState, q Queue) (FeedState, Outcome) { return feed.Reject(s, q) }

// Current returns the candidate under the cursor.
func Current(s FeedState, q Queue) (Entry, bool) { return feed.Current(s, q) }

// NewQuery validates and normalizes property search inputs.
func NewQuery(p QueryParams) (Query, error) { return property.NewQuery(p) }

// Price returns a pointer to v for QueryParams price bounds.
func Price(v int64) *int64 { return property.Price(v) }

// Filter returns the listings matching q in catalog order.
// Private listings are only returned when privileged is set.
func Filter(catalog []Property, q Query, privileged bool) []Property {
	return property.Filter(catalog, q, privileged)
}

// ToSnapshot captures q in its persisted form.
func ToSnapshot(q Query) QuerySnapshot { return savedsearch.ToSnapshot(q) }

// FromSnapshot rebuilds a query from its persisted form.
func FromSnapshot(s QuerySnapshot) (Query, error) { return savedsearch.FromSnapshot(s) }
