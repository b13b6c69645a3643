// Package savedsearch converts property queries to and from their stored form.
package savedsearch

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/property"
)

// SnapshotVersion is the current snapshot layout. Zero is read as 1.
const SnapshotVersion = 1

// Snapshot is the persisted shape of a property.Query. Absent clauses are omitted, never zeroed.
type Snapshot struct {
	Version   int      `json:"v,omitempty"`
	City      *string  `json:"city,omitempty"`
	Keyword   *string  `json:"keyword,omitempty"`
	MinPrice  *int64   `json:"min_price,omitempty"`
	MaxPrice  *int64   `json:"max_price,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// ToSnapshot captures every present clause of q.
func ToSnapshot(q property.Query) Snapshot {
	s := Snapshot{Version: SnapshotVersion}
	if v, ok := q.City(); ok {
		s.City = &v
	}
	if v, ok := q.Keyword(); ok {
		s.Keyword = &v
	}
	if v, ok := q.MinPrice(); ok {
		s.MinPrice = &v
	}
	if v, ok := q.MaxPrice(); ok {
		s.MaxPrice = &v
	}
	s.Amenities = q.Amenities()
	return s
}

// FromSnapshot rebuilds the query. FromSnapshot(ToSnapshot(q)) equals q.
// Snapshots that no longer validate (for example a retired amenity) fail with ErrInvalidSnapshot.
func FromSnapshot(s Snapshot) (property.Query, error) {
	if s.Version > SnapshotVersion || s.Version < 0 {
		return property.Query{}, fmt.Errorf("%w: unsupported version %d", domain.ErrInvalidSnapshot, s.Version)
	}
	p := property.QueryParams{
		MinPrice:  s.MinPrice,
		MaxPrice:  s.MaxPrice,
		Amenities: s.Amenities,
	}
	if s.City != nil {
		p.City = *s.City
	}
	if s.Keyword != nil {
		p.Keyword = *s.Keyword
	}
	q, err := property.NewQuery(p)
	if err != nil {
		return property.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}
	return q, nil
}

// Marshal encodes s as JSON.
func Marshal(s Snapshot) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a JSON snapshot.
func Unmarshal(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}
	return s, nil
}
