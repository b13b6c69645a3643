package property

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/vocab"
)

// QueryParams is the raw form of a Query. Empty strings and empty amenity lists mean absent.
type QueryParams struct {
	City      string
	Keyword   string
	MinPrice  *int64
	MaxPrice  *int64
	Amenities []string
}

// Query is an immutable property search. The zero value matches every record.
type Query struct {
	city      *string
	keyword   *string
	minPrice  *int64
	maxPrice  *int64
	amenities []string
}

// NewQuery validates and normalizes p. Amenities must be registered and are kept
// sorted without duplicates. A min price above the max price is accepted and simply
// matches nothing.
func NewQuery(p QueryParams) (Query, error) {
	var q Query
	if c := strings.TrimSpace(p.City); c != "" {
		q.city = &c
	}
	if k := strings.TrimSpace(p.Keyword); k != "" {
		q.keyword = &k
	}
	if p.MinPrice != nil {
		if *p.MinPrice < 0 {
			return Query{}, fmt.Errorf("%w: min price must be non-negative", domain.ErrInvalidQuery)
		}
		v := *p.MinPrice
		q.minPrice = &v
	}
	if p.MaxPrice != nil {
		if *p.MaxPrice < 0 {
			return Query{}, fmt.Errorf("%w: max price must be non-negative", domain.ErrInvalidQuery)
		}
		v := *p.MaxPrice
		q.maxPrice = &v
	}
	amenities, err := vocab.Amenities.Validate(p.Amenities)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	if len(amenities) > 0 {
		slices.Sort(amenities)
		q.amenities = amenities
	}
	return q, nil
}

// Price returns a price pointer.
func Price(v int64) *int64 { return &v }

// City returns the required city.
func (q Query) City() (string, bool) { return deref(q.city) }

// Keyword returns the free-text keyword.
func (q Query) Keyword() (string, bool) { return deref(q.keyword) }

// MinPrice returns the inclusive lower price bound.
func (q Query) MinPrice() (int64, bool) { return deref(q.minPrice) }

// MaxPrice returns the inclusive upper price bound.
func (q Query) MaxPrice() (int64, bool) { return deref(q.maxPrice) }

// Amenities returns the required amenities, sorted.
func (q Query) Amenities() []string {
	if len(q.amenities) == 0 {
		return nil
	}
	return slices.Clone(q.amenities)
}

// IsEmpty reports whether the query has no clauses.
func (q Query) IsEmpty() bool {
	return q.city == nil && q.keyword == nil && q.minPrice == nil && q.maxPrice == nil && len(q.amenities) == 0
}

// Params returns the raw form of q. NewQuery(q.Params()) equals q.
func (q Query) Params() QueryParams {
	p := QueryParams{Amenities: q.Amenities()}
	p.City, _ = q.City()
	p.Keyword, _ = q.Keyword()
	if v, ok := q.MinPrice(); ok {
		p.MinPrice = Price(v)
	}
	if v, ok := q.MaxPrice(); ok {
		p.MaxPrice = Price(v)
	}
	return p
}

// Equal reports whether q and o have the same clauses.
func (q Query) Equal(o Query) bool {
	return eqPtr(q.city, o.city) &&
		eqPtr(q.keyword, o.keyword) &&
		eqPtr(q.minPrice, o.minPrice) &&
		eqPtr(q.maxPrice, o.maxPrice) &&
		slices.Equal(q.amenities, o.amenities)
}

func (q Query) String() string {
	var parts []string
	if v, ok := q.City(); ok {
		parts = append(parts, "city="+v)
	}
	if v, ok := q.Keyword(); ok {
		parts = append(parts, "keyword="+v)
	}
	if v, ok := q.MinPrice(); ok {
		parts = append(parts, fmt.Sprintf("min=%d", v))
	}
	if v, ok := q.MaxPrice(); ok {
		parts = append(parts, fmt.Sprintf("max=%d", v))
	}
	if len(q.amenities) > 0 {
		parts = append(parts, "amenities="+strings.Join(q.amenities, ","))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
