// Package property filters a listing catalog against a Query.
package property

import "strings"

// Filter returns the records of roster that satisfy every clause of q, in roster order.
// Unprivileged callers never receive records that are not Public.
func Filter(roster []Record, q Query, privileged bool) []Record {
	out := make([]Record, 0, len(roster))
	keyword := ""
	if k, ok := q.Keyword(); ok {
		keyword = strings.ToLower(k)
	}
	for _, r := range roster {
		if !matches(r, q, keyword) {
			continue
		}
		if !privileged && !r.IsPublic() {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Record, q Query, keyword string) bool {
	if city, ok := q.City(); ok && r.City != city {
		return false
	}
	if keyword != "" && !containsKeyword(r, keyword) {
		return false
	}
	if minPrice, ok := q.MinPrice(); ok && r.Price < minPrice {
		return false
	}
	if maxPrice, ok := q.MaxPrice(); ok && r.Price > maxPrice {
		return false
	}
	for _, a := range q.amenities {
		if !r.HasAmenity(a) {
			return false
		}
	}
	return true
}

// containsKeyword checks the searchable text fields. Empty fields never match.
func containsKeyword(r Record, lowerKeyword string) bool {
	for _, f := range [...]string{r.Title, r.Address, r.City, r.Locality, r.PostalCode} {
		if f != "" && strings.Contains(strings.ToLower(f), lowerKeyword) {
			return true
		}
	}
	return false
}
