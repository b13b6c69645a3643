package property

import "strings"

// Visibility controls who may see a listing.
type Visibility string

// Visibility constants.
const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// ParseVisibility maps stored values onto the closed set, ignoring case. Anything
// unknown is Private, so a malformed row is never exposed to unprivileged callers.
func ParseVisibility(s string) Visibility {
	if strings.EqualFold(strings.TrimSpace(s), string(Public)) {
		return Public
	}
	return Private
}

// Record is one catalog listing.
type Record struct {
	ID         string          `json:"id"`
	Title      string          `json:"title,omitempty"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	Locality   string          `json:"locality,omitempty"`
	PostalCode string          `json:"postal_code,omitempty"`
	Price      int64           `json:"price"`
	Amenities  map[string]bool `json:"amenities,omitempty"`
	Visibility Visibility      `json:"visibility"`
}

// HasAmenity reports whether the amenity is present and true.
func (r Record) HasAmenity(id string) bool {
	return r.Amenities[id]
}

// IsPublic reports whether unprivileged callers may see the record.
func (r Record) IsPublic() bool { return r.Visibility == Public }
