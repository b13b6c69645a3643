// Package vocab holds the closed vocabularies shared by profile producers,
// property producers and the matching engine.
package vocab

import "github.com/kailas-cloud/roommatch/internal/domain"

// Registry is an immutable closed set of vocabulary entries.
type Registry struct {
	name    string
	entries map[string]struct{}
	ordered []string
}

func newRegistry(name string, entries ...string) Registry {
	set := make(map[string]struct{}, len(entries))
	ordered := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := set[e]; dup {
			continue
		}
		set[e] = struct{}{}
		ordered = append(ordered, e)
	}
	return Registry{name: name, entries: set, ordered: ordered}
}

// Interests is the registry of hobby/interest identifiers.
var Interests = newRegistry("interest",
	"Music", "Movies", "Sports", "Cooking", "Reading",
	"Travel", "Gaming", "Art", "Photography", "Fitness",
	"Yoga", "Hiking", "Technology", "Fashion", "Dancing",
	"Languages", "Volunteering", "Gardening", "Theatre", "Cycling",
)

// Lifestyle is the registry of lifestyle tags.
var Lifestyle = newRegistry("lifestyle",
	"Quiet", "Social", "Creative", "DayPerson", "NightOwl",
	"Tidy", "Relaxed", "Active", "Homebody", "Studious",
	"RemoteWorker", "PetOwner", "NonSmoker", "Vegetarian", "EarlyRiser",
)

// Amenities is the registry of property amenity identifiers.
var Amenities = newRegistry("amenity",
	"wifi", "heating", "air_conditioning", "washing_machine", "dishwasher",
	"elevator", "parking", "balcony", "terrace", "furnished",
	"pets_allowed", "pool", "gym", "doorman", "storage",
)

// Name returns the registry name used in error messages and logs.
func (r Registry) Name() string { return r.name }

// Contains reports whether v is a registered entry.
func (r Registry) Contains(v string) bool {
	_, ok := r.entries[v]
	return ok
}

// Entries returns the registered entries in declaration order.
func (r Registry) Entries() []string {
	out := make([]string, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Validate returns values with duplicates removed (first occurrence wins).
// The first unregistered value yields a *domain.VocabularyError.
func (r Registry) Validate(values []string) ([]string, error) {
	known, unknown := r.Partition(values)
	if len(unknown) > 0 {
		return nil, domain.NewVocabularyError(r.name, unknown[0])
	}
	return known, nil
}

// Partition splits values into deduplicated registered entries and unregistered leftovers.
// Both slices keep input order. Nil input yields nil known.
func (r Registry) Partition(values []string) (known, unknown []string) {
	if values == nil {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(values))
	known = make([]string, 0, len(values))
	for _, v := range values {
		if !r.Contains(v) {
			unknown = append(unknown, v)
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		known = append(known, v)
	}
	return known, unknown
}
