package savedsearch

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/property"
)

// MaxNameLength bounds the display name in runes.
const MaxNameLength = 100

// SavedSearch is a named query snapshot owned by one user.
type SavedSearch struct {
	id        string
	ownerID   string
	name      string
	snapshot  Snapshot
	createdAt time.Time
}

// New validates the fields and snapshots q.
func New(id, ownerID, name string, q property.Query, createdAt time.Time) (SavedSearch, error) {
	if id == "" {
		return SavedSearch{}, fmt.Errorf("%w: id is required", domain.ErrInvalidSavedSearch)
	}
	if ownerID == "" {
		return SavedSearch{}, fmt.Errorf("%w: owner is required", domain.ErrInvalidSavedSearch)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return SavedSearch{}, fmt.Errorf("%w: name is required", domain.ErrInvalidSavedSearch)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return SavedSearch{}, fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidSavedSearch, MaxNameLength)
	}
	return SavedSearch{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		snapshot:  ToSnapshot(q),
		createdAt: createdAt.UTC(),
	}, nil
}

// Reconstruct rebuilds a SavedSearch from storage without validation.
func Reconstruct(id, ownerID, name string, s Snapshot, createdAt time.Time) SavedSearch {
	return SavedSearch{id: id, ownerID: ownerID, name: name, snapshot: s, createdAt: createdAt}
}

// ID returns the saved search id.
func (s SavedSearch) ID() string { return s.id }

// OwnerID returns the owning user id.
func (s SavedSearch) OwnerID() string { return s.ownerID }

// Name returns the display name.
func (s SavedSearch) Name() string { return s.name }

// Snapshot returns the stored query snapshot.
func (s SavedSearch) Snapshot() Snapshot { return s.snapshot }

// CreatedAt returns the creation time.
func (s SavedSearch) CreatedAt() time.Time { return s.createdAt }

// Query decodes the snapshot.
func (s SavedSearch) Query() (property.Query, error) {
	return FromSnapshot(s.snapshot)
}
