package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidProfile signals a user profile that cannot be scored.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrInvalidQuery signals a property query that cannot be built.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidSnapshot signals a stored saved-search snapshot that no longer decodes.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrUnknownVocabulary signals a value outside a closed vocabulary.
	ErrUnknownVocabulary = errors.New("unknown vocabulary entry")
	// ErrFeedNotOpened signals a swipe against a viewer with no feed state.
	ErrFeedNotOpened = errors.New("feed not opened")
	// ErrStaleFeed signals a swipe aimed at a candidate that is no longer current.
	ErrStaleFeed = errors.New("stale feed")
	// ErrInvalidSavedSearch signals a saved search that cannot be stored.
	ErrInvalidSavedSearch = errors.New("invalid saved search")
	// ErrSavedSearchLimit signals an owner at the saved search cap.
	ErrSavedSearchLimit = errors.New("saved search limit reached")
)

// VocabularyError wraps ErrUnknownVocabulary with the offending registry and value.
type VocabularyError struct {
	Registry string
	Value    string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnknownVocabulary.Error(), e.Registry, e.Value)
}

func (e *VocabularyError) Unwrap() error { return ErrUnknownVocabulary }

// NewVocabularyError creates an unknown vocabulary error.
func NewVocabularyError(registry, value string) error {
	return &VocabularyError{Registry: registry, Value: value}
}
