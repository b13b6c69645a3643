package roommatch

import "github.com/kailas-cloud/roommatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrAlreadyExists      = domain.ErrAlreadyExists
	ErrInvalidProfile     = domain.ErrInvalidProfile
	ErrInvalidQuery       = domain.ErrInvalidQuery
	ErrInvalidSnapshot    = domain.ErrInvalidSnapshot
	ErrUnknownVocabulary  = domain.ErrUnknownVocabulary
	ErrFeedNotOpened      = domain.ErrFeedNotOpened
	ErrStaleFeed          = domain.ErrStaleFeed
	ErrInvalidSavedSearch = domain.ErrInvalidSavedSearch
	ErrSavedSearchLimit   = domain.ErrSavedSearchLimit
)

// VocabularyError carries the registry and value of an unknown vocabulary entry.
type VocabularyError = domain.VocabularyError
