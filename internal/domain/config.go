package domain

// DefaultKeyPrefix namespaces every Redis key written by the service.
const DefaultKeyPrefix = "roommatch:"

// DefaultMaxSavedSearches caps the saved searches of one owner.
const DefaultMaxSavedSearches = 50
