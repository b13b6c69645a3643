package chi

import (
	"time"

	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeAlreadyExists    ErrorCode = "already_exists"
	ErrorCodeFeedNotOpened    ErrorCode = "feed_not_opened"
	ErrorCodeStaleFeed        ErrorCode = "stale_feed"
	ErrorCodeSearchLimit      ErrorCode = "saved_search_limit"
	ErrorCodeInvalidSnapshot  ErrorCode = "invalid_snapshot"
	ErrorCodeUnknownVocab     ErrorCode = "unknown_vocabulary"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Registry string    `json:"registry,omitempty"`
	Value    string    `json:"value,omitempty"`
}

// --- Requests ---

// OpenFeedRequest is the body of PUT /feeds/{viewer}.
type OpenFeedRequest struct {
	City      string   `json:"city" validate:"omitempty,max=100"`
	Interests []string `json:"interests" validate:"omitempty,max=20,dive,required"`
}

// SwipeRequest is the optional body of accept/reject. CandidateID guards against stale clients.
type SwipeRequest struct {
	CandidateID string `json:"candidate_id" validate:"omitempty,max=128"`
}

// SaveSearchRequest is the body of POST /users/{owner}/saved-searches.
type SaveSearchRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	City      string   `json:"city" validate:"omitempty,max=100"`
	Keyword   string   `json:"keyword" validate:"omitempty,max=200"`
	MinPrice  *int64   `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice  *int64   `json:"max_price" validate:"omitempty,gte=0"`
	Amenities []string `json:"amenities" validate:"omitempty,max=30,dive,required"`
}

// --- Responses ---

// CardResponse is the candidate under the cursor.
type CardResponse struct {
	Candidate profile.UserProfile `json:"candidate"`
	Breakdown domcompat.Breakdown `json:"breakdown"`
}

// FeedResponse is the body of the feed endpoints.
type FeedResponse struct {
	ViewerID  string          `json:"viewer_id"`
	Status    domfeed.Status  `json:"status"`
	Filters   domfeed.Filters `json:"filters"`
	Position  int             `json:"position"`
	Length    int             `json:"length"`
	Remaining int             `json:"remaining"`
	Matches   int             `json:"matches"`
	Rebuilt   bool            `json:"rebuilt"`
	Current   *CardResponse   `json:"current,omitempty"`
}

// SwipeResponse is the body of accept/reject.
type SwipeResponse struct {
	Action    domfeed.Action `json:"action"`
	Applied   bool           `json:"applied"`
	Candidate string         `json:"candidate_id,omitempty"`
	Match     *domfeed.Match `json:"match,omitempty"`
	Feed      FeedResponse   `json:"feed"`
}

// MatchListResponse lists the matches of a viewer.
type MatchListResponse struct {
	Items []domfeed.Match `json:"items"`
	Total int             `json:"total"`
}

// PropertyResponse is one listing.
type PropertyResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Address    string             `json:"address,omitempty"`
	City       string             `json:"city"`
	Locality   string             `json:"locality,omitempty"`
	PostalCode string             `json:"postal_code,omitempty"`
	Price      int64              `json:"price"`
	Amenities  []string           `json:"amenities"`
	Visibility domprop.Visibility `json:"visibility"`
}

// PropertyListResponse is one page of listings.
type PropertyListResponse struct {
	Items  []PropertyResponse `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// SavedSearchResponse is one saved search.
type SavedSearchResponse struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	Name      string         `json:"name"`
	Query     domss.Snapshot `json:"query"`
	CreatedAt time.Time      `json:"created_at"`
}

// SavedSearchListResponse lists saved searches.
type SavedSearchListResponse struct {
	Items []SavedSearchResponse `json:"items"`
	Total int                   `json:"total"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
