package chi

import (
	"context"

	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	healthuc "github.com/kailas-cloud/roommatch/internal/usecase/health"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// CompatService compares two users.
type CompatService interface {
	Compare(ctx context.Context, aID, bID string) (domcompat.Breakdown, error)
}

// FeedService runs swipe sessions.
type FeedService interface {
	Open(ctx context.Context, viewerID string, filters domfeed.Filters) (feeduc.View, error)
	Current(ctx context.Context, viewerID string) (feeduc.View, error)
	Accept(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	Reject(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	Matches(ctx context.Context, viewerID string) ([]domfeed.Match, error)
}

// PropertyService searches listings.
type PropertyService interface {
	Search(ctx context.Context, q domprop.Query, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

// SavedSearchService manages saved searches.
type SavedSearchService interface {
	Save(ctx context.Context, ownerID, name string, q domprop.Query) (domss.SavedSearch, error)
	Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error)
	List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error)
	Delete(ctx context.Context, ownerID, id string) error
	Run(ctx context.Context, ownerID, id string, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}
