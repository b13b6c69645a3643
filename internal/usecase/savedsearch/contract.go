package savedsearch

import (
	"context"

	"github.com/kailas-cloud/roommatch/internal/domain/event"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	"github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// Repository persists saved searches.
type Repository interface {
	Create(ctx context.Context, s domss.SavedSearch) error
	Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error)
	List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error)
	Count(ctx context.Context, ownerID string) (int, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Searcher runs a property query.
type Searcher interface {
	Search(ctx context.Context, q domprop.Query, privileged bool, page property.Page) (property.Result, error)
}

// EventPublisher hands events to an external notifier.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
