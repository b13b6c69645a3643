package savedsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/event"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	"github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/internal/metrics"
	"github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// Service manages saved searches and replays them against the catalog.
type Service struct {
	repo     Repository
	searcher Searcher
	events   EventPublisher
	maxPer   int
	now      func() time.Time
	newID    func() string
}

// New creates a saved search service. events can be nil; maxPerOwner <= 0 disables the limit.
func New(repo Repository, searcher Searcher, events EventPublisher, maxPerOwner int) *Service {
	return &Service{
		repo:     repo,
		searcher: searcher,
		events:   events,
		maxPer:   maxPerOwner,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Save snapshots q under name for ownerID.
func (s *Service) Save(ctx context.Context, ownerID, name string, q domprop.Query) (domss.SavedSearch, error) {
	if s.maxPer > 0 {
		n, err := s.repo.Count(ctx, ownerID)
		if err != nil {
			return domss.SavedSearch{}, fmt.Errorf("count saved searches: %w", err)
		}
		if n >= s.maxPer {
			return domss.SavedSearch{}, fmt.Errorf("%w: owner %s has %d saved searches", domain.ErrSavedSearchLimit, ownerID, n)
		}
	}

	ss, err := domss.New(s.newID(), ownerID, name, q, s.now())
	if err != nil {
		return domss.SavedSearch{}, err
	}
	if err := s.repo.Create(ctx, ss); err != nil {
		return domss.SavedSearch{}, fmt.Errorf("create saved search: %w", err)
	}
	metrics.SavedSearchesTotal.WithLabelValues("save").Inc()

	if s.events != nil {
		e := event.New(event.SearchSaved, event.SearchSavedPayload{
			SearchID: ss.ID(),
			OwnerID:  ss.OwnerID(),
			Name:     ss.Name(),
			Snapshot: ss.Snapshot(),
		}, ss.CreatedAt())
		if err := s.events.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Warn("publish event failed",
				zap.String("event_id", e.ID),
				zap.String("event_type", string(e.Type)),
				zap.Error(err),
			)
		}
	}
	return ss, nil
}

// Get returns one saved search.
func (s *Service) Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error) {
	ss, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return domss.SavedSearch{}, fmt.Errorf("get saved search: %w", err)
	}
	return ss, nil
}

// List returns the saved searches of ownerID, oldest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error) {
	out, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}
	return out, nil
}

// Delete removes one saved search.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete saved search: %w", err)
	}
	metrics.SavedSearchesTotal.WithLabelValues("delete").Inc()
	return nil
}

// Run decodes the stored snapshot and searches with it. A snapshot that no longer
// validates fails with ErrInvalidSnapshot.
func (s *Service) Run(ctx context.Context, ownerID, id string, privileged bool, page property.Page) (property.Result, error) {
	ss, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return property.Result{}, err
	}
	q, err := ss.Query()
	if err != nil {
		return property.Result{}, fmt.Errorf("decode saved search %s: %w", id, err)
	}
	metrics.SavedSearchesTotal.WithLabelValues("run").Inc()
	return s.searcher.Search(ctx, q, privileged, page)
}
