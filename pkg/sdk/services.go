package roommatch

import (
	"context"
	"time"

	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
)

// FeedService runs swipe sessions.
type FeedService struct {
	svc feedUseCase
	obs *observer
}

// Open starts or resumes the feed of viewerID with the given filters.
func (s *FeedService) Open(ctx context.Context, viewerID string, filters FeedFilters) (v FeedView, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_open", start, err) }()

	f, err := domfeed.NewFilters(filters.City, filters.Interests)
	if err != nil {
		return FeedView{}, err
	}
	return s.svc.Open(ctx, viewerID, f)
}

// Current returns the feed without changing it. ErrFeedNotOpened if Open was never called.
func (s *FeedService) Current(ctx context.Context, viewerID string) (v FeedView, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_current", start, err) }()

	return s.svc.Current(ctx, viewerID)
}

// Accept likes the current candidate. A non-empty expectedID must name the current card.
func (s *FeedService) Accept(ctx context.Context, viewerID, expectedID string) (r SwipeResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_accept", start, err) }()

	return s.svc.Accept(ctx, viewerID, expectedID)
}

// Reject skips the current candidate. A non-empty expectedID must name the current card.
func (s *FeedService) Reject(ctx context.Context, viewerID, expectedID string) (r SwipeResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_reject", start, err) }()

	return s.svc.Reject(ctx, viewerID, expectedID)
}

// Matches lists accepted candidates, oldest first.
func (s *FeedService) Matches(ctx context.Context, viewerID string) (m []Match, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_matches", start, err) }()

	return s.svc.Matches(ctx, viewerID)
}

// PropertyService searches the listing catalog.
type PropertyService struct {
	svc        propertyUseCase
	obs        *observer
	privileged bool
}

// Search filters the catalog by q and returns one page.
func (s *PropertyService) Search(ctx context.Context, q PropertyQuery, page Page) (p PropertyPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("property_search", start, err) }()

	query, err := q.build()
	if err != nil {
		return PropertyPage{}, err
	}
	return s.svc.Search(ctx, query, s.privileged, page)
}

// SavedSearchService manages the saved searches of one owner.
type SavedSearchService struct {
	owner      string
	svc        savedSearchUseCase
	obs        *observer
	privileged bool
}

// Privileged returns a copy whose Run also sees private listings.
func (s *SavedSearchService) Privileged() *SavedSearchService {
	cp := *s
	cp.privileged = true
	return &cp
}

// Save stores q under name.
func (s *SavedSearchService) Save(ctx context.Context, name string, q PropertyQuery) (ss SavedSearch, err error) {
	start := time.Now()
	defer func() { s.obs.observe("saved_search_save", start, err) }()

	query, err := q.build()
	if err != nil {
		return SavedSearch{}, err
	}
	return s.svc.Save(ctx, s.owner, name, query)
}

// Get returns one saved search.
func (s *SavedSearchService) Get(ctx context.Context, id string) (ss SavedSearch, err error) {
	start := time.Now()
	defer func() { s.obs.observe("saved_search_get", start, err) }()

	return s.svc.Get(ctx, s.owner, id)
}

// List returns all saved searches, oldest first.
func (s *SavedSearchService) List(ctx context.Context) (ss []SavedSearch, err error) {
	start := time.Now()
	defer func() { s.obs.observe("saved_search_list", start, err) }()

	return s.svc.List(ctx, s.owner)
}

// Delete removes one saved search.
func (s *SavedSearchService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("saved_search_delete", start, err) }()

	return s.svc.Delete(ctx, s.owner, id)
}

// Run executes a saved search against the current catalog.
func (s *SavedSearchService) Run(ctx context.Context, id string, page Page) (p PropertyPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("saved_search_run", start, err) }()

	return s.svc.Run(ctx, s.owner, id, s.privileged, page)
}
