package roommatch

import (
	"context"

	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// --- compatUseCase mock ---

type mockCompatUC struct {
	compareFn func(ctx context.Context, aID, bID string) (domcompat.Breakdown, error)
}

func (m *mockCompatUC) Compare(ctx context.Context, aID, bID string) (domcompat.Breakdown, error) {
	return m.compareFn(ctx, aID, bID)
}

// --- feedUseCase mock ---

type mockFeedUC struct {
	openFn    func(ctx context.Context, viewerID string, f domfeed.Filters) (feeduc.View, error)
	currentFn func(ctx context.Context, viewerID string) (feeduc.View, error)
	acceptFn  func(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	rejectFn  func(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	matchesFn func(ctx context.Context, viewerID string) ([]domfeed.Match, error)
}

func (m *mockFeedUC) Open(ctx context.Context, viewerID string, f domfeed.Filters) (feeduc.View, error) {
	return m.openFn(ctx, viewerID, f)
}

func (m *mockFeedUC) Current(ctx context.Context, viewerID string) (feeduc.View, error) {
	return m.currentFn(ctx, viewerID)
}

func (m *mockFeedUC) Accept(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error) {
	return m.acceptFn(ctx, viewerID, expectedID)
}

func (m *mockFeedUC) Reject(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error) {
	return m.rejectFn(ctx, viewerID, expectedID)
}

func (m *mockFeedUC) Matches(ctx context.Context, viewerID string) ([]domfeed.Match, error) {
	return m.matchesFn(ctx, viewerID)
}

// --- propertyUseCase mock ---

type mockPropertyUC struct {
	searchFn func(ctx context.Context, q domprop.Query, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

func (m *mockPropertyUC) Search(
	ctx context.Context, q domprop.Query, privileged bool, page propertyuc.Page,
) (propertyuc.Result, error) {
	return m.searchFn(ctx, q, privileged, page)
}

// --- savedSearchUseCase mock ---

type mockSavedSearchUC struct {
	saveFn   func(ctx context.Context, ownerID, name string, q domprop.Query) (domss.SavedSearch, error)
	getFn    func(ctx context.Context, ownerID, id string) (domss.SavedSearch, error)
	listFn   func(ctx context.Context, ownerID string) ([]domss.SavedSearch, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
	runFn    func(ctx context.Context, ownerID, id string, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

func (m *mockSavedSearchUC) Save(ctx context.Context, ownerID, name string, q domprop.Query) (domss.SavedSearch, error) {
	return m.saveFn(ctx, ownerID, name, q)
}

func (m *mockSavedSearchUC) Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error) {
	return m.getFn(ctx, ownerID, id)
}

func (m *mockSavedSearchUC) List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockSavedSearchUC) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFn(ctx, ownerID, id)
}

func (m *mockSavedSearchUC) Run(
	ctx context.Context, ownerID, id string, privileged bool, page propertyuc.Page,
) (propertyuc.Result, error) {
	return m.runFn(ctx, ownerID, id, privileged, page)
}

// --- pinger mock ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }
