package savedsearch

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "test:"), ms
}

func testSearch(t *testing.T, id string, createdAt time.Time) domss.SavedSearch {
	t.Helper()
	q, err := property.NewQuery(property.QueryParams{
		City:      "Madrid",
		MaxPrice:  property.Price(900),
		Amenities: []string{"wifi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := domss.New(id, "owner1", "Madrid budget", q, createdAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}
