package match

import (
	"context"
	"testing"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	setNXFn func(ctx context.Context, key string, value []byte) (bool, error)
	getFn   func(ctx context.Context, key string) ([]byte, error)
	mgetFn  func(ctx context.Context, keys []string) ([][]byte, error)
	scanFn  func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return true, nil
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if m.mgetFn != nil {
		return m.mgetFn(ctx, keys)
	}
	return nil, nil
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
