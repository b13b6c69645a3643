package feedstate

import (
	"context"
	"testing"
	"time"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn        func(ctx context.Context, key string) ([]byte, error)
	setWithTTLFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	delFn        func(ctx context.Context, key string) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setWithTTLFn != nil {
		return m.setWithTTLFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "test:", time.Hour), ms
}
