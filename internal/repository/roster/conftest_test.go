package roster

import (
	"context"
	"testing"
)

// mockQuerier implements the consumer interface for tests.
type mockQuerier struct {
	selectFn func(ctx context.Context, dest any, query string, args ...any) error
	getFn    func(ctx context.Context, dest any, query string, args ...any) error
}

func (m *mockQuerier) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	if m.selectFn != nil {
		return m.selectFn(ctx, dest, query, args...)
	}
	return nil
}

func (m *mockQuerier) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if m.getFn != nil {
		return m.getFn(ctx, dest, query, args...)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockQuerier) {
	t.Helper()
	mq := &mockQuerier{}
	return New(mq), mq
}
