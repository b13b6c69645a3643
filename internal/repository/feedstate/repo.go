// Package feedstate persists swipe sessions as JSON values with a TTL.
package feedstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/roommatch/internal/db"
	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/feed"
)

// store is the consumer interface for feed states (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/feed.StateRepository.
type Repo struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a feed state repository. A non-positive ttl keeps states forever.
func New(s store, prefix string, ttl time.Duration) *Repo {
	return &Repo{store: s, prefix: prefix, ttl: ttl}
}

// Get loads the state of viewerID.
func (r *Repo) Get(ctx context.Context, viewerID string) (feed.State, error) {
	data, err := r.store.Get(ctx, r.key(viewerID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return feed.State{}, domain.ErrNotFound
		}
		return feed.State{}, fmt.Errorf("get feed state %s: %w", viewerID, err)
	}

	var s feed.State
	if err := json.Unmarshal(data, &s); err != nil {
		return feed.State{}, fmt.Errorf("unmarshal feed state %s: %w", viewerID, err)
	}
	return s, nil
}

// Save stores s and refreshes its TTL.
func (r *Repo) Save(ctx context.Context, s feed.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal feed state: %w", err)
	}
	if err := r.store.SetWithTTL(ctx, r.key(s.ViewerID), data, r.ttl); err != nil {
		return fmt.Errorf("save feed state %s: %w", s.ViewerID, err)
	}
	return nil
}

// Delete drops the state of viewerID.
func (r *Repo) Delete(ctx context.Context, viewerID string) error {
	if err := r.store.Del(ctx, r.key(viewerID)); err != nil {
		return fmt.Errorf("delete feed state %s: %w", viewerID, err)
	}
	return nil
}

func (r *Repo) key(viewerID string) string {
	return fmt.Sprintf("%sfeed:%s", r.prefix, viewerID)
}
