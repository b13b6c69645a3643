// Package savedsearch stores named property query snapshots in Redis hashes.
package savedsearch

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/roommatch/internal/db"
	"github.com/kailas-cloud/roommatch/internal/domain"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
)

// store is the consumer interface for saved searches (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/savedsearch.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a saved search repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Create stores s. An existing id for the same owner yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s domss.SavedSearch) error {
	key := r.key(s.OwnerID(), s.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	fields, err := toHash(s)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset saved search %s: %w", s.ID(), err)
	}
	return nil
}

// Get returns one saved search of ownerID.
func (r *Repo) Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error) {
	m, err := r.store.HGetAll(ctx, r.key(ownerID, id))
	if err != nil {
		return domss.SavedSearch{}, fmt.Errorf("hgetall saved search %s: %w", id, err)
	}
	if !owns(m, ownerID, id) {
		return domss.SavedSearch{}, domain.ErrNotFound
	}
	return fromHash(m)
}

// List returns the saved searches of ownerID, oldest first.
func (r *Repo) List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error) {
	keys, hashes, err := r.owned(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]domss.SavedSearch, 0, len(hashes))
	for i, m := range hashes {
		s, err := fromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse saved search %s: %w", keys[i], err)
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID() < out[j].ID()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

// Count returns how many saved searches ownerID has. It counts the same
// records List returns, without decoding snapshots.
func (r *Repo) Count(ctx context.Context, ownerID string) (int, error) {
	_, hashes, err := r.owned(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(hashes), nil
}

// Delete removes one saved search of ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	key := r.key(ownerID, id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("hgetall saved search %s: %w", id, err)
	}
	if !owns(m, ownerID, id) {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del saved search %s: %w", id, err)
	}
	return nil
}

// owned returns the keys and hashes under ownerID's pattern that ownerID actually owns.
func (r *Repo) owned(ctx context.Context, ownerID string) ([]string, []map[string]string, error) {
	keys, err := r.store.Scan(ctx, r.pattern(ownerID))
	if err != nil {
		return nil, nil, fmt.Errorf("scan saved searches: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, nil, fmt.Errorf("hgetall multi saved searches: %w", err)
	}

	outKeys := make([]string, 0, len(results))
	out := make([]map[string]string, 0, len(results))
	for i, m := range results {
		if len(m) == 0 || m["owner_id"] != ownerID {
			continue
		}
		outKeys = append(outKeys, keys[i])
		out = append(out, m)
	}
	return outKeys, out, nil
}

func owns(m map[string]string, ownerID, id string) bool {
	return len(m) > 0 && m["owner_id"] == ownerID && m["id"] == id
}

// Redis key pattern: {prefix}search:{owner}:{id}, segments escaped with db.KeySegment

func (r *Repo) key(ownerID, id string) string {
	return fmt.Sprintf("%ssearch:%s:%s", r.prefix, db.KeySegment(ownerID), db.KeySegment(id))
}

func (r *Repo) pattern(ownerID string) string {
	return fmt.Sprintf("%ssearch:%s:*", db.EscapeGlob(r.prefix), db.EscapeGlob(db.KeySegment(ownerID)))
}
