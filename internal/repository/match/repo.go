// Package match records accepted candidates. Each (viewer, candidate) pair is written at most once.
package match

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kailas-cloud/roommatch/internal/db"
	"github.com/kailas-cloud/roommatch/internal/domain/feed"
)

// store is the consumer interface for matches (ISP).
type store interface {
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/feed.MatchRepository.
type Repo struct {
	store  store
	prefix string
}

// New creates a match repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Append stores m unless the pair already exists. It returns the stored match and
// whether this call created it.
func (r *Repo) Append(ctx context.Context, m feed.Match) (feed.Match, bool, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return feed.Match{}, false, fmt.Errorf("marshal match: %w", err)
	}

	key := r.key(m.ViewerID, m.CandidateID)
	created, err := r.store.SetNX(ctx, key, data)
	if err != nil {
		return feed.Match{}, false, fmt.Errorf("append match %s: %w", key, err)
	}
	if created {
		return m, true, nil
	}

	existing, err := r.store.Get(ctx, key)
	if err != nil {
		return feed.Match{}, false, fmt.Errorf("get match %s: %w", key, err)
	}
	var prev feed.Match
	if err := json.Unmarshal(existing, &prev); err != nil {
		return feed.Match{}, false, fmt.Errorf("unmarshal match %s: %w", key, err)
	}
	if prev.ViewerID != m.ViewerID || prev.CandidateID != m.CandidateID {
		return feed.Match{}, false, fmt.Errorf("match %s holds pair %s/%s", key, prev.ViewerID, prev.CandidateID)
	}
	return prev, false, nil
}

// List returns the matches of viewerID, oldest first.
func (r *Repo) List(ctx context.Context, viewerID string) ([]feed.Match, error) {
	keys, err := r.store.Scan(ctx, r.pattern(viewerID))
	if err != nil {
		return nil, fmt.Errorf("scan matches: %w", err)
	}
	if len(keys) == 0 {
		return []feed.Match{}, nil
	}

	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget matches: %w", err)
	}

	out := make([]feed.Match, 0, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		var m feed.Match
		if err := json.Unmarshal(v, &m); err != nil {
			return nil, fmt.Errorf("unmarshal match %s: %w", keys[i], err)
		}
		if m.ViewerID != viewerID {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CandidateID < out[j].CandidateID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Redis key pattern: {prefix}match:{viewer}:{candidate}, segments escaped with db.KeySegment

func (r *Repo) key(viewerID, candidateID string) string {
	return fmt.Sprintf("%smatch:%s:%s", r.prefix, db.KeySegment(viewerID), db.KeySegment(candidateID))
}

func (r *Repo) pattern(viewerID string) string {
	return fmt.Sprintf("%smatch:%s:*", db.EscapeGlob(r.prefix), db.EscapeGlob(db.KeySegment(viewerID)))
}
