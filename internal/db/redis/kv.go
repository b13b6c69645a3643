package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/roommatch/internal/db"
)

// Get retrieves a value by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.b().Get().Key(key).Build()
	data, err := s.do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}

// MGet fetches several keys in one DoMulti round-trip. Missing keys yield nil entries.
// One GET per key keeps the batch valid across cluster slots.
func (s *Store) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, len(keys))
	for i, key := range keys {
		cmds[i] = s.b().Get().Key(key).Build()
	}

	results := s.client.DoMulti(ctx, cmds...)
	out := make([][]byte, len(results))
	for i, res := range results {
		data, err := res.AsBytes()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, &db.Error{Op: db.OpMGet, Err: fmt.Errorf("key %s: %w", keys[i], err)}
		}
		out[i] = data
	}
	return out, nil
}

// SetWithTTL stores a value with an expiration. A non-positive ttl stores without expiry.
func (s *Store) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var cmd rueidis.Completed
	if ttl > 0 {
		cmd = s.b().Set().Key(key).Value(rueidis.BinaryString(value)).Ex(ttl).Build()
	} else {
		cmd = s.b().Set().Key(key).Value(rueidis.BinaryString(value)).Build()
	}
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// SetNX stores value only when key is absent. It reports whether the write happened.
func (s *Store) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	cmd := s.b().Set().Key(key).Value(rueidis.BinaryString(value)).Nx().Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpSetNX, Err: err}
	}
	return true, nil
}
