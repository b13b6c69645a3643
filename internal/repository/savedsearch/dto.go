package savedsearch

import (
	"fmt"
	"strconv"
	"time"

	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
)

// toHash converts a saved search to HSET fields. The snapshot is stored verbatim as JSON.
func toHash(s domss.SavedSearch) (map[string]string, error) {
	snap, err := domss.Marshal(s.Snapshot())
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"id":         s.ID(),
		"owner_id":   s.OwnerID(),
		"name":       s.Name(),
		"snapshot":   string(snap),
		"created_at": strconv.FormatInt(s.CreatedAt().UnixMilli(), 10),
	}, nil
}

// fromHash hydrates a saved search from an HGETALL result map.
func fromHash(m map[string]string) (domss.SavedSearch, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return domss.SavedSearch{}, fmt.Errorf("invalid created_at: %w", err)
	}
	snap, err := domss.Unmarshal([]byte(m["snapshot"]))
	if err != nil {
		return domss.SavedSearch{}, err
	}
	return domss.Reconstruct(m["id"], m["owner_id"], m["name"], snap, time.UnixMilli(createdAt).UTC()), nil
}
