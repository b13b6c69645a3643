// Package catalog reads the property listing catalog from Postgres.
package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/db"
	"github.com/kailas-cloud/roommatch/internal/domain/property"
)

// querier is the consumer interface over *sqlx.DB (ISP).
type querier interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Repo implements usecase/property.Catalog.
type Repo struct {
	db querier
}

// New creates a catalog repository.
func New(q querier) *Repo {
	return &Repo{db: q}
}

// List returns every listing in catalog order.
func (r *Repo) List(ctx context.Context) ([]property.Record, error) {
	var rows []listingRow
	const query = `SELECT id, title, address, city, locality, postal_code,
		price, amenities, visibility
		FROM listings
		ORDER BY position, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("list listings: %w", err)}
	}

	out := make([]property.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
