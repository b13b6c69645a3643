// Package roster reads user profiles from Postgres.
package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/db"
	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/feed"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	"github.com/kailas-cloud/roommatch/internal/logger"
)

// querier is the consumer interface over *sqlx.DB (ISP).
type querier interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

const selectColumns = `SELECT id, city, sub_locality, interests, lifestyle,
	noise_level, commute_minutes, rental_goal, role
	FROM users`

// Repo implements usecase/feed.RosterSource and usecase/compat.ProfileSource.
type Repo struct {
	db querier
}

// New creates a roster repository.
func New(q querier) *Repo {
	return &Repo{db: q}
}

// Load reads every user in roster order (sign-up order, then id) and fingerprints the result.
func (r *Repo) Load(ctx context.Context) (feed.Roster, error) {
	var rows []userRow
	query := selectColumns + ` ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return feed.Roster{}, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("load roster: %w", err)}
	}

	log := logger.FromContext(ctx)
	profiles := make([]profile.UserProfile, len(rows))
	for i, row := range rows {
		profiles[i] = toProfile(row, log)
	}
	return feed.NewRoster(profiles), nil
}

// Get reads one user.
func (r *Repo) Get(ctx context.Context, id string) (profile.UserProfile, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectColumns+` WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.UserProfile{}, domain.ErrNotFound
		}
		return profile.UserProfile{}, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("get user %s: %w", id, err)}
	}
	return toProfile(row, logger.FromContext(ctx)), nil
}
