package feed

import (
	"context"

	"github.com/kailas-cloud/roommatch/internal/domain/event"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
)

// RosterSource loads the current user roster.
type RosterSource interface {
	Load(ctx context.Context) (domfeed.Roster, error)
}

// StateRepository persists swipe sessions.
type StateRepository interface {
	Get(ctx context.Context, viewerID string) (domfeed.State, error)
	Save(ctx context.Context, s domfeed.State) error
}

// MatchRepository stores accepted pairs.
type MatchRepository interface {
	Append(ctx context.Context, m domfeed.Match) (domfeed.Match, bool, error)
	List(ctx context.Context, viewerID string) ([]domfeed.Match, error)
}

// EventPublisher hands events to an external notifier.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
