package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain"
	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	"github.com/kailas-cloud/roommatch/internal/domain/event"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	"github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/internal/metrics"
)

// Card is the candidate under the cursor together with its score breakdown.
type Card struct {
	Candidate profile.UserProfile
	Breakdown domcompat.Breakdown
}

// View is what a viewer sees of their feed.
type View struct {
	State     domfeed.State
	Current   *Card
	Remaining int
	Rebuilt   bool
}

// SwipeResult is the effect of Accept or Reject plus the next view.
type SwipeResult struct {
	Outcome domfeed.Outcome
	View    View
}

// Service runs swipe sessions over the stored roster.
type Service struct {
	roster  RosterSource
	states  StateRepository
	matches MatchRepository
	events  EventPublisher
	locks   *keyedMutex
	now     func() time.Time
}

// New creates a feed service. events can be nil.
func New(roster RosterSource, states StateRepository, matches MatchRepository, events EventPublisher) *Service {
	return &Service{
		roster:  roster,
		states:  states,
		matches: matches,
		events:  events,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

// session is a loaded feed: the viewer, the built queue and the synced state.
type session struct {
	viewer  profile.UserProfile
	queue   domfeed.Queue
	state   domfeed.State
	rebuilt bool
}

// Open (re)starts the feed of viewerID under filters. The cursor survives only
// when neither the roster nor the filters changed since the last call.
func (s *Service) Open(ctx context.Context, viewerID string, filters domfeed.Filters) (View, error) {
	unlock := s.locks.Lock(viewerID)
	defer unlock()

	prev, err := s.storedState(ctx, viewerID)
	if err != nil {
		return View{}, err
	}
	sess, err := s.load(ctx, viewerID, prev, filters)
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// Current returns the feed of viewerID under its stored filters.
func (s *Service) Current(ctx context.Context, viewerID string) (View, error) {
	unlock := s.locks.Lock(viewerID)
	defer unlock()

	sess, err := s.loadStored(ctx, viewerID)
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// Accept matches viewerID with the current candidate. A non-empty expectedID must name
// the current candidate, otherwise ErrStaleFeed is returned and nothing changes.
func (s *Service) Accept(ctx context.Context, viewerID, expectedID string) (SwipeResult, error) {
	return s.swipe(ctx, viewerID, expectedID, domfeed.ActionAccept)
}

// Reject skips the current candidate of viewerID.
func (s *Service) Reject(ctx context.Context, viewerID, expectedID string) (SwipeResult, error) {
	return s.swipe(ctx, viewerID, expectedID, domfeed.ActionReject)
}

// Matches lists the matches of viewerID.
func (s *Service) Matches(ctx context.Context, viewerID string) ([]domfeed.Match, error) {
	out, err := s.matches.List(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}

func (s *Service) swipe(ctx context.Context, viewerID, expectedID string, action domfeed.Action) (SwipeResult, error) {
	unlock := s.locks.Lock(viewerID)
	defer unlock()

	sess, err := s.loadStored(ctx, viewerID)
	if err != nil {
		return SwipeResult{}, err
	}

	if expectedID != "" {
		cur, ok := domfeed.Current(sess.state, sess.queue)
		if !ok || cur.Profile.ID != expectedID {
			return SwipeResult{}, fmt.Errorf("%w: candidate %s is not current", domain.ErrStaleFeed, expectedID)
		}
	}

	var (
		next domfeed.State
		out  domfeed.Outcome
	)
	if action == domfeed.ActionAccept {
		next, out = domfeed.Accept(sess.state, sess.queue)
	} else {
		next, out = domfeed.Reject(sess.state, sess.queue)
	}
	metrics.SwipesTotal.WithLabelValues(string(action), metrics.Outcome(out.Applied)).Inc()

	if !out.Applied {
		return SwipeResult{Outcome: out, View: s.view(sess)}, nil
	}
	// once per decided candidate; views of the same card are not counted
	metrics.CompatibilityScore.WithLabelValues("feed").Observe(float64(out.Candidate.Score))

	if out.Match != nil {
		stored, err := s.recordMatch(ctx, *out.Match)
		if err != nil {
			return SwipeResult{}, err
		}
		out.Match = &stored
	}

	if err := s.states.Save(ctx, next); err != nil {
		return SwipeResult{}, fmt.Errorf("save feed state: %w", err)
	}
	sess.state = next
	sess.rebuilt = false
	return SwipeResult{Outcome: out, View: s.view(sess)}, nil
}

// recordMatch appends m before the cursor is persisted, so a failed state write
// only replays an idempotent append.
func (s *Service) recordMatch(ctx context.Context, m domfeed.Match) (domfeed.Match, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = s.now().UTC()

	stored, created, err := s.matches.Append(ctx, m)
	if err != nil {
		return domfeed.Match{}, fmt.Errorf("append match: %w", err)
	}
	if !created {
		metrics.MatchesTotal.WithLabelValues("duplicate").Inc()
		return stored, nil
	}
	metrics.MatchesTotal.WithLabelValues("created").Inc()

	s.publish(ctx, event.New(event.MatchCreated, event.MatchCreatedPayload{
		MatchID:     stored.ID,
		ViewerID:    stored.ViewerID,
		CandidateID: stored.CandidateID,
		Score:       stored.Score,
	}, stored.CreatedAt))
	return stored, nil
}

// publish never fails the caller: the match is already stored.
func (s *Service) publish(ctx context.Context, e event.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("publish event failed",
			zap.String("event_id", e.ID),
			zap.String("event_type", string(e.Type)),
			zap.Error(err),
		)
	}
}

func (s *Service) storedState(ctx context.Context, viewerID string) (*domfeed.State, error) {
	st, err := s.states.Get(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feed state: %w", err)
	}
	return &st, nil
}

func (s *Service) loadStored(ctx context.Context, viewerID string) (session, error) {
	prev, err := s.storedState(ctx, viewerID)
	if err != nil {
		return session{}, err
	}
	if prev == nil {
		return session{}, domain.ErrFeedNotOpened
	}
	return s.load(ctx, viewerID, prev, prev.Filters)
}

// load builds the queue from the current roster and syncs prev with it.
// A rebuilt state is persisted immediately.
func (s *Service) load(ctx context.Context, viewerID string, prev *domfeed.State, filters domfeed.Filters) (session, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return session{}, fmt.Errorf("load roster: %w", err)
	}
	viewer, ok := roster.Find(viewerID)
	if !ok {
		return session{}, fmt.Errorf("viewer %s: %w", viewerID, domain.ErrNotFound)
	}

	q := domfeed.Build(viewer, roster.Profiles, filters)
	state, rebuilt := domfeed.Sync(prev, viewerID, roster.ID, filters, q)
	if rebuilt {
		// matches survive a rebuild; only the cursor resets
		if prev != nil {
			state.Matches = prev.Matches
		}
		if err := s.states.Save(ctx, state); err != nil {
			return session{}, fmt.Errorf("save feed state: %w", err)
		}
		metrics.FeedRebuildsTotal.Inc()
		logger.FromContext(ctx).Debug("feed rebuilt",
			zap.String("viewer_id", viewerID),
			zap.String("roster_id", roster.ID),
			zap.Int("length", q.Len()),
		)
	}
	return session{viewer: viewer, queue: q, state: state, rebuilt: rebuilt}, nil
}

func (s *Service) view(sess session) View {
	v := View{State: sess.state, Remaining: sess.state.Remaining(), Rebuilt: sess.rebuilt}
	if cur, ok := domfeed.Current(sess.state, sess.queue); ok {
		v.Current = &Card{Candidate: cur.Profile, Breakdown: domcompat.Explain(sess.viewer, cur.Profile)}
	}
	return v
}
