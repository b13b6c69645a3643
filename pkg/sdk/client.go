package roommatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbPostgres "github.com/kailas-cloud/roommatch/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/roommatch/internal/db/redis"
	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	catalogrepo "github.com/kailas-cloud/roommatch/internal/repository/catalog"
	feedstaterepo "github.com/kailas-cloud/roommatch/internal/repository/feedstate"
	matchrepo "github.com/kailas-cloud/roommatch/internal/repository/match"
	rosterrepo "github.com/kailas-cloud/roommatch/internal/repository/roster"
	savedsearchrepo "github.com/kailas-cloud/roommatch/internal/repository/savedsearch"
	amqpTransport "github.com/kailas-cloud/roommatch/internal/transport/amqp"
	compatuc "github.com/kailas-cloud/roommatch/internal/usecase/compat"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	healthuc "github.com/kailas-cloud/roommatch/internal/usecase/health"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
	savedsearchuc "github.com/kailas-cloud/roommatch/internal/usecase/savedsearch"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can swap the use cases.
type compatUseCase interface {
	Compare(ctx context.Context, aID, bID string) (domcompat.Breakdown, error)
}

type feedUseCase interface {
	Open(ctx context.Context, viewerID string, filters domfeed.Filters) (feeduc.View, error)
	Current(ctx context.Context, viewerID string) (feeduc.View, error)
	Accept(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	Reject(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)
	Matches(ctx context.Context, viewerID string) ([]domfeed.Match, error)
}

type propertyUseCase interface {
	Search(ctx context.Context, q domprop.Query, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

type savedSearchUseCase interface {
	Save(ctx context.Context, ownerID, name string, q domprop.Query) (domss.SavedSearch, error)
	Get(ctx context.Context, ownerID, id string) (domss.SavedSearch, error)
	List(ctx context.Context, ownerID string) ([]domss.SavedSearch, error)
	Delete(ctx context.Context, ownerID, id string) error
	Run(ctx context.Context, ownerID, id string, privileged bool, page propertyuc.Page) (propertyuc.Result, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Client is the roommatch SDK entry point.
type Client struct {
	postgres  pinger
	redis     pinger
	closers   []func()
	compatSvc compatUseCase
	feedSvc   feedUseCase
	propSvc   propertyUseCase
	searchSvc savedSearchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New connects to Postgres, Redis and optionally the event broker.
// The provided context is used for the initial readiness checks.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o.apply(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	pg, err := dbPostgres.Open(dbPostgres.Config{DSN: cfg.postgresDSN})
	if err != nil {
		return nil, fmt.Errorf("roommatch: open postgres: %w", err)
	}
	if err := pg.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		pg.Close()
		return nil, fmt.Errorf("roommatch: postgres not ready: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.redisAddrs, Password: cfg.password})
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("roommatch: create redis store: %w", err)
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		pg.Close()
		return nil, fmt.Errorf("roommatch: redis not ready: %w", err)
	}

	c := &Client{
		postgres: pg,
		redis:    store,
		closers:  []func(){store.Close, pg.Close},
		obs:      obs,
	}

	var (
		feedEvents   feeduc.EventPublisher
		searchEvents savedsearchuc.EventPublisher
		eventsHealth healthuc.Pinger
	)
	if cfg.eventsURL != "" {
		pub, err := amqpTransport.Dial(amqpTransport.Config{URL: cfg.eventsURL, Exchange: cfg.eventsExchange})
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("roommatch: connect broker: %w", err)
		}
		c.closers = append([]func(){func() { _ = pub.Close() }}, c.closers...)
		feedEvents, searchEvents, eventsHealth = pub, pub, pub
	}

	roster := rosterrepo.New(pg)
	propSvc := propertyuc.New(catalogrepo.New(pg), cfg.defaultPageSize, cfg.maxPageSize)

	c.compatSvc = compatuc.New(roster)
	c.feedSvc = feeduc.New(
		roster,
		feedstaterepo.New(store, cfg.keyPrefix, cfg.feedStateTTL),
		matchrepo.New(store, cfg.keyPrefix),
		feedEvents,
	)
	c.propSvc = propSvc
	c.searchSvc = savedsearchuc.New(savedsearchrepo.New(store, cfg.keyPrefix), propSvc, searchEvents, cfg.maxSavedSearches)
	c.healthSvc = healthuc.New(pg, store, eventsHealth)
	return c, nil
}

func (c *clientConfig) validate() error {
	if c.postgresDSN == "" {
		return errors.New("roommatch: postgres DSN required (use WithPostgres)")
	}
	if len(c.redisAddrs) == 0 || c.redisAddrs[0] == "" {
		return errors.New("roommatch: redis address required (use WithRedis)")
	}
	if c.maxSavedSearches < 1 {
		return errors.New("roommatch: max saved searches must be positive")
	}
	return nil
}

// Close releases all connections.
func (c *Client) Close() {
	for _, fn := range c.closers {
		fn()
	}
	c.closers = nil
}

// Ping checks Postgres and Redis connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.postgres.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	if err = c.redis.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Compare scores two users of the roster.
func (c *Client) Compare(ctx context.Context, aID, bID string) (b Breakdown, err error) {
	start := time.Now()
	defer func() { c.obs.observe("compare", start, err) }()

	return c.compatSvc.Compare(ctx, aID, bID)
}

// Feeds returns the swipe feed service.
func (c *Client) Feeds() *FeedService {
	return &FeedService{svc: c.feedSvc, obs: c.obs}
}

// Properties returns the public property search.
func (c *Client) Properties() *PropertyService {
	return &PropertyService{svc: c.propSvc, obs: c.obs}
}

// PrivilegedProperties returns a property search that also sees private listings.
func (c *Client) PrivilegedProperties() *PropertyService {
	return &PropertyService{svc: c.propSvc, obs: c.obs, privileged: true}
}

// SavedSearches returns the saved searches of ownerID.
func (c *Client) SavedSearches(ownerID string) *SavedSearchService {
	return &SavedSearchService{owner: ownerID, svc: c.searchSvc, obs: c.obs}
}
