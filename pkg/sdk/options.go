package roommatch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/roommatch/internal/domain"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	postgresDSN string
	redisAddrs  []string
	password    string
	keyPrefix   string

	eventsURL      string
	eventsExchange string

	feedStateTTL     time.Duration
	maxSavedSearches int
	defaultPageSize  int
	maxPageSize      int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		keyPrefix:        domain.DefaultKeyPrefix,
		maxSavedSearches: domain.DefaultMaxSavedSearches,
		defaultPageSize:  20,
		maxPageSize:      100,
	}
}

// WithPostgres sets the DSN of the users and listings database.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.postgresDSN = dsn
	})
}

// WithRedis sets the Redis instance holding feed state, matches and saved searches.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.redisAddrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix namespaces every Redis key. Default: "roommatch:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithEvents publishes match.created and search.saved to an AMQP topic exchange.
// An empty exchange uses the default one.
func WithEvents(url, exchange string) Option {
	return optionFunc(func(c *clientConfig) {
		c.eventsURL = url
		c.eventsExchange = exchange
	})
}

// WithFeedStateTTL expires idle feed sessions. Zero keeps them forever (default).
func WithFeedStateTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.feedStateTTL = ttl
	})
}

// WithMaxSavedSearches caps saved searches per owner. Default: 50.
func WithMaxSavedSearches(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxSavedSearches = n
	})
}

// WithPageSize sets the default and maximum property page sizes. Defaults: 20 and 100.
func WithPageSize(def, maxSize int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = def
		c.maxPageSize = maxSize
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
