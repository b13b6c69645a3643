package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/roommatch/internal/domain"
)

// Config holds the roommatch API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Events   EventsConfig   `yaml:"events"`
	Auth     AuthConfig     `yaml:"auth"`
	Feed     FeedConfig     `yaml:"feed"`
	Search   SearchConfig   `yaml:"search"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys     []string `yaml:"api_keys"`
	PremiumKeys []string `yaml:"premium_keys"` // also grant access to private listings
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
	CORSOrigins     []string `yaml:"cors_origins"` // empty = CORS disabled
}

// PostgresConfig holds the roster and catalog database settings.
type PostgresConfig struct {
	DSN                string `yaml:"dsn"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `yaml:"conn_max_lifetime_sec"`
	ReadinessTimeout   int    `yaml:"readiness_timeout_sec"`
}

// RedisConfig holds the session store settings.
type RedisConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	KeyPrefix        string   `yaml:"key_prefix"`
	FeedStateTTLSec  int      `yaml:"feed_state_ttl_sec"` // 0 = no expiry
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// EventsConfig holds the AMQP publisher settings. An empty URL disables events.
type EventsConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

// Enabled reports whether events are published.
func (e EventsConfig) Enabled() bool { return e.URL != "" }

// FeedConfig holds feed settings.
type FeedConfig struct {
	MaxSavedSearches int `yaml:"max_saved_searches"`
}

// SearchConfig holds property search pagination settings.
type SearchConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// LoadDotEnv loads a .env file into the process environment when present.
// Variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from configPath.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Postgres.MaxOpenConns <= 0 {
		c.Postgres.MaxOpenConns = 10
	}
	if c.Postgres.MaxIdleConns <= 0 {
		c.Postgres.MaxIdleConns = 5
	}
	if c.Postgres.ConnMaxLifetimeSec <= 0 {
		c.Postgres.ConnMaxLifetimeSec = 300
	}
	if c.Postgres.ReadinessTimeout <= 0 {
		c.Postgres.ReadinessTimeout = 10
	}
	if c.Redis.ReadinessTimeout <= 0 {
		c.Redis.ReadinessTimeout = 10
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = domain.DefaultKeyPrefix
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = "roommatch.events"
	}
	if c.Feed.MaxSavedSearches <= 0 {
		c.Feed.MaxSavedSearches = domain.DefaultMaxSavedSearches
	}
	if c.Search.DefaultPageSize <= 0 {
		c.Search.DefaultPageSize = 20
	}
	if c.Search.MaxPageSize <= 0 {
		c.Search.MaxPageSize = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if len(c.Redis.Addrs) == 0 {
		return fmt.Errorf("redis.addrs is required")
	}
	if c.Redis.FeedStateTTLSec < 0 {
		return fmt.Errorf("redis.feed_state_ttl_sec must be non-negative, got %d", c.Redis.FeedStateTTLSec)
	}
	if c.Search.MaxPageSize < c.Search.DefaultPageSize {
		return fmt.Errorf(
			"search.max_page_size (%d) must be at least search.default_page_size (%d)",
			c.Search.MaxPageSize, c.Search.DefaultPageSize,
		)
	}
	if c.Events.URL != "" && !strings.HasPrefix(c.Events.URL, "amqp://") && !strings.HasPrefix(c.Events.URL, "amqps://") {
		return fmt.Errorf("events.url must use the amqp or amqps scheme")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
