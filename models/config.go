package models

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Application Configuration
//
// All settings come from STAYSEARCH_* environment variables. A .env file in the
// working directory is loaded first when present; variables already set in the
// environment win over the file.
// ============================================================================

// Listing sources understood by the server
const (
	ListingSourceStatic = "static"
	ListingSourceDuckDB = "duckdb"
)

// Config holds the runtime configuration for the web server and terminal browser
type Config struct {
	Address       string        // HTTP listen address (STAYSEARCH_ADDRESS)
	LogLevel      string        // logger level (STAYSEARCH_LOG_LEVEL)
	MetricsAddr   string        // Prometheus listener, empty disables (STAYSEARCH_METRICS_ADDR)
	ListingSource string        // static or duckdb (STAYSEARCH_LISTING_SOURCE)
	PageSize      int           // listings per "load more" page (STAYSEARCH_PAGE_SIZE)
	RedisAddr     string        // session store address, empty keeps sessions in memory (STAYSEARCH_REDIS_ADDR)
	RedisPassword string        // (STAYSEARCH_REDIS_PASSWORD)
	RedisDB       int           // (STAYSEARCH_REDIS_DB)
	SessionTTL    time.Duration // idle session lifetime, 0 keeps memory sessions forever (STAYSEARCH_SESSION_TTL)
	RateLimit     int           // requests per minute per client, 0 disables (STAYSEARCH_RATE_LIMIT)
	DeferGrid     bool          // render grid placeholders and fetch cards after load (STAYSEARCH_DEFER_GRID)
}

const (
	defaultAddress    = ":8000"
	defaultPageSize   = 4
	defaultSessionTTL = 24 * time.Hour
	defaultRateLimit  = 120
)

// DefaultConfig returns the configuration used when no variables are set
func DefaultConfig() *Config {
	return &Config{
		Address:       defaultAddress,
		LogLevel:      "info",
		ListingSource: ListingSourceStatic,
		PageSize:      defaultPageSize,
		SessionTTL:    defaultSessionTTL,
		RateLimit:     defaultRateLimit,
	}
}

// LoadConfig reads configuration from the environment (and .env if present)
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, serr.Wrap(err, "failed to load .env file")
	}
	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("STAYSEARCH_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("STAYSEARCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STAYSEARCH_LISTING_SOURCE"); v != "" {
		cfg.ListingSource = v
	}
	cfg.MetricsAddr = os.Getenv("STAYSEARCH_METRICS_ADDR")
	cfg.RedisAddr = os.Getenv("STAYSEARCH_REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("STAYSEARCH_REDIS_PASSWORD")

	var err error
	if cfg.PageSize, err = envInt("STAYSEARCH_PAGE_SIZE", cfg.PageSize); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = envInt("STAYSEARCH_REDIS_DB", cfg.RedisDB); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = envInt("STAYSEARCH_RATE_LIMIT", cfg.RateLimit); err != nil {
		return nil, err
	}

	if v := os.Getenv("STAYSEARCH_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, serr.Wrap(err, "invalid STAYSEARCH_SESSION_TTL value, expected duration like '24h'")
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("STAYSEARCH_DEFER_GRID"); v != "" {
		deferGrid, err := strconv.ParseBool(v)
		if err != nil {
			return nil, serr.Wrap(err, "invalid STAYSEARCH_DEFER_GRID value, expected true/false")
		}
		cfg.DeferGrid = deferGrid
	}

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, serr.Wrap(err, "invalid "+key+" value, expected an integer")
	}
	return n, nil
}

// Validate checks option ranges so that startup fails fast on a bad deployment
func (c *Config) Validate() error {
	if c.Address == "" {
		return serr.New("STAYSEARCH_ADDRESS must not be empty")
	}
	switch c.ListingSource {
	case ListingSourceStatic, ListingSourceDuckDB:
	default:
		return serr.New("STAYSEARCH_LISTING_SOURCE must be 'static' or 'duckdb', got '" + c.ListingSource + "'")
	}
	if c.PageSize < 1 {
		return serr.New("STAYSEARCH_PAGE_SIZE must be at least 1")
	}
	if c.RateLimit < 0 {
		return serr.New("STAYSEARCH_RATE_LIMIT must not be negative")
	}
	if c.RedisDB < 0 {
		return serr.New("STAYSEARCH_REDIS_DB must not be negative")
	}
	if c.RedisAddr != "" && c.SessionTTL <= 0 {
		return serr.New("STAYSEARCH_SESSION_TTL must be positive when Redis sessions are enabled")
	}
	return nil
}
