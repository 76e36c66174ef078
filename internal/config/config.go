package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrEnvNotConfigured = errors.New("environment not configured")

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// performance stats
	TimeZone                   string   `toml:"time_zone"`
	PerformanceCacheTTL        Duration `toml:"performance_cache_ttl"`
	PerformanceRateLimitPerMin int      `toml:"performance_rate_limit_per_min"`
	ActivityCacheSizeMegabytes int      `toml:"activity_cache_size_mb"`
	ActivityCacheExpirySeconds int      `toml:"activity_cache_expiry_seconds"`
}

// Location returns the time zone "today" is computed in, UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Duration lets durations be written as strings ("30s", "2m") in the TOML file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", env, ErrEnvNotConfigured)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.PerformanceCacheTTL.Duration <= 0 {
		c.PerformanceCacheTTL.Duration = 30 * time.Second
	}
	if c.PerformanceRateLimitPerMin <= 0 {
		c.PerformanceRateLimitPerMin = 120
	}
	if c.ActivityCacheSizeMegabytes <= 0 {
		c.ActivityCacheSizeMegabytes = 16
	}
	if c.ActivityCacheExpirySeconds <= 0 {
		c.ActivityCacheExpirySeconds = 300
	}
}
