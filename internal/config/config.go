// Package config loads the service configuration from an optional YAML file.
// Unset values fall back to the defaults below; command line flags are
// applied on top by cmd/server.
package config

import (
	"bytes"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

// Defaults
const (
	DefaultPort           = 50051
	DefaultRedisAddress   = "localhost:6379"
	DefaultFeedTimeout    = 30 * time.Second
	DefaultFeedCacheTTL   = 10 * time.Minute
	DefaultFilterStateTTL = 30 * 24 * time.Hour
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config is the full service configuration
type Config struct {
	Server      ServerConfig           `yaml:"server"`
	Redis       RedisConfig            `yaml:"redis"`
	Feed        FeedConfig             `yaml:"feed"`
	FilterState FilterStateConfig      `yaml:"filterState"`
	Thresholds  partyfilter.Thresholds `yaml:"thresholds"`
	Log         LogConfig              `yaml:"log"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port int `yaml:"port"`
}

// RedisConfig configures the Redis connection backing filter state and
// video analyses
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
	PoolSize int    `yaml:"poolSize"`
}

// FeedConfig configures the upstream data feed
type FeedConfig struct {
	BaseURL  string        `yaml:"baseUrl"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cacheTtl"`
}

// FilterStateConfig configures saved filter state
type FilterStateConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig configures the slog default logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Redis:  RedisConfig{Address: DefaultRedisAddress},
		Feed: FeedConfig{
			Timeout:  DefaultFeedTimeout,
			CacheTTL: DefaultFeedCacheTTL,
		},
		FilterState: FilterStateConfig{TTL: DefaultFilterStateTTL},
		Thresholds:  partyfilter.DefaultThresholds(),
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to read config file %s", path)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Keys not present keep their current values;
// unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid YAML")
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateRequired("redis.address", c.Redis.Address, vb)
	errors.ValidateNonNegative("redis.db", c.Redis.DB, vb)
	errors.ValidateNonNegative("redis.poolSize", c.Redis.PoolSize, vb)
	errors.ValidateRequired("feed.baseUrl", c.Feed.BaseURL, vb)
	errors.ValidateNonNegative("feed.timeout", c.Feed.Timeout, vb)
	errors.ValidateNonNegative("filterState.ttl", c.FilterState.TTL, vb)
	if err := c.Thresholds.Validate(); err != nil {
		vb.Field("thresholds", errors.GetMessage(err))
	}
	errors.ValidateEnum("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	return vb.Build()
}
