// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior. Zero values keep the go-redis
// defaults.
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

func (o *Options) apply(ro *redis.Options) {
	if o.Password != "" {
		ro.Password = o.Password
	}
	if o.DB != 0 {
		ro.DB = o.DB
	}
	ro.PoolSize = o.PoolSize
	ro.MinIdleConns = o.MinIdleConns
	ro.ConnMaxIdleTime = o.ConnMaxIdleTime
	ro.MaxRetries = o.MaxRetries
	if o.UseTLS && ro.TLSConfig == nil {
		ro.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
}

// NewClient creates a Redis client for a single instance at host:port.
// Connections are opened lazily, so an unreachable endpoint only surfaces
// on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: endpoint}
	opts.apply(redisOpts)

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL.
// Password, DB and TLS in the URL win unless opts sets them.
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	if rawURL == "" {
		return nil, errors.New("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}
	if opts != nil {
		opts.apply(redisOpts)
	}

	return redis.NewClient(redisOpts), nil
}
