// Package redis wraps go-redis so repositories depend on a small interface
// that tests can back with miniredis.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// MemoryAddr selects an embedded in-process server instead of a network one
const MemoryAddr = "memory"

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Open returns a client for endpoint. MemoryAddr starts an embedded server
// that lives until the returned close func runs.
func Open(endpoint string, opts *Options) (Client, func(), error) {
	if endpoint != MemoryAddr {
		client, err := NewClient(endpoint, opts)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}

	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis: failed to start embedded server")
	}
	client, err := NewClient(mr.Addr(), opts)
	if err != nil {
		mr.Close()
		return nil, nil, err
	}
	return client, func() {
		_ = client.Close()
		mr.Close()
	}, nil
}
