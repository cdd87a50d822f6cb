package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-tactics/internal/redis"
)

const (
	// DefaultKeyPrefix namespaces snapshot keys
	DefaultKeyPrefix = "tactics:session:"
	// DefaultTTL keeps an abandoned save around for a month
	DefaultTTL = 30 * 24 * time.Hour

	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

// RedisConfig contains configuration for the Redis session repository
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string
	// TTL defaults to DefaultTTL. Negative disables expiry.
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	ttl := cfg.TTL
	switch {
	case ttl == 0:
		ttl = DefaultTTL
	case ttl < 0:
		ttl = 0
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) key(id string) string {
	return r.prefix + id
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, r.key(input.Session.ID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save session")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, r.key(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var sess entities.Session
	if err := json.Unmarshal([]byte(result), &sess); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal session")
	}

	return &GetOutput{Session: &sess}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	n, err := r.client.Del(ctx, r.key(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}
	if n == 0 {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
