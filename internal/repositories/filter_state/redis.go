package filterstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ba-raid-api/internal/redis"
)

// Key pattern: filter_state:{owner_id}
const stateKeyPrefix = "filter_state:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL expires idle states. Zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for filter states
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	data, err := r.client.Get(ctx, stateKey(input.OwnerID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no saved filter state for %s", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get filter state from Redis")
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// a corrupt entry is treated like a missing one; the client starts fresh
		slog.WarnContext(ctx, "discarding unreadable filter state",
			"owner_id", input.OwnerID,
			"error", err)
		_ = r.client.Del(ctx, stateKey(input.OwnerID))
		return nil, errors.NotFoundf("no saved filter state for %s", input.OwnerID)
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	state := *input.State
	state.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal filter state")
	}

	if err := r.client.Set(ctx, stateKey(state.OwnerID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store filter state in Redis")
	}

	slog.DebugContext(ctx, "saved filter state",
		"owner_id", state.OwnerID,
		"raid_id", state.RaidID)

	return &SaveOutput{State: &state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	n, err := r.client.Del(ctx, stateKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete filter state from Redis")
	}
	if n == 0 {
		return nil, errors.NotFoundf("no saved filter state for %s", input.OwnerID)
	}

	return &DeleteOutput{}, nil
}

func stateKey(ownerID string) string {
	return stateKeyPrefix + ownerID
}
