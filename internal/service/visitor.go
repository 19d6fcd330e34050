package service

import (
	"context"
	"time"

	"linkhub/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	visitorFilterKey      = "lh:visitors:bloom"
	visitorFallbackPrefix = "lh:visitors:seen:"
)

// RedisClient defines the Redis commands the visitor filter needs
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// VisitorFilter remembers every visitor fingerprint ever seen. It uses a
// RedisBloom filter when the module is loaded and one key per visitor otherwise.
type VisitorFilter struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// NewVisitorFilter creates a new Visitor Filter and reserves the Bloom filter
// when it does not exist yet
func NewVisitorFilter(client RedisClient, cfg *config.BloomConfig) *VisitorFilter {
	vf := &VisitorFilter{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	vf.reserve(context.Background())

	return vf
}

func (vf *VisitorFilter) reserve(ctx context.Context) {
	exists, err := vf.client.Exists(ctx, visitorFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check visitor filter existence")
		return
	}
	if exists > 0 {
		return
	}

	if err := vf.client.Do(ctx, "BF.RESERVE", visitorFilterKey, vf.errorRate, vf.capacity).Err(); err != nil {
		log.Warn().Err(err).Msg("BF.RESERVE not available, visitor filter falls back to plain keys")
		return
	}
	log.Info().Int64("capacity", vf.capacity).Float64("error_rate", vf.errorRate).Msg("Visitor filter created")
}

// Add records a visitor and reports whether it had not been seen before.
// With the Bloom filter a false positive can hide a new visitor.
func (vf *VisitorFilter) Add(ctx context.Context, visitorID string) (bool, error) {
	added, err := vf.client.Do(ctx, "BF.ADD", visitorFilterKey, visitorID).Int()
	if err == nil {
		return added == 1, nil
	}

	log.Debug().Err(err).Msg("BF.ADD not available, using SETNX as fallback")
	return vf.client.SetNX(ctx, visitorFallbackPrefix+visitorID, 1, 0).Result()
}

// IsAvailable reports whether the RedisBloom filter is in use
func (vf *VisitorFilter) IsAvailable(ctx context.Context) bool {
	return vf.client.Do(ctx, "BF.INFO", visitorFilterKey).Err() == nil
}

// GetCapacity returns the configured filter capacity
func (vf *VisitorFilter) GetCapacity() int64 {
	return vf.capacity
}
