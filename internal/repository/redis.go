package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis keys and prefixes
	LinksCacheKey       = "lh:links"
	SourceKeyPrefix     = "lh:source:"
	UVKeyPrefix         = "lh:uv:"
	VisitorTotalKey     = "lh:visitors:total"
	StatsExpireDuration = 7 * 24 * time.Hour
	UVExpireDuration    = 48 * time.Hour
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveLinks caches the ordered link list
func (r *RedisRepository) SaveLinks(ctx context.Context, links []model.Link, ttl time.Duration) error {
	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}
	return r.client.Set(ctx, LinksCacheKey, data, ttl).Err()
}

// GetLinks returns the cached link list, or redis.Nil on a miss
func (r *RedisRepository) GetLinks(ctx context.Context) ([]model.Link, error) {
	data, err := r.client.Get(ctx, LinksCacheKey).Bytes()
	if err != nil {
		return nil, err
	}

	var links []model.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached links: %w", err)
	}
	return links, nil
}

// InvalidateLinks drops the cached link list
func (r *RedisRepository) InvalidateLinks(ctx context.Context) error {
	return r.client.Del(ctx, LinksCacheKey).Err()
}

// AddSource counts one visit from source on day
func (r *RedisRepository) AddSource(ctx context.Context, day, source string) error {
	key := r.sourceKey(source, day)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		r.client.Expire(ctx, key, StatsExpireDuration)
	}

	return nil
}

// GetSources sums the per-day source counters that have not expired yet
func (r *RedisRepository) GetSources(ctx context.Context) (map[string]int64, error) {
	sources := make(map[string]int64)

	iter := r.client.Scan(ctx, 0, SourceKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}

		name := strings.TrimPrefix(key, SourceKeyPrefix)
		if idx := strings.LastIndex(name, ":"); idx > 0 {
			name = name[:idx]
		}
		sources[name] += count
	}

	return sources, iter.Err()
}

// AddDailyVisitor adds a visitor to the day's unique visitor set and reports
// whether it was new
func (r *RedisRepository) AddDailyVisitor(ctx context.Context, day, visitorID string) (bool, error) {
	key := r.uvKey(day)

	added, err := r.client.SAdd(ctx, key, visitorID).Result()
	if err != nil {
		return false, err
	}
	r.client.Expire(ctx, key, UVExpireDuration)

	return added > 0, nil
}

// GetDailyVisitors returns the number of unique visitors on day
func (r *RedisRepository) GetDailyVisitors(ctx context.Context, day string) (int64, error) {
	return r.client.SCard(ctx, r.uvKey(day)).Result()
}

// IncrementVisitorTotal bumps the all-time unique visitor counter
func (r *RedisRepository) IncrementVisitorTotal(ctx context.Context) (int64, error) {
	return r.client.Incr(ctx, VisitorTotalKey).Result()
}

// GetVisitorTotal returns the all-time unique visitor counter
func (r *RedisRepository) GetVisitorTotal(ctx context.Context) (int64, error) {
	total, err := r.client.Get(ctx, VisitorTotalKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return total, err
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) sourceKey(source, day string) string {
	return fmt.Sprintf("%s%s:%s", SourceKeyPrefix, source, day)
}

func (r *RedisRepository) uvKey(day string) string {
	return UVKeyPrefix + day
}
