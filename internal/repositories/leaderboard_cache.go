package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// ErrLeaderboardCacheMiss is returned when no cached leaderboard is present.
var ErrLeaderboardCacheMiss = errors.New("leaderboard not found in cache")

const leaderboardCacheKey = "leaderboard:users"

// LeaderboardCacheRepository caches the ordered leaderboard in Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached leaderboard
}

// NewLeaderboardCacheRepository creates a new repository instance with optional TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached leaderboard, preserving its stored order.
func (r *LeaderboardCacheRepository) Get(ctx context.Context) ([]models.UserDB, error) {
	val, err := r.client.Get(ctx, leaderboardCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", leaderboardCacheKey,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrLeaderboardCacheMiss
		}
		return nil, err
	}

	var users []models.UserDB
	if err := json.Unmarshal([]byte(val), &users); err != nil {
		logger.Log.Infow(
			"key", leaderboardCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", leaderboardCacheKey,
		"result", len(users),
		"error", nil,
	)

	return users, nil
}

// Set caches the leaderboard in Redis with expiration.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, users []models.UserDB) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, leaderboardCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", leaderboardCacheKey,
		"users", len(users),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached leaderboard so the next read hits the store.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, leaderboardCacheKey).Err()

	logger.Log.Infow(
		"key", leaderboardCacheKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
