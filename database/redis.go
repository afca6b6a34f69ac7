package database

import (
	"context"
	"fmt"
	"time"

	"kucukaslan/interactions/config"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/timerange"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

const RedisKeyPrefix = "interaction:"

// DedupRedis holds short-lived claims on an interaction's dedup identity. A
// claim is taken with SET NX, so of two concurrent requests for the same
// identity exactly one wins.
type DedupRedis struct {
	*redis.Client
	clickTTL  time.Duration
	viewGrace time.Duration
}

func NewDedupRedis(client *redis.Client, clickTTL, viewGrace time.Duration) DedupRedis {
	return DedupRedis{Client: client, clickTTL: clickTTL, viewGrace: viewGrace}
}

func clickKey(actorID, targetID string) string {
	return RedisKeyPrefix + "click:" + actorID + ":" + targetID
}

func viewKey(actorID, targetID string, at time.Time) string {
	return RedisKeyPrefix + "view:" + actorID + ":" + targetID + ":" + at.UTC().Format(time.DateOnly)
}

// viewTTL keeps a view claim until the end of its UTC day plus the grace period.
func (r DedupRedis) viewTTL(at time.Time) time.Duration {
	_, end := timerange.DayBounds(at)
	return end.Sub(at) + r.viewGrace
}

// ClaimClick reports whether the caller won the click claim for (actor, target)
func (r DedupRedis) ClaimClick(ctx context.Context, actorID, targetID string) (bool, error) {
	return r.SetNX(ctx, clickKey(actorID, targetID), "1", r.clickTTL).Result()
}

// ClaimView reports whether the caller won the view claim for (actor, target)
// on the UTC day of at
func (r DedupRedis) ClaimView(ctx context.Context, actorID, targetID string, at time.Time) (bool, error) {
	return r.SetNX(ctx, viewKey(actorID, targetID, at), "1", r.viewTTL(at)).Result()
}

func (r DedupRedis) ReleaseClick(ctx context.Context, actorID, targetID string) error {
	return r.Del(ctx, clickKey(actorID, targetID)).Err()
}

func (r DedupRedis) ReleaseView(ctx context.Context, actorID, targetID string, at time.Time) error {
	return r.Del(ctx, viewKey(actorID, targetID, at)).Err()
}

// InitRedis initializes the Redis client connection
func InitRedis(cfg *config.RedisConfig) error {
	addr := cfg.GetRedisAddr()

	opts := &redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisClient = client
	logger.Log.Info().Str("addr", addr).Msg("Redis connection established")
	return nil
}

// CloseRedis closes the Redis client connection
func CloseRedis() error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		logger.Log.Info().Msg("Redis connection closed")
	}
	return nil
}

// RedisHealthCheck verifies that the Redis connection is alive
func RedisHealthCheck(ctx context.Context) error {
	if redisClient == nil {
		return fmt.Errorf("Redis connection is not initialized")
	}
	return redisClient.Ping(ctx).Err()
}

func GetDedupRedis(cfg *config.RedisConfig) DedupRedis {
	return NewDedupRedis(redisClient, cfg.ClickClaimTTL, cfg.ViewClaimGrace)
}
