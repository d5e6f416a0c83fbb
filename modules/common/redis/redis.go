package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
)

// QueueKey - job queue list key
const QueueKey = "jobs:queue"

// cancelFlagTTL - cancel flags expire on their own so stale flags
// cannot block a re-run of the same job id
const cancelFlagTTL = time.Hour

// Connect - create a Redis client
func Connect(cfg *config.Config) *redis.Client {
	log.Printf("🔌 Connecting to Redis: %s", cfg.GetRedisAddr())

	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // managed Redis with self-signed certs
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("🔍 Testing Redis connection...")
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Redis ping failed: %v", err)
		return nil
	}

	return rdb
}

// EnqueueJob - push a job id onto the queue, returns queue position
func EnqueueJob(ctx context.Context, rdb *redis.Client, jobID string) (int64, error) {
	position, err := rdb.LPush(ctx, QueueKey, jobID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue job %s: %w", jobID, err)
	}
	return position, nil
}

func cancelKey(jobID string) string {
	return "jobs:cancel:" + jobID
}

// SetJobCancelled - mark a job as cancelled
func SetJobCancelled(rdb *redis.Client, jobID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Set(ctx, cancelKey(jobID), "1", cancelFlagTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cancel flag for job %s: %w", jobID, err)
	}
	return nil
}

// IsJobCancelled - check the cancel flag
func IsJobCancelled(rdb *redis.Client, jobID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := rdb.Exists(ctx, cancelKey(jobID)).Result()
	if err != nil {
		log.Printf("⚠️ Failed to check cancel flag for job %s: %v", jobID, err)
		return false
	}
	return exists > 0
}

// ClearJobCancelled - remove the cancel flag (job re-queue)
func ClearJobCancelled(rdb *redis.Client, jobID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Del(ctx, cancelKey(jobID)).Err(); err != nil {
		log.Printf("⚠️ Failed to clear cancel flag for job %s: %v", jobID, err)
	}
}
