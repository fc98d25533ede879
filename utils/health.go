package utils

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Postgres  bool      `json:"postgres"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. redisClient may be nil when the in-memory conversation store is used.
func StartHealthMonitor(db *sql.DB, redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			status := HealthStatus{
				Postgres:  db.PingContext(ctx) == nil,
				CheckedAt: time.Now(),
			}
			if redisClient != nil {
				ok := redisClient.Ping(ctx).Err() == nil
				status.Redis = &ok
			}
			cancel()

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
