// Package cache keeps computed bill reports in Redis.
//
// Every tenant has a version counter; report keys embed the current version,
// so bumping it invalidates all of the tenant's reports at once and the old
// keys simply expire. A Reports without a client caches nothing.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/ledgr/internal/metrics"
)

const keyPrefix = "ledgr:reports"

// Connect opens a Redis client and pings it. On failure the client is closed
// and the error returned, so callers can run without a cache.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}

	return client, nil
}

type Reports struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewReports(client *redis.Client, ttl time.Duration) *Reports {
	return &Reports{
		client: client,
		ttl:    ttl,
		logger: slog.Default(),
	}
}

func versionKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, tenantID)
}

func (r *Reports) reportKey(ctx context.Context, tenantID uuid.UUID, name string) (string, error) {
	version, err := r.client.Get(ctx, versionKey(tenantID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, tenantID, version, name), nil
}

// Load decodes the cached report into dest and reports whether it was found.
func (r *Reports) Load(ctx context.Context, tenantID uuid.UUID, name string, dest any) bool {
	if r == nil || r.client == nil {
		return false
	}

	key, err := r.reportKey(ctx, tenantID, name)
	if err != nil {
		r.logger.Warn("reading report cache version", "tenant", tenantID, "error", err)
		return false
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("reading report cache", "key", key, "error", err)
		}

		metrics.CacheLookups.WithLabelValues("miss").Inc()

		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("decoding cached report", "key", key, "error", err)
		metrics.CacheLookups.WithLabelValues("miss").Inc()

		return false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()

	return true
}

func (r *Reports) Save(ctx context.Context, tenantID uuid.UUID, name string, value any) {
	if r == nil || r.client == nil {
		return
	}

	key, err := r.reportKey(ctx, tenantID, name)
	if err != nil {
		r.logger.Warn("reading report cache version", "tenant", tenantID, "error", err)
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("encoding report for cache", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("writing report cache", "key", key, "error", err)
	}
}

// Invalidate drops every cached report of the tenant.
func (r *Reports) Invalidate(ctx context.Context, tenantID uuid.UUID) {
	if r == nil || r.client == nil {
		return
	}

	if err := r.client.Incr(ctx, versionKey(tenantID)).Err(); err != nil {
		r.logger.Warn("invalidating report cache", "tenant", tenantID, "error", err)
	}
}
