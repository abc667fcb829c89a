// Package replay guards webhook processing against duplicate deliveries.
// Providers redeliver webhooks until acknowledged, so a verified signature
// alone does not make an event trustworthy: the same event id must be
// processed at most once within the retry window.
package replay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	pkgconfig "github.com/ecomstack/payment-gateway/pkg/config"
)

// Deduper tracks processed webhook event ids.
type Deduper interface {
	// Seen records eventID and reports whether it was already recorded
	// within the retention window.
	Seen(ctx context.Context, eventID string) (bool, error)
}

// Config holds the replay guard settings. An empty Redis address selects the
// in-memory deduper, which is only safe for single-instance deployments.
type Config struct {
	RedisAddr     string        `env:"WEBHOOK_DEDUP_REDIS_ADDR"`
	RedisPassword string        `env:"WEBHOOK_DEDUP_REDIS_PASSWORD"`
	RedisDB       int           `env:"WEBHOOK_DEDUP_REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"24h"`
}

// ConfigFromEnv reads the replay guard configuration from environment
// variables.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load replay guard config: %w", err)
	}
	return cfg, nil
}

type redisDeduper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (d *redisDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	key := d.prefix + ":" + eventID
	ok, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, err
	}
	// false => key already exists => duplicate
	return !ok, nil
}

type memoryDeduper struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	ttl    time.Duration
	nextGC time.Time
}

func newMemoryDeduper(ttl time.Duration) *memoryDeduper {
	now := time.Now()
	return &memoryDeduper{
		seen:   make(map[string]time.Time),
		ttl:    ttl,
		nextGC: now.Add(ttl),
	}
}

func (d *memoryDeduper) Seen(_ context.Context, eventID string) (bool, error) {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if exp, ok := d.seen[eventID]; ok && exp.After(now) {
		return true, nil
	}

	d.seen[eventID] = now.Add(d.ttl)
	if now.After(d.nextGC) {
		for id, exp := range d.seen {
			if exp.Before(now) {
				delete(d.seen, id)
			}
		}
		d.nextGC = now.Add(d.ttl)
	}

	return false, nil
}

// New builds a Redis-backed deduper and falls back to in-memory when Redis
// is not configured or not reachable. The error reports the failed Redis
// connection; the returned deduper is usable either way.
func New(cfg *Config) (Deduper, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if cfg.RedisAddr == "" {
		return newMemoryDeduper(ttl), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return newMemoryDeduper(ttl), fmt.Errorf("connect webhook dedup redis: %w", err)
	}

	return &redisDeduper{
		client: client,
		prefix: "webhook:event",
		ttl:    ttl,
	}, nil
}
