// Package bootstrap wires up the process runtime: database, cache, and
// development seed data.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"vybe/internal/cache"
	"vybe/internal/config"
	"vybe/internal/database"
	"vybe/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedPresets applies the platform directory and flagship event.
	SeedPresets bool
	// SeedDemo populates a full demo night (implies SeedPresets).
	SeedDemo bool
	// Demo tunes the demo seeder when SeedDemo is set.
	Demo seed.Options
}

// InitRuntime connects to DB and Redis and optionally runs built-in seeding.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Redis is optional; the client is nil when unreachable and callers
	// degrade to the database.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	ctx := context.Background()
	switch {
	case opts.SeedDemo:
		if !isDevelopment(cfg) {
			return nil, nil, fmt.Errorf("demo seeding is only available in development")
		}
		if err := seed.Demo(ctx, db, opts.Demo); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	case opts.SeedPresets:
		if err := seed.ApplyPresets(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to apply seed presets: %w", err)
		}
	}

	return db, r, nil
}

func isDevelopment(cfg *config.Config) bool {
	return cfg == nil || strings.EqualFold(cfg.Env, "development") || strings.EqualFold(cfg.Env, "test")
}
