// Package bootstrap opens the runtime dependencies shared by the server
// and the maintenance commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/config"
	"github.com/RefuJobs/RefuJobs-server/internal/database"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/notifications"
	"github.com/RefuJobs/RefuJobs-server/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// FixturesPath names a YAML fixture file applied after the schema.
	FixturesPath string
	// SkipRedis leaves the Redis client nil, e.g. for one-shot commands.
	SkipRedis bool
}

// InitRuntime connects to the database, applies the schema and connects
// to Redis. An unreachable Redis is logged and yields a nil client.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.FixturesPath != "" {
		if err := applyFixtures(ctx, cfg, db, opts.FixturesPath); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
	}

	if opts.SkipRedis {
		return db, nil, nil
	}

	rdb, err := notifications.Connect(ctx, cfg.RedisURL)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Redis unavailable, job events disabled",
			slog.String("error", err.Error()))
		return db, nil, nil
	}
	return db, rdb, nil
}

func applyFixtures(ctx context.Context, cfg *config.Config, db *gorm.DB, path string) error {
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to load fixtures in %q", cfg.Env)
	}
	fx, err := seed.LoadFixturesFile(path)
	if err != nil {
		return err
	}
	result, err := seed.ApplyFixtures(ctx, db, auth.NewBcryptHasher(cfg.BcryptCost), fx)
	if err != nil {
		return fmt.Errorf("apply fixtures: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Fixtures applied",
		slog.String("path", path),
		slog.Int("users", result.Users),
		slog.Int("posts", result.Posts),
		slog.Int("resumes", result.Resumes))
	return nil
}
