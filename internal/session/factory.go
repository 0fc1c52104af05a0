package session

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/Shiksha/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NewStore picks the backend named by SESSION_BACKEND.
func NewStore(cfg *config.Config, db *gorm.DB) (Store, error) {
	switch cfg.Session.Backend {
	case "memory":
		log.Warn().Msg("Using in-memory session store; sessions are lost on restart")
		return NewMemoryStore(), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Session.RedisAddr, err)
		}
		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("Using redis session store")
		return NewRedisStore(rdb, cfg.Session.TTL), nil
	case "database", "":
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
