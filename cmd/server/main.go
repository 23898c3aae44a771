package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/config"
	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/session"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)
	sessions := initSessions(cfg)

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, cfg, store, sessions)

	// start
	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// initSessions picks the session backend. Redis keeps logins valid
// across restarts and instances; without it sessions are process-local.
func initSessions(cfg *config.Config) session.Store {
	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		log.Info().Str("address", cfg.RedisAddress).Msg("using redis session store")
		return session.NewRedisStore(rdb, session.DefaultTTL)
	}

	log.Warn().Msg("REDIS_ADDRESS not set, sessions will not survive a restart")
	return session.NewMemoryStore(session.DefaultTTL)
}
