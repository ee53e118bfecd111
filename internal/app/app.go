// Package app wires stores, the provider client and services for the
// command entrypoints.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookrec/internal/book"
	"bookrec/internal/config"
	"bookrec/internal/platform/googlebooks"
	"bookrec/internal/platform/logger"
	"bookrec/internal/preference"
	"bookrec/internal/profile"
	"bookrec/internal/readinglist"
	"bookrec/internal/recommend"
	"bookrec/internal/search"
	"bookrec/internal/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	userAgent      = "bookrec/1.0"
	cacheQueueSize = 512
)

type App struct {
	Config config.Config
	Log    *logger.Logger
	DB     *pgxpool.Pool

	redis       *redis.Client
	cacheWriter *search.CacheWriter

	Users       *user.Service
	Books       *book.Service
	Preferences *preference.Service
	Library     *readinglist.Service
	Profiles    *profile.Service
	Search      *search.Service
	Recommend   *recommend.Service
}

// New connects to Postgres (and Redis when configured) and builds every
// service. Call Close when done.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	db, err := OpenDB(ctx, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Log: log, DB: db}

	userRepo := user.NewPostgresRepo(db, cfg.DBTimeout)
	bookRepo := book.NewPostgresRepo(db, cfg.DBTimeout)
	prefRepo := preference.NewPostgresRepo(db, cfg.DBTimeout)
	libraryRepo := readinglist.NewPostgresRepo(db, cfg.DBTimeout)

	a.Users = user.NewService(userRepo)
	a.Books = book.NewService(bookRepo)
	a.Preferences = preference.NewService(prefRepo, a.Users, log)
	a.Library = readinglist.NewService(libraryRepo, a.Users, log)
	a.Profiles = profile.NewService(a.Users, a.Preferences, a.Library)

	gbConfig := googlebooks.Config{
		BaseURL:    cfg.GoogleBooks.BaseURL,
		APIKey:     cfg.GoogleBooks.APIKey,
		UserAgent:  userAgent,
		RPS:        cfg.GoogleBooks.RPS,
		MaxRetries: cfg.GoogleBooks.MaxRetries,
		Timeout:    cfg.GoogleBooks.Timeout,
		Logger:     log,
	}
	var provider search.Provider = googlebooks.NewClient(gbConfig)
	if cfg.RedisAddr != "" {
		if a.redis, err = openRedis(ctx, cfg.RedisAddr); err != nil {
			log.Warn("query cache disabled", "error", err)
		} else {
			provider = search.NewCachedProvider(provider, search.NewRedisKV(a.redis), cfg.QueryCacheTTL, log)
		}
	}

	tuning := cfg.Recommend
	a.cacheWriter = search.NewCacheWriter(bookRepo, cacheQueueSize, log)
	expander := search.NewExpander(tuning.GenreSynonyms, tuning.Search.MaxSynonymQueries, tuning.Search.SynonymQueryLimit)
	a.Search = search.NewService(provider, expander, a.cacheWriter, gbConfig.CallBudget(), log)

	a.Recommend = recommend.NewService(
		a.Users,
		prefRepo,
		a.Library,
		a.Search,
		recommend.NewAggregator(a.Search, tuning.Search.FanOut),
		recommend.NewScorer(tuning.Weights, tuning.GenreSynonyms),
		recommend.Config{
			PerTermLimit:  tuning.Search.PerTermLimit,
			FallbackQuery: tuning.Search.FallbackQuery,
		},
		log,
	)
	return a, nil
}

// Close drains pending book cache writes, then releases connections.
func (a *App) Close() {
	if a.cacheWriter != nil {
		a.cacheWriter.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.DB.Close()
}

// OpenDB creates a pool and checks the database answers.
func OpenDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}

func openRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RedactDSN hides the credentials part of a connection URL.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
