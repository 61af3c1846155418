package app

import (
	"context"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/queue"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies: the DB pool, the redis
// cache, the match usecase and the background queue.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Match  *usecase.Match
	Queue  *queue.MatchQueue
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	weightRepo := repository.NewPostgresWeightRepository(db)
	matchUC := usecase.NewMatchUsecase(
		repository.NewPostgresJobRepository(db),
		repository.NewPostgresCandidateRepository(db, weightRepo),
		repository.NewPostgresProfileRepository(db),
		weightRepo,
		repository.NewPostgresMatchRepository(db),
		redisCache,
		cfg.Redis.TTL,
		cfg.Match,
		logger,
	)

	matchQueue := queue.NewMatchQueue(matchUC, cfg.Match.QueueSize, logger)
	matchQueue.Start(1)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Match:  matchUC,
		Queue:  matchQueue,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Queue != nil {
		c.Queue.Stop()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
