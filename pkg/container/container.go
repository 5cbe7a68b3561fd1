package container

import (
	"context"
	"fmt"
	"time"

	"github.com/mkigikm/director-api/internal/config"
	"github.com/mkigikm/director-api/internal/domains/director"
	directorHandler "github.com/mkigikm/director-api/internal/domains/director/handler"
	"github.com/mkigikm/director-api/internal/domains/director/livestream"
	directorRepo "github.com/mkigikm/director-api/internal/domains/director/repository"
	directorService "github.com/mkigikm/director-api/internal/domains/director/service"
	"github.com/mkigikm/director-api/internal/infrastructure/cache"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; handlers, services, and repositories are
// stateless.
type Container struct {
	Config *config.Config
	Redis  *cache.RedisClient

	DirectorRepo    director.Repository
	AccountClient   director.AccountClient
	DirectorService director.Service
	DirectorHandler *directorHandler.DirectorHandler
}

// NewContainer builds the full dependency graph. A failure here means the
// application must not start.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	redisClient := cache.NewRedisClient(cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	repo := directorRepo.NewRedisRepository(redisClient.Client)
	accounts := livestream.NewClient(cfg.Livestream)
	service := directorService.NewService(repo, accounts)
	handler := directorHandler.NewDirectorHandler(service)

	return &Container{
		Config:          cfg,
		Redis:           redisClient,
		DirectorRepo:    repo,
		AccountClient:   accounts,
		DirectorService: service,
		DirectorHandler: handler,
	}, nil
}

// Cleanup releases held connections. Safe to call once on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
