package di

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-post-service/cmd/api/infrastructure"
	"user-post-service/internal/adapter/cache"
	sqliterepo "user-post-service/internal/adapter/db/sqlite"
	ginhandler "user-post-service/internal/adapter/gin/handler"
	"user-post-service/internal/adapter/gin/middleware"
	"user-post-service/internal/adapter/gin/router"
	"user-post-service/internal/adapter/repository/cached"
	"user-post-service/internal/adapter/repository/memory"
	"user-post-service/internal/config"
	postdomain "user-post-service/internal/domain/post"
	userdomain "user-post-service/internal/domain/user"
	"user-post-service/internal/usecase/post"
	"user-post-service/internal/usecase/user"
	redisclient "user-post-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB // nil unless STORE_DRIVER=sqlite
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	PostUC      post.Usecase
	RateLimiter *middleware.RateLimiter
	UserHandler *ginhandler.UserHandler
	PostHandler *ginhandler.PostHandler
	Router      http.Handler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c := &Container{Config: cfg, Logger: l}

	userRepo, postRepo, err := c.newRepositories()
	if err != nil {
		return nil, err
	}

	if cfg.NeedsRedis() {
		rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
	}

	if cfg.Cache.Enabled {
		// Stores start empty on every boot, so keys are scoped to this process
		instance := uuid.NewString()
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		userRepo = cached.NewUserRepository(userRepo,
			cache.NewRedisCache[userdomain.User](c.RedisClient.Client, cacheKeyPrefix(instance, "user"), ttl, l), l)
		postRepo = cached.NewPostRepository(postRepo,
			cache.NewRedisCache[postdomain.Post](c.RedisClient.Client, cacheKeyPrefix(instance, "post"), ttl, l), l)
		l.Info("entity cache enabled", zap.Duration("ttl", ttl), zap.String("instance", instance))
	}

	if cfg.RateLimit.Enabled {
		c.RateLimiter = middleware.NewRateLimiter(
			c.RedisClient.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           cfg.RateLimit.Enabled,
			},
			l,
		)
	}

	c.UserUC = user.New(userRepo, l)
	c.PostUC = post.New(postRepo, l)

	c.UserHandler = ginhandler.NewUserHandler(c.UserUC, l)
	c.PostHandler = ginhandler.NewPostHandler(c.PostUC, l)
	c.Router = router.SetupRouter(c.UserHandler, c.PostHandler, c.RateLimiter, l)

	return c, nil
}

func (c *Container) newRepositories() (user.Repository, post.Repository, error) {
	switch c.Config.Store.Driver {
	case config.StoreDriverSQLite:
		db, err := infrastructure.NewDatabase(c.Config, c.Logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		return sqliterepo.NewUserRepo(db, c.Logger), sqliterepo.NewPostRepo(db, c.Logger), nil
	default:
		c.Logger.Info("using in-memory store")
		return memory.NewUserRepository(c.Logger), memory.NewPostRepository(c.Logger), nil
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

func cacheKeyPrefix(instance, entity string) string {
	return fmt.Sprintf("%s:%s:%s", router.ServiceName, instance, entity)
}
