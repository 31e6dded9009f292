package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/config"
	"bookclub-backend/internal/domains/account"
	"bookclub-backend/internal/domains/author"
	"bookclub-backend/internal/domains/book"
	"bookclub-backend/internal/domains/comment"
	"bookclub-backend/internal/domains/profile"
	infraCache "bookclub-backend/internal/infrastructure/cache"
	"bookclub-backend/internal/infrastructure/database"
	"bookclub-backend/internal/infrastructure/docstore"
	"bookclub-backend/internal/infrastructure/hook"
	"bookclub-backend/internal/infrastructure/storage"
	"bookclub-backend/pkg/cache"
	"bookclub-backend/pkg/jwt"
)

// Container is the root of the dependency graph. Every collaborator handle
// is constructed once here and injected downward; no call-local globals.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Store       *docstore.Store
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	AccountRepo account.Repository
	AuthorRepo  author.Repository
	BookRepo    book.Repository
	ProfileRepo profile.Repository
	CommentRepo comment.Repository

	AccountService account.Service
	AuthorService  *author.Service
	BookService    *book.Service
	ProfileService *profile.Service
	CommentService *comment.Service

	AccountHandler *account.Handler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Store = docstore.NewStore(db.Pool)
	if err := c.Store.EnsureSchema(ctx); err != nil {
		return err
	}

	redisCache := infraCache.NewRedisCache(c.Config.Redis.Addr, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// Cache and task queue degrade gracefully; the store does not.
		log.Warn().Err(err).Msg("Redis unreachable at startup")
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.TTL)

	return nil
}

func (c *Container) initRepositories() {
	c.AccountRepo = account.NewDocstoreRepository(c.Store, c.Cache)
	c.AuthorRepo = author.NewDocstoreRepository(c.Store)
	c.BookRepo = book.NewDocstoreRepository(c.Store)
	c.ProfileRepo = profile.NewDocstoreRepository(c.Store)
	c.CommentRepo = comment.NewDocstoreRepository(c.Store)
}

func (c *Container) initServices() {
	c.AccountService = account.NewService(c.AccountRepo, c.JWTManager)

	ingestor := storage.NewIngestor(c.Storage)
	notifier := hook.NewAsynqNotifier(c.AsynqClient)

	c.AuthorService = author.NewService(c.AuthorRepo)
	c.BookService = book.NewService(c.BookRepo, ingestor, notifier)
	c.ProfileService = profile.NewService(c.ProfileRepo, c.AccountService, c.Config.Accounts.AdminEmail)
	c.CommentService = comment.NewService(c.CommentRepo, c.ProfileRepo)
}

func (c *Container) initHandlers() {
	c.AccountHandler = account.NewHandler(c.AccountService)
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
