package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/hateoas"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
	"library-backend/pkg/metrics"

	"library-backend/internal/domains/auth"
	authHandler "library-backend/internal/domains/auth/handler"
	authRepo "library-backend/internal/domains/auth/repository"
	authService "library-backend/internal/domains/auth/service"

	"library-backend/internal/domains/person"
	personHandler "library-backend/internal/domains/person/handler"
	personRepo "library-backend/internal/domains/person/repository"
	personService "library-backend/internal/domains/person/service"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	"library-backend/internal/domains/file"
	fileHandler "library-backend/internal/domains/file/handler"
	fileService "library-backend/internal/domains/file/service"
)

// Container holds every long-lived dependency of the API process.
//
// Initialization order:
//  1. Config
//  2. Infrastructure (Postgres, Redis, MinIO, metrics)
//  3. Repositories
//  4. Services
//  5. Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	Storage    file.Storage
	JWTManager *jwt.Manager
	Metrics    *metrics.Metrics

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	Repositories Repositories

	// ========================================
	// SERVICE LAYER
	// ========================================

	AuthService   auth.Service
	PersonService person.Service
	BookService   book.Service
	FileService   file.Service

	// ========================================
	// HANDLER LAYER
	// ========================================

	AuthHandler   *authHandler.AuthHandler
	PersonHandler *personHandler.PersonHandler
	BookHandler   *bookHandler.BookHandler
	FileHandler   *fileHandler.FileHandler
}

// Repositories groups the data access implementations so tests can swap the
// Postgres ones for in-memory stores.
type Repositories struct {
	Person person.Repository
	Book   book.Repository
	User   auth.Repository
}

// NewContainer connects to every backing service and builds the full graph.
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container")

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	// ========================================
	// STEP 3: INITIALIZE REDIS
	// ========================================

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		// refresh tokens cannot be stored without redis
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================

	var files file.Storage
	minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		// uploads fail until MinIO is reachable; everything else keeps working
		log.Warn().Err(err).Msg("MinIO unavailable, file uploads are kept in memory")
		files = storage.NewMemoryStorage()
	} else {
		files = minioStorage
	}

	repos := Repositories{
		Person: personRepo.NewPostgresRepository(db.Pool),
		Book:   bookRepo.NewPostgresRepository(db.Pool),
		User:   authRepo.NewPostgresRepository(db.Pool),
	}

	c := Assemble(cfg, repos, infraCache.NewRedisCache(redisClient, cfg.Redis.KeyPrefix), files)
	c.DB = db
	c.Redis = redisClient

	if err := c.AuthService.EnsureUser(ctx, cfg.Auth.DefaultUser, cfg.Auth.DefaultPassword, cfg.Auth.DefaultFullName); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure default user: %w", err)
	}

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Assemble wires services and handlers on top of already built repositories,
// cache and storage. It performs no I/O.
func Assemble(cfg *config.Config, repos Repositories, c cache.Cache, files file.Storage) *Container {
	ctr := &Container{
		Config:       cfg,
		Cache:        c,
		Storage:      files,
		Repositories: repos,
		JWTManager: jwt.NewManager(
			cfg.JWT.Secret,
			cfg.JWT.Issuer,
			cfg.JWT.AccessTTL(),
			cfg.JWT.RefreshTTL(),
		),
		Metrics: metrics.New("library", !cfg.IsDevelopment()),
	}

	ctr.initServices()
	ctr.initHandlers()
	return ctr
}

func (c *Container) initServices() {
	publicURL := c.Config.App.PublicURL

	c.AuthService = authService.NewAuthService(
		c.Repositories.User,
		c.JWTManager,
		c.Cache,
		c.Config.JWT.RefreshTTL(),
	)
	c.PersonService = personService.NewPersonService(
		c.Repositories.Person,
		hateoas.NewLinker(publicURL, person.BasePath),
	)
	c.BookService = bookService.NewBookService(
		c.Repositories.Book,
		hateoas.NewLinker(publicURL, book.BasePath),
	)
	c.FileService = fileService.NewFileService(c.Storage, publicURL)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.FileHandler = fileHandler.NewFileHandler(c.FileService)
}

// Cleanup closes the connections opened by NewContainer.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}
