package container

import (
	"context"
	"fmt"
	"time"

	"lumina-storefront/internal/config"
	adminHandler "lumina-storefront/internal/domains/admin/handler"
	adminService "lumina-storefront/internal/domains/admin/service"
	bookHandler "lumina-storefront/internal/domains/book/handler"
	bookJob "lumina-storefront/internal/domains/book/job"
	bookRepo "lumina-storefront/internal/domains/book/repository"
	bookService "lumina-storefront/internal/domains/book/service"
	cartHandler "lumina-storefront/internal/domains/cart/handler"
	cartJob "lumina-storefront/internal/domains/cart/job"
	cartRepo "lumina-storefront/internal/domains/cart/repository"
	cartService "lumina-storefront/internal/domains/cart/service"
	catalogHandler "lumina-storefront/internal/domains/catalog/handler"
	catalogService "lumina-storefront/internal/domains/catalog/service"
	orderHandler "lumina-storefront/internal/domains/order/handler"
	orderRepo "lumina-storefront/internal/domains/order/repository"
	orderService "lumina-storefront/internal/domains/order/service"
	reviewHandler "lumina-storefront/internal/domains/review/handler"
	reviewRepo "lumina-storefront/internal/domains/review/repository"
	reviewService "lumina-storefront/internal/domains/review/service"
	settingsHandler "lumina-storefront/internal/domains/settings/handler"
	settingsRepo "lumina-storefront/internal/domains/settings/repository"
	settingsService "lumina-storefront/internal/domains/settings/service"
	infraCache "lumina-storefront/internal/infrastructure/cache"
	"lumina-storefront/internal/infrastructure/database"
	"lumina-storefront/internal/infrastructure/email"
	"lumina-storefront/internal/infrastructure/queue"
	"lumina-storefront/internal/infrastructure/storage"
	"lumina-storefront/internal/session"
	"lumina-storefront/pkg/cache"
	"lumina-storefront/pkg/jwt"

	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph, shared by cmd/api and cmd/worker.
// Every component is a singleton for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient // nil when Redis was unreachable at startup
	Cache      cache.Cache             // Redis, or the in-memory fallback
	Queue      *queue.Client
	Storage    *storage.MinIOStorage // nil when MINIO_ENDPOINT is empty
	Images     *storage.ImageProcessor
	Mailer     email.EmailService
	JWTManager *jwt.Manager

	// Repositories
	BookRepo     bookRepo.RepositoryInterface
	SettingsRepo settingsRepo.Repository
	OrderRepo    orderRepo.Repository
	ReviewRepo   reviewRepo.RepositoryInterface
	CartRepo     cartRepo.Repository

	// Services
	BookService     bookService.ServiceInterface
	SettingsService settingsService.ServiceInterface
	OrderService    orderService.ServiceInterface
	ReviewService   reviewService.ServiceInterface
	CartService     cartService.ServiceInterface
	CatalogService  catalogService.ServiceInterface
	AdminService    adminService.ServiceInterface
	SessionLoader   *session.Loader

	// Handlers
	BookHandler     *bookHandler.Handler
	SettingsHandler *settingsHandler.SettingsHandler
	OrderHandler    *orderHandler.OrderHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CartHandler     *cartHandler.CartHandler
	CatalogHandler  *catalogHandler.CatalogHandler
	AdminHandler    *adminHandler.AdminHandler
	SessionHandler  *session.Handler
}

// NewContainer loads config, connects infrastructure and builds every layer
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	// PostgreSQL is required
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis is optional: carts fall back to process memory
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, carts are kept in memory")
		_ = redisClient.Close()
		c.Cache = cache.NewMemoryCache()
	} else {
		c.Redis = redisClient
		c.Cache = redisClient
	}

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	if cfg.ImageStorageEnabled() {
		store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
		c.Storage = store
	} else {
		log.Info().Msg("MINIO_ENDPOINT not set, images are stored inline as data URIs")
	}
	c.Images = storage.NewImageProcessor()

	c.Mailer = email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.SettingsRepo = settingsRepo.NewPostgresRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresOrderRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.CartRepo = cartRepo.NewCacheRepository(c.Cache, c.Config.Storefront.CartKeyPrefix, c.Config.Storefront.CartTTL)
}

func (c *Container) initServices() error {
	cfg := c.Config

	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.BookRepo)

	// Cover cleanup only makes sense for covers we host
	var covers bookService.CoverCleaner
	if c.Storage != nil {
		covers = bookJob.NewCoverCleanupScheduler(c.Queue, c.Storage)
	}
	c.BookService = bookService.NewService(c.BookRepo, c.SettingsService, covers)

	c.OrderService = orderService.NewOrderService(c.OrderRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo)

	c.CartService = cartService.NewCartService(
		c.CartRepo,
		c.BookService,
		c.SettingsService,
		c.OrderRepo,
		cartService.CheckoutConfig{
			HandoffBaseURL: cfg.Storefront.HandoffBaseURL,
			CustomerName:   cfg.Storefront.CustomerName,
			GreetingLine:   cfg.Storefront.GreetingLine,
		},
		cartJob.NewOrderPlacedNotifier(c.Queue),
	)

	c.CatalogService = catalogService.NewCatalogService(c.BookService, c.SettingsService, c.ReviewService)

	auth, err := newAuthenticator(cfg.Admin)
	if err != nil {
		return err
	}

	var store adminService.ImageStore
	if c.Storage != nil {
		store = c.Storage
	}
	c.AdminService = adminService.NewAdminService(
		auth,
		c.JWTManager,
		c.BookRepo,
		c.ReviewRepo,
		c.OrderService,
		c.Images,
		store,
	)

	c.SessionLoader = session.NewLoader(c.BookService, c.SettingsService, c.OrderService, c.ReviewService, c.CartService)

	return nil
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.SessionHandler = session.NewHandler(c.SessionLoader)
}

func newAuthenticator(cfg config.AdminConfig) (adminService.Authenticator, error) {
	switch cfg.Mode {
	case config.AdminModePassword:
		return adminService.NewSharedSecretAuthenticator(cfg.Password, cfg.PasswordHash), nil
	case config.AdminModeAuthService:
		return adminService.NewAuthServiceAuthenticator(cfg.AuthURL, cfg.AuthAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown admin auth mode %q", cfg.Mode)
	}
}

// Cleanup releases connections, in reverse order of creation
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
