package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Melodious-nub/bnp-digital-backend/internal/config"
	infraCache "github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/cache"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/database"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/storage"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/cache"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/jwt"

	accountHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/handler"
	accountRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/repository"
	accountService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/service"
	candidateHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/handler"
	candidateRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	candidateService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/service"
	contactHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/handler"
	contactRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/repository"
	contactService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/service"
	locationHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/handler"
	locationRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/repository"
	locationService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/service"
	mediaHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/handler"
	mediaRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/repository"
	mediaService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/service"
	teamHandler "github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/handler"
	teamRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/repository"
	teamService "github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root of the
// dependency graph; everything in it is a singleton with app lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Queue      *asynq.Client
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	LocationRepo  locationRepo.RepositoryInterface
	AccountRepo   accountRepo.RepositoryInterface
	CandidateRepo candidateRepo.RepositoryInterface
	ImportStore   candidateRepo.ImportStore
	TeamRepo      teamRepo.RepositoryInterface
	MediaRepo     mediaRepo.RepositoryInterface
	ContactRepo   contactRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	LocationService     locationService.ServiceInterface
	AuthService         accountService.ServiceInterface
	RegistrationService accountService.RegistrationServiceInterface
	CandidateService    candidateService.ServiceInterface
	ImportService       candidateService.ImportServiceInterface
	TeamService         teamService.ServiceInterface
	MediaService        mediaService.ServiceInterface
	ContactService      contactService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	LocationHandler  *locationHandler.LocationHandler
	AuthHandler      *accountHandler.AuthHandler
	RegisterHandler  *accountHandler.RegisterHandler
	CandidateHandler *candidateHandler.CandidateHandler
	ImportHandler    *candidateHandler.ImportHandler
	TeamHandler      *teamHandler.TeamHandler
	MediaHandler     *mediaHandler.MediaHandler
	ContactHandler   *contactHandler.ContactHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer creates and initializes the whole dependency graph.
//
// Initialization order matters:
//  1. Config (depends on nothing)
//  2. Infrastructure (DB, cache, storage, queue)
//  3. Repositories
//  4. Services
//  5. Handlers
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

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
	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to apply database schema: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE CACHE + STORAGE + QUEUE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical: repositories degrade to
			// straight database reads.
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.Queue = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()

	// ========================================
	// STEP 7: STARTUP SEEDING
	// ========================================
	if err := c.seed(ctx); err != nil {
		return nil, fmt.Errorf("startup seeding failed: %w", err)
	}

	log.Println("[CONTAINER] DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.LocationRepo = locationRepo.NewPostgresRepository(pool, c.Cache)
	c.AccountRepo = accountRepo.NewPostgresRepository(pool)
	c.CandidateRepo = candidateRepo.NewPostgresRepository(pool, c.Cache)
	c.ImportStore = candidateRepo.NewPostgresImportStore(pool, c.Cache)
	c.TeamRepo = teamRepo.NewPostgresRepository(pool)
	c.MediaRepo = mediaRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.LocationService = locationService.NewLocationService(c.LocationRepo)
	c.AuthService = accountService.NewAuthService(c.AccountRepo, c.JWTManager)
	c.RegistrationService = accountService.NewRegistrationService(c.ImportStore, c.JWTManager)
	c.CandidateService = candidateService.NewCandidateService(c.CandidateRepo, c.Storage)
	c.ImportService = candidateService.NewImportService(
		c.ImportStore,
		c.Config.Import.DefaultPassword,
		c.Config.Import.MaxRows,
	)
	c.TeamService = teamService.NewTeamService(c.TeamRepo, c.CandidateRepo, c.Storage)
	c.MediaService = mediaService.NewMediaService(c.MediaRepo, c.CandidateRepo, c.Storage)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.CandidateRepo, c.Queue)
}

func (c *Container) initHandlers() {
	c.LocationHandler = locationHandler.NewLocationHandler(c.LocationService)
	c.AuthHandler = accountHandler.NewAuthHandler(c.AuthService)
	c.RegisterHandler = accountHandler.NewRegisterHandler(c.RegistrationService)
	c.CandidateHandler = candidateHandler.NewCandidateHandler(c.CandidateService)
	c.ImportHandler = candidateHandler.NewImportHandler(c.ImportService)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
}

// seed fills static reference data and ensures the bootstrap admin exists.
// Both operations are idempotent; running them on every startup is safe.
func (c *Container) seed(ctx context.Context) error {
	if err := c.LocationRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return c.AuthService.SeedSuperAdmin(
		ctx,
		c.Config.Seed.AdminUsername,
		c.Config.Seed.AdminPassword,
	)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close queue client: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[CONTAINER] Failed to close Redis: %v", err)
			}
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}

	log.Println("[CONTAINER] Cleanup completed")
}
