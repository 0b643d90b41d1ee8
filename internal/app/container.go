package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esteveseverson/fastapi-playtime/internal/api"
	"github.com/esteveseverson/fastapi-playtime/internal/auth"
	"github.com/esteveseverson/fastapi-playtime/internal/booking"
	"github.com/esteveseverson/fastapi-playtime/internal/court"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/storage"
	"github.com/esteveseverson/fastapi-playtime/internal/user"
)

const courtCacheTTL = 5 * time.Minute

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	DBPool      *pgxpool.Pool
	CacheClient cache.Client

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	LocalUTCOffset time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	PhotoStorage storage.Storage

	// Clock overrides the booking clock; nil means wall clock.
	Clock booking.Clock
}

// Container holds the initialized components needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	clock := cfg.Clock
	if clock == nil {
		clock = booking.RealClock{}
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Court module; availability reads go through the cache when one is
	// configured.
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	if cfg.CacheClient != nil {
		courtRepo = court.NewCachingRepository(courtRepo, cfg.CacheClient, courtCacheTTL)
	}
	courtService := court.NewService(courtRepo)

	// Booking module
	converter := booking.NewConverter(cfg.LocalUTCOffset)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, courtService, converter, clock)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		CourtService:    courtService,
		BookingService:  bookingService,
		JWTManager:      jwtManager,
		CacheClient:     cfg.CacheClient,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		PhotoStorage:    cfg.PhotoStorage,
		ImageProcessor:  storage.NewImageProcessor(),
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
