package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/esteveseverson/fastapi-playtime/internal/auth"
	"github.com/esteveseverson/fastapi-playtime/internal/booking"
	bookingHttp "github.com/esteveseverson/fastapi-playtime/internal/booking/http"
	"github.com/esteveseverson/fastapi-playtime/internal/court"
	courtHttp "github.com/esteveseverson/fastapi-playtime/internal/court/http"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/storage"
	"github.com/esteveseverson/fastapi-playtime/internal/user"
	userHttp "github.com/esteveseverson/fastapi-playtime/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and
// register module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	CourtService   court.Service
	BookingService booking.Service

	JWTManager *auth.JWTManager

	CacheClient     cache.Client
	RateLimit       int
	RateLimitWindow time.Duration

	PhotoStorage   storage.Storage
	ImageProcessor *storage.ImageProcessor
}

// NewRouter initializes the HTTP engine: global middleware (logging,
// recovery, CORS, rate limiting) and the per-module routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.CacheClient != nil && cfg.RateLimit > 0 {
		r.Use(RateLimiter(cfg.CacheClient, cfg.RateLimit, cfg.RateLimitWindow))
	}

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.PhotoStorage, cfg.ImageProcessor)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
