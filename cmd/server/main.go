package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/app"
	"github.com/esteveseverson/fastapi-playtime/internal/config"
	"github.com/esteveseverson/fastapi-playtime/internal/db"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/storage"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	// The cache is optional: without redis the API still works, just
	// without rate limiting and court caching.
	var cacheClient cache.Client
	if redisClient, err := cache.NewRedisClient(cfg.RedisAddr); err != nil {
		log.Printf("redis unavailable at %s, continuing without cache: %v", cfg.RedisAddr, err)
	} else {
		cacheClient = redisClient
	}

	photoStorage, err := storage.NewLocalStorage(cfg.PhotoDir)
	if err != nil {
		log.Fatalf("failed to init photo storage: %v", err)
	}

	container := app.NewContainer(app.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		DBPool:          pool,
		CacheClient:     cacheClient,
		JWTSecret:       cfg.JWTSecret,
		JWTTTL:          cfg.JWTAccessTokenTTL,
		BcryptCost:      cfg.BcryptCost,
		LocalUTCOffset:  cfg.LocalUTCOffset,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		PhotoStorage:    photoStorage,
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
