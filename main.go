package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tvm-api/config"
	httpLayer "tvm-api/http"
	"tvm-api/repository"
	"tvm-api/service"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	cache := selectCache(cfg)

	calculatorService := service.NewCalculatorService(cache, cfg.Cache.TTL.Duration)
	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService)

	analysisService := service.NewAnalysisService(calculatorService)
	analysisHandler := httpLayer.NewAnalysisHandler(analysisService)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Capacity,
		cfg.RateLimit.RefillInterval.Duration,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/tvm/present-value",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(calculatorHandler.PresentValue),
		),
	)

	mux.Handle(
		"/tvm/future-value",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(calculatorHandler.FutureValue),
		),
	)

	mux.Handle(
		"/tvm/effective-rate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(calculatorHandler.EffectiveRate),
		),
	)

	mux.Handle(
		"/tvm/compare-compounding",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(analysisHandler.CompareCompounding),
		),
	)

	mux.Handle(
		"/tvm/growth-projection",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(analysisHandler.GrowthProjection),
		),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpLayer.RequestIDMiddleware(mux),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 TVM API corriendo en http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout.Duration,
	)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// selectCache prefers Redis when configured and reachable, falling back
// to the in-memory cache so the API still starts without it.
func selectCache(cfg *config.Config) repository.CacheRepository {
	if cfg.Cache.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr)
	if err := redisCache.Ping(); err != nil {
		log.Printf("Warning: redis no disponible en %s, usando caché en memoria: %v",
			cfg.Cache.RedisAddr, err)
		return repository.NewMemoryCache()
	}

	log.Printf("Caché de resultados en redis (%s)", cfg.Cache.RedisAddr)
	return redisCache
}
