// Package main is the entry point for the dashboard server.
// It loads configuration, wires the render pipeline and its optional Redis
// backend, sets up the HTTP routes and starts listening.
package main

import (
	"context"
	"log"
	"time"

	"pulseboard/internal/config"
	"pulseboard/internal/repositories/cache"
	"pulseboard/internal/routes"
	"pulseboard/internal/services/dashboard"
	"pulseboard/internal/services/fetcher"
	"pulseboard/internal/services/formatter"
	"pulseboard/internal/services/generator"
	"pulseboard/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	deps := routes.Dependencies{
		Page:            views.DashboardHTML,
		DataFile:        cfg.DataFile,
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: cfg.RateLimit.Window,
	}

	var recorder dashboard.RenderRecorder = dashboard.NoopRecorder{}
	if cfg.Redis.Enabled {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if cacheService, ok := connectRedis(redisClient); ok {
			recorder = cacheService
			deps.Cache = cacheService
			deps.Storage = cache.NewStorage(redisClient, "pulseboard:limiter:")

			defer func() {
				if err := cacheService.Close(); err != nil {
					log.Printf("⚠️ Failed to close Redis connection: %v", err)
				}
			}()
		}
	}

	deps.Dashboard = dashboard.NewService(
		fetcher.NewHTTPFetcher(cfg.DataURL),
		generator.New(nil),
		formatter.New(cfg.Locale),
		recorder,
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "pulseboard",
		DisableStartupMessage: config.IsProduction(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, deps)

	log.Printf("✅ Serving dashboard on :%s (data: %s, locale: %s)", cfg.Port, cfg.DataURL, cfg.Locale)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// connectRedis pings Redis and wraps the client in a CacheService. When Redis
// is unreachable the server keeps running with in-memory rate limiting and
// no render counters.
func connectRedis(client *redis.Client) (*cache.CacheService, bool) {
	cacheService := cache.NewCacheService(client)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := cacheService.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ Redis unavailable, continuing without it: %v", err)
		_ = client.Close()
		return nil, false
	}
	log.Println("✅ Successfully connected to Redis")
	return cacheService, true
}
