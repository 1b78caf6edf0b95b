// Package routes defines the HTTP routing configuration.
package routes

import (
	"time"

	"pulseboard/internal/handlers"
	"pulseboard/internal/middleware"
	"pulseboard/internal/repositories/cache"
	"pulseboard/internal/services/dashboard"
	"pulseboard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Dependencies carries everything the routes need. Cache and Storage are nil
// when Redis is disabled.
type Dependencies struct {
	Dashboard       dashboard.Service
	Cache           *cache.CacheService
	Storage         fiber.Storage
	Page            []byte
	DataFile        string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard, deps.Page)
	dataHandler := handlers.NewDataHandler(deps.DataFile)
	healthHandler := handlers.NewHealthHandler(deps.Cache)

	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/data.json", dataHandler.ServeData)

	pageLimiter := limiter.New(limiter.Config{
		Max:        deps.RateLimitMax,
		Expiration: deps.RateLimitWindow,
		Storage:    deps.Storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: response.TooManyRequests,
	})

	app.Get("/", pageLimiter, middleware.RenderID(), dashboardHandler.RenderPage)

	api := app.Group("/api", middleware.RenderID())
	api.Get("/dashboard", dashboardHandler.GetDashboardData)
}
