package handlers

import (
	"log"

	"pulseboard/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cacheService *cache.CacheService
}

// NewHealthHandler accepts a nil cache service when Redis is disabled.
func NewHealthHandler(cacheService *cache.CacheService) *HealthHandler {
	return &HealthHandler{cacheService: cacheService}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
	}
	services := fiber.Map{"redis": "disabled"}
	body["services"] = services

	if h.cacheService == nil {
		return c.JSON(body)
	}

	ctx := c.UserContext()
	if err := h.cacheService.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ Health check: %v", err)
		services["redis"] = "disconnected"
		body["status"] = "degraded"
		return c.JSON(body)
	}
	services["redis"] = "connected"

	counts, err := h.cacheService.RenderCounts(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to read render counters: %v", err)
	} else {
		body["renders"] = counts
	}

	poolStats := h.cacheService.GetStats()
	body["pool_stats"] = fiber.Map{
		"hits":        poolStats.Hits,
		"misses":      poolStats.Misses,
		"timeouts":    poolStats.Timeouts,
		"total_conns": poolStats.TotalConns,
		"idle_conns":  poolStats.IdleConns,
		"stale_conns": poolStats.StaleConns,
	}
	return c.JSON(body)
}
