package handlers

import (
	"bytes"
	"log"

	"pulseboard/internal/services/dashboard"
	"pulseboard/internal/services/render"
	"pulseboard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
	page             []byte
}

func NewDashboardHandler(dashboardService dashboard.Service, page []byte) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		page:             page,
	}
}

// RenderPage runs the page-load pipeline against a fresh copy of the
// dashboard document and returns the rendered HTML.
func (h *DashboardHandler) RenderPage(c *fiber.Ctx) error {
	target, err := render.NewDocumentTarget(bytes.NewReader(h.page))
	if err != nil {
		log.Printf("⚠️ Failed to parse dashboard page: %v", err)
		return response.ServerError(c, "Failed to load dashboard page")
	}

	result := h.dashboardService.Bootstrap(c.UserContext(), target)
	c.Set("X-Dashboard-Source", string(result.Source))

	html, err := target.HTML()
	if err != nil {
		log.Printf("⚠️ [%s] Failed to serialise dashboard page: %v", result.RenderID, err)
		return response.ServerError(c, "Failed to render dashboard page")
	}

	c.Type("html", "utf-8")
	return c.SendString(html)
}

// GetDashboardData returns the snapshot the page would render, and where it
// came from.
func (h *DashboardHandler) GetDashboardData(c *fiber.Ctx) error {
	snapshot, source, _ := h.dashboardService.Snapshot(c.UserContext())

	return response.Success(c, "Dashboard data retrieved successfully", fiber.Map{
		"source":   source,
		"snapshot": snapshot,
	})
}
