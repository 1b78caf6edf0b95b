package handlers

import (
	"errors"
	"log"

	"pulseboard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// DataHandler serves the static dashboard data resource.
type DataHandler struct {
	path string
}

func NewDataHandler(path string) *DataHandler {
	return &DataHandler{path: path}
}

func (h *DataHandler) ServeData(c *fiber.Ctx) error {
	err := c.SendFile(h.path)
	if err == nil {
		return nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
		return response.NotFound(c, "Data resource not found")
	}
	log.Printf("⚠️ Failed to serve %s: %v", h.path, err)
	return response.ServerError(c, "Failed to serve data resource")
}
