package middleware

import (
	"pulseboard/internal/services/dashboard"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RenderIDHeader    = "X-Render-ID"
	RenderIDLocalsKey = "render_id"
)

// RenderID tags each request with a fresh id, exposed as a response header,
// in Locals and in the user context so pipeline logs can be correlated.
func RenderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(RenderIDLocalsKey, id)
		c.Set(RenderIDHeader, id)
		c.SetUserContext(dashboard.WithRenderID(c.UserContext(), id))
		return c.Next()
	}
}
