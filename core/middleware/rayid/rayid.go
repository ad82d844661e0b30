// Package rayid assigns every request a RayID for log correlation.
package rayid

import (
	"file-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the RayID on requests and responses.
const Header = "X-Ray-ID"

// New returns middleware that stores the RayID in c.Locals and echoes it in
// the response header. An incoming X-Ray-ID is reused so callers can trace
// across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDLocal, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

// FromContext returns the RayID assigned to the request, or "".
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(logger.RayIDLocal).(string)
	return rid
}
