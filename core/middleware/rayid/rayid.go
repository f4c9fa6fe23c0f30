package rayid

import (
	"storage-facade/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// LocalsKey is the Fiber locals key holding the ray id.
	LocalsKey = "ray_id"
	// Header is the request/response header carrying the ray id.
	Header = "X-Ray-ID"
)

// New returns a middleware that assigns every request a ray id. An incoming
// X-Ray-ID header is reused so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		c.SetUserContext(logger.ContextWithRayID(c.UserContext(), id))
		return c.Next()
	}
}
