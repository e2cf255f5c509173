// Package rayid assigns a unique ray id to every request.
//
// The id is stored in the request locals under "ray_id" and echoed in the
// X-Ray-Id response header so clients can quote it when reporting problems.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New creates the ray id middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an incoming id so upstream proxies can pre-assign one
		rid := c.Get("X-Ray-Id")
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set("X-Ray-Id", rid)

		return c.Next()
	}
}
