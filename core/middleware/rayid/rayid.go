package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// Header carries the ray id on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is where the ray id is stored on the Fiber context.
	LocalsKey = "ray_id"

	maxIncomingLength = 128
)

// New returns a middleware that tags every request with a ray id. A ray id
// supplied by the caller is reused when it is reasonably short.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" || len(rid) > maxIncomingLength {
			rid = uuid.NewString()
		} else {
			// Header values point into the request buffer, which is reused after the handler returns.
			rid = utils.CopyString(rid)
		}

		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
