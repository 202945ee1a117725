package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application shared by the start command and tests.
//
// Routing runs on the raw request path. Handlers that take keys from the path
// are responsible for unescaping them.
func NewApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		CaseSensitive:         true,
		StrictRouting:         true,
		BodyLimit:             cfg.BodyLimit,
	})

	app.Use(recover.New())

	return app
}
