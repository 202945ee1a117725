package objects

import (
	"net/url"

	"filestorage/core/logger"
	"filestorage/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const emptyKeyMessage = "object key cannot be empty"

// Handler handles HTTP requests for objects.
type Handler struct {
	engine *storage.Engine
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *storage.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes registers the object and health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Put("/*", h.HandlePut)
	group.Get("/*", h.HandleGet)
	group.Delete("/*", h.HandleDelete)

	app.Get("/health", h.HandleHealth)
}

// HandlePut stores the request body under the key.
// @Summary Store Object
// @Description Writes the raw request body under the key, replacing any existing object. Missing parent directories are created.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key, may contain slashes"
// @Param object body string true "Object bytes"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid key"
// @Failure 413 {string} string "Request Entity Too Large"
// @Failure 500 {object} map[string]string "Storage I/O error"
// @Router /objects/{key} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	key, ok, err := h.requireKey(c)
	if !ok {
		return err
	}

	if err := h.engine.Put(key, c.Body()); err != nil {
		return h.writeError(c, key, err)
	}

	logger.WithRayID(h.logger, c).Debug("Stored object",
		zap.String("key", key),
		zap.Int("bytes", len(c.Body())))

	c.Status(fiber.StatusCreated)
	return nil
}

// HandleGet returns the object bytes.
// @Summary Fetch Object
// @Description Returns the full contents of the object stored under the key.
// @Tags objects
// @Produce octet-stream
// @Param key path string true "Object key, may contain slashes"
// @Success 200 {file} binary "Object bytes"
// @Failure 400 {object} map[string]string "Invalid key"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Storage I/O error"
// @Router /objects/{key} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	key, ok, err := h.requireKey(c)
	if !ok {
		return err
	}

	data, err := h.engine.Get(key)
	if err != nil {
		return h.writeError(c, key, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Status(fiber.StatusOK).Send(data)
}

// HandleDelete removes the object.
// @Summary Delete Object
// @Description Removes the object stored under the key. Empty parent directories are kept.
// @Tags objects
// @Produce json
// @Param key path string true "Object key, may contain slashes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid key"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Storage I/O error"
// @Router /objects/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	key, ok, err := h.requireKey(c)
	if !ok {
		return err
	}

	if err := h.engine.Delete(key); err != nil {
		return h.writeError(c, key, err)
	}

	logger.WithRayID(h.logger, c).Debug("Deleted object", zap.String("key", key))

	c.Status(fiber.StatusNoContent)
	return nil
}

// requireKey extracts and decodes the key from the wildcard segment. When the
// key is unusable it writes the 400 response itself and reports ok=false.
func (h *Handler) requireKey(c *fiber.Ctx) (key string, ok bool, err error) {
	raw := c.Params("*")
	if raw == "" {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: emptyKeyMessage})
	}

	key, err = url.PathUnescape(raw)
	if err != nil {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "malformed escape in object key"})
	}
	// Params point into the request buffer, which fasthttp reuses.
	return utils.CopyString(key), true, nil
}
