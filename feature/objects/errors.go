package objects

import (
	"errors"
	"fmt"

	"filestorage/core/logger"
	"filestorage/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorBody is the JSON payload of every failed request.
type errorBody struct {
	Error string `json:"error"`
}

// writeError translates a store error into a status code and JSON body.
// Client faults are logged at debug level; everything else is a server fault.
func (h *Handler) writeError(c *fiber.Ctx, key string, err error) error {
	l := logger.WithRayID(h.logger, c).With(zap.String("key", key))

	var (
		keyErr      *storage.KeyError
		notFoundErr *storage.NotFoundError
		ioErr       *storage.IOError
	)

	switch {
	case errors.As(err, &keyErr):
		l.Debug("Rejected object key", zap.String("reason", keyErr.Reason))
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: keyErr.Reason})
	case errors.As(err, &notFoundErr):
		l.Debug("Object not found")
		return c.Status(fiber.StatusNotFound).JSON(errorBody{
			Error: fmt.Sprintf("object `%s` not found", notFoundErr.Key),
		})
	case errors.As(err, &ioErr):
		l.Error("Storage I/O failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error: fmt.Sprintf("%s: %s", storage.ErrIO, ioErr.Detail()),
		})
	default:
		l.Error("Unexpected storage failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: storage.ErrIO.Error()})
	}
}
