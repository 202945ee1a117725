package objects

import (
	"errors"
	"fmt"

	"filestorage/core/logger"
	"filestorage/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// healthStats is the payload of GET /health.
type healthStats struct {
	OK         bool  `json:"ok"`
	Objects    int   `json:"objects"`
	TotalBytes int64 `json:"total_bytes"`
}

// HandleHealth walks the store and reports how much it holds.
// @Summary Health Check
// @Description Walks the storage root and reports the number of objects and their total size.
// @Tags health
// @Produce json
// @Success 200 {object} objects.healthStats "Store statistics"
// @Failure 500 {object} map[string]string "Storage I/O error"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	var stats healthStats
	err := h.engine.Walk(func(_ string, size int64) error {
		stats.Objects++
		stats.TotalBytes += size
		return nil
	})
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Health check failed", zap.Error(err))
		msg := storage.ErrIO.Error()
		var ioErr *storage.IOError
		if errors.As(err, &ioErr) {
			msg = fmt.Sprintf("%s: %s", storage.ErrIO, ioErr.Detail())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: msg})
	}

	stats.OK = true
	return c.JSON(stats)
}
