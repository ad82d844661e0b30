package activity

import (
	"file-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the number of records returned without ?limit.
	DefaultLimit = 50
	// MaxLimit caps ?limit.
	MaxLimit = 500
)

// Handler handles HTTP requests for the activity log.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the activity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/activity", h.HandleRecent)
}

func clampLimit(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// HandleRecent lists recent tool invocations.
// @Summary Recent Activity
// @Description Lists the most recent tool invocations, newest first.
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {array} activity.Record "Activity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/activity [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	limit := clampLimit(c.QueryInt("limit", DefaultLimit))
	records, err := h.store.Recent(c.Context(), limit)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Activity query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
