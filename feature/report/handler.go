package report

import (
	"event-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests over the persisted report table.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/", h.HandleGetReport)
	group.Get("/summary", h.HandleGetSummary)
}

// HandleGetReport returns the persisted report rows for one day.
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	day, err := ParseDay(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rows, err := h.service.ReportForDay(day)
	if err != nil {
		l.Error("Report query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rows)
}

// HandleGetSummary returns per-player counts for one day.
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	day, err := ParseDay(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	summary, err := h.service.SummaryForDay(day)
	if err != nil {
		l.Error("Summary query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
