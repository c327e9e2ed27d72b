package visualize

import (
	"context"
	"errors"

	"data-studio/core/logger"
	"data-studio/feature/datasets"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for charts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the chart routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/visualize/:filename")
	group.Post("/line", h.chart(h.service.Line))
	group.Post("/bar", h.chart(h.service.Bar))
	group.Post("/scatter", h.chart(h.service.Scatter))
}

// chart adapts a service method to a handler.
// @Summary Build Chart
// @Description Returns a plotly figure. Kinds: line (y_columns), bar and scatter (y_column).
// @Tags visualize
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param kind path string true "Chart kind" Enums(line, bar, scatter)
// @Param request body visualize.ChartRequest true "Columns and titles"
// @Success 200 {object} visualize.Figure "Figure"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/visualize/{filename}/{kind} [post]
func (h *Handler) chart(build func(context.Context, string, ChartRequest) (*Figure, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ChartRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		fig, err := build(c.UserContext(), datasets.Param(c), req)
		if errors.Is(err, ErrUnknownColumn) || errors.Is(err, ErrNoSeries) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return datasets.Fail(c, logger.WithRayID(h.service.logger, c), err)
		}
		return c.JSON(fig)
	}
}
