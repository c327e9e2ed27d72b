package analysis

import (
	"errors"

	"data-studio/core/logger"
	"data-studio/feature/datasets"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for analyses.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analysis routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/analysis/:filename")
	group.Get("/summary", h.HandleSummary)
	group.Post("/missing", h.HandleMissing)
	group.Post("/outliers", h.HandleOutliers)
	group.Post("/outliers/remove", h.HandleRemoveOutliers)
	group.Post("/normalize", h.HandleNormalize)
	group.Post("/regression", h.HandleRegression)
}

// HandleSummary describes every column of a dataset.
// @Summary Dataset Summary
// @Tags analysis
// @Produce json
// @Param filename path string true "Dataset filename"
// @Success 200 {array} analysis.ColumnSummary "Column summaries"
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/analysis/{filename}/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	res, err := h.service.Summary(c.UserContext(), datasets.Param(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleMissing handles missing values.
// @Summary Handle Missing Values
// @Description Strategies: drop, mean, median, mode, value. Pass save_as to store the result.
// @Tags analysis
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body analysis.MissingRequest true "Options"
// @Success 200 {object} analysis.Result "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/analysis/{filename}/missing [post]
func (h *Handler) HandleMissing(c *fiber.Ctx) error {
	var req MissingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Missing(c.UserContext(), datasets.Param(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleOutliers detects outliers.
// @Summary Detect Outliers
// @Description Methods: zscore (default, threshold 3), iqr.
// @Tags analysis
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body analysis.OutlierRequest true "Options"
// @Success 200 {object} analysis.OutlierReport "Outliers"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/analysis/{filename}/outliers [post]
func (h *Handler) HandleOutliers(c *fiber.Ctx) error {
	var req OutlierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Outliers(c.UserContext(), datasets.Param(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleRemoveOutliers removes outlying rows.
// @Summary Remove Outliers
// @Tags analysis
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body analysis.OutlierRequest true "Options"
// @Success 200 {object} analysis.Result "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/analysis/{filename}/outliers/remove [post]
func (h *Handler) HandleRemoveOutliers(c *fiber.Ctx) error {
	var req OutlierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.RemoveOutliers(c.UserContext(), datasets.Param(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleNormalize rescales numeric columns.
// @Summary Normalize
// @Description Methods: minmax (default), zscore.
// @Tags analysis
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body analysis.NormalizeRequest true "Options"
// @Success 200 {object} analysis.Result "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/analysis/{filename}/normalize [post]
func (h *Handler) HandleNormalize(c *fiber.Ctx) error {
	var req NormalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Normalize(c.UserContext(), datasets.Param(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleRegression fits a linear regression.
// @Summary Linear Regression
// @Tags analysis
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body analysis.RegressionRequest true "Options"
// @Success 200 {object} analysis.RegressionResult "Model"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/analysis/{filename}/regression [post]
func (h *Handler) HandleRegression(c *fiber.Ctx) error {
	var req RegressionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Regression(c.UserContext(), datasets.Param(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// IsInvalid reports whether err is caused by invalid analysis options.
func IsInvalid(err error) bool {
	for _, target := range []error{
		ErrInvalidStrategy, ErrFillValueRequired, ErrInvalidMethod, ErrUnknownColumn,
		ErrNotNumeric, ErrNoFeatures, ErrMissingValues, ErrTestSize, ErrTooFewRows,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if IsInvalid(err) {
		return badRequest(c, err)
	}
	return datasets.Fail(c, logger.WithRayID(h.service.logger, c), err)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
