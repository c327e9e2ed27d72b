package integrity

import (
	"data-studio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/metadata", h.HandleMetadataCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs every check without fixing anything.
// @Summary Run All Integrity Checks
// @Description Checks the dataset bucket, the metadata rows against stored objects, and the metadata table schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /api/integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if r, err := h.service.CheckBucket(ctx, false); err != nil {
		report["bucket"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = r
	}

	if r, err := h.service.CheckMetadata(ctx); err != nil {
		report["metadata"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["metadata"] = r
	}

	if r, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = r
	}

	return c.JSON(report)
}

// HandleBucketCheck checks and optionally creates the dataset bucket.
// @Summary Check Bucket
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	report, err := h.service.CheckBucket(c.UserContext(), c.QueryBool("fix"))
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleMetadataCheck compares metadata with storage and optionally repairs it.
// @Summary Check Metadata
// @Description Lists datasets without metadata, orphaned rows and stale rows. With fix=true, missing and stale datasets are reindexed and orphaned rows removed.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Repair differences"
// @Success 200 {object} map[string]interface{} "Metadata Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/integrity/metadata [get]
func (h *Handler) HandleMetadataCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.UserContext()

	report, err := h.service.CheckMetadata(ctx)
	if err != nil {
		l.Error("Metadata check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Clean() || !c.QueryBool("fix") {
		return c.JSON(fiber.Map{"status": "checked", "report": report})
	}

	l.Info("Attempting to repair dataset metadata")
	fixed, err := h.service.FixMetadata(ctx, report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to repair metadata",
			"details": err.Error(),
			"fixed":   fixed,
		})
	}
	return c.JSON(fiber.Map{"status": "fixed", "report": report, "fixed": fixed})
}

// HandleSchemaCheck verifies the metadata table schema.
// @Summary Check Schema
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
