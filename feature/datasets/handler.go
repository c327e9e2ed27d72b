package datasets

import (
	"errors"
	"net/url"

	"data-studio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// DefaultPreviewRows is the preview size when rows is not given.
	DefaultPreviewRows = 10
	// MaxPreviewRows caps the preview size.
	MaxPreviewRows = 500
)

// Handler handles HTTP requests for datasets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dataset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/datasets")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Get("/:filename", h.HandleGet)
	group.Get("/:filename/preview", h.HandlePreview)
	group.Delete("/:filename", h.HandleDelete)
}

// HandleUpload stores an uploaded CSV file.
// @Summary Upload Dataset
// @Description Upload a CSV file. The stored name is the form field "filename" or the uploaded file name.
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param filename formData string false "Stored filename"
// @Success 201 {object} models.Info "Stored dataset"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/datasets [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "form field 'file' is required"})
	}
	name := c.FormValue("filename", fh.Filename)

	file, err := fh.Open()
	if err != nil {
		return Fail(c, l, err)
	}
	defer file.Close()

	info, err := h.service.Upload(c.UserContext(), name, file)
	if err != nil {
		return Fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleList returns every stored dataset.
// @Summary List Datasets
// @Tags datasets
// @Produce json
// @Success 200 {array} models.Info "Datasets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/datasets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return Fail(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(list)
}

// HandleGet returns one dataset's info.
// @Summary Get Dataset
// @Tags datasets
// @Produce json
// @Param filename path string true "Dataset filename (e.g. 'sales.csv')"
// @Success 200 {object} models.Info "Dataset"
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/datasets/{filename} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	info, err := h.service.Get(c.UserContext(), Param(c))
	if err != nil {
		return Fail(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(info)
}

// HandlePreview returns the first rows of a dataset.
// @Summary Preview Dataset
// @Tags datasets
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param rows query int false "Number of rows (default 10, max 500)"
// @Success 200 {object} models.Preview "Preview"
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/datasets/{filename}/preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	rows := c.QueryInt("rows", DefaultPreviewRows)
	if rows < 1 {
		rows = 1
	}
	if rows > MaxPreviewRows {
		rows = MaxPreviewRows
	}
	preview, err := h.service.Preview(c.UserContext(), Param(c), rows)
	if err != nil {
		return Fail(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(preview)
}

// HandleDelete removes a dataset.
// @Summary Delete Dataset
// @Tags datasets
// @Param filename path string true "Dataset filename"
// @Success 204
// @Failure 404 {object} map[string]any "Not Found"
// @Router /api/datasets/{filename} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), Param(c)); err != nil {
		return Fail(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Param returns the unescaped filename route parameter.
func Param(c *fiber.Ctx) string {
	raw := c.Params("filename")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// Fail writes err as a JSON error. Not-found errors include suggestions and
// invalid input maps to 400; anything else is logged and returned as 500.
func Fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":       err.Error(),
			"suggestions": nf.Suggestions,
		})
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidCSV):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Dataset request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
