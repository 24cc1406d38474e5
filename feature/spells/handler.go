package spells

import (
	"spell-miner/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the spell pipeline.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the spell routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/spells")
	group.Post("/ingest", h.HandleIngest)
	group.Get("/", h.HandleListRecords)
	group.Get("/rows", h.HandleRecordRows)
	group.Get("/tree", h.HandleRecordTree)
	group.Get("/passes", h.HandlePasses)
}

// HandleIngest runs a full ingestion pass over the configured source.
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering ingestion pass")

	summary, err := h.service.IngestAll(c.Context())
	if err != nil {
		l.Error("Ingestion pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleListRecords lists the persisted record IDs.
func (h *Handler) HandleListRecords(c *fiber.Ctx) error {
	ids, err := h.service.Records(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"records": ids, "count": len(ids)})
}

// HandleRecordRows returns the raw persisted rows of one record. Record
// IDs contain slashes, so they are passed as a query parameter.
func (h *Handler) HandleRecordRows(c *fiber.Ctx) error {
	id := c.Query("record")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing record query parameter",
		})
	}

	rows, err := h.service.RecordRows(c.Context(), id)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Row read-back failed",
			zap.String("record", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "record not found",
		})
	}
	return c.JSON(fiber.Map{"record": id, "rows": rows})
}

// HandleRecordTree returns one record's rows reassembled into tree shape.
func (h *Handler) HandleRecordTree(c *fiber.Ctx) error {
	id := c.Query("record")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing record query parameter",
		})
	}

	roots, err := h.service.RecordTree(c.Context(), id)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Tree reassembly failed",
			zap.String("record", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(roots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "record not found",
		})
	}
	return c.JSON(fiber.Map{"record": id, "roots": roots})
}

// HandlePasses returns the ingestion pass log.
func (h *Handler) HandlePasses(c *fiber.Ctx) error {
	passes, err := h.service.Passes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"passes": passes})
}
