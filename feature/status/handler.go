package status

import (
	"chat-directory/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for status checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/status")
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleSchemaCheck reports how the live database compares to the models.
// @Summary Check Schema
// @Description Verify that the directory tables carry the columns the models expect.
// @Tags status
// @Accept json
// @Produce json
// @Success 200 {object} SchemaReport "Schema Report"
// @Router /api/status/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running schema check")

	report := h.service.CheckSchema()
	return c.JSON(report)
}
