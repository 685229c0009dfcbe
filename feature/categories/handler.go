package categories

import (
	"chat-directory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for categories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the category routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/category")
	group.Get("/", h.HandleList)
}

// HandleList returns all categories.
// @Summary List Categories
// @Description List all server categories ordered by name.
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} models.Category "Category List"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/category [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Category list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(list)
}
