package servers

import (
	"errors"
	"io"

	"chat-directory/core/auth"
	"chat-directory/core/logger"
	"chat-directory/feature/servers/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the server directory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the server directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/server")
	group.Get("/select", h.HandleList)
	group.Get("/:serverId/icon", h.HandleGetIcon)
	group.Put("/:serverId/icon", h.HandlePutIcon)
	group.Delete("/:serverId/icon", h.HandleDeleteIcon)
}

// HandleList returns a list of servers filtered by the query parameters.
//
// by_user is truthy only for the literal "true", with_num_members only for
// the literal "True". The asymmetry is inherited from the original API and
// kept because clients depend on it.
//
// @Summary List Servers
// @Description List servers filtered by category, quantity, membership or id. by_user and by_serverid require authentication.
// @Tags servers
// @Accept json
// @Produce json
// @Param category query string false "Filter servers by category name"
// @Param qty query int false "Limit the number of servers returned"
// @Param by_user query string false "Only servers the requesting user is a member of (literal 'true')"
// @Param by_serverid query int false "Filter by a specific server ID"
// @Param with_num_members query string false "Annotate each server with its member count (literal 'True')"
// @Success 200 {array} models.ServerResponse "Server List"
// @Failure 400 {object} map[string]string "Invalid parameter or server not found"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/server/select [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	params := ListParams{
		Category:       c.Query("category"),
		Qty:            c.Query("qty"),
		ByUser:         c.Query("by_user") == "true",
		ByServerID:     c.Query("by_serverid"),
		WithNumMembers: c.Query("with_num_members") == "True",
	}
	identity := auth.IdentityFromCtx(c)

	rows, withNumMembers, err := h.service.List(c.Context(), params, identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrAuthenticationRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidServerID), errors.Is(err, ErrServerNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Server list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	responses := make([]models.ServerResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.Response(withNumMembers))
	}

	return c.JSON(responses)
}

// HandleGetIcon streams a server's icon from storage.
// @Summary Get Server Icon
// @Description Download the icon of a server.
// @Tags servers
// @Produce octet-stream
// @Param serverId path int true "Server ID"
// @Success 200 {file} binary "Icon"
// @Failure 404 {object} map[string]string "Server or icon not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/server/{serverId}/icon [get]
func (h *Handler) HandleGetIcon(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	serverID, err := c.ParamsInt("serverId")
	if err != nil || serverID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidServerID.Error()})
	}

	icon, contentType, err := h.service.GetIcon(c.Context(), uint(serverID))
	if err != nil {
		if errors.Is(err, ErrIconNotFound) || errors.Is(err, ErrServerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Icon fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer icon.Close()

	data, err := io.ReadAll(icon)
	if err != nil {
		l.Error("Icon read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.Send(data)
}

// HandlePutIcon uploads or replaces a server's icon. Requires authentication.
// @Summary Upload Server Icon
// @Description Upload or replace the icon of a server. Requires authentication.
// @Tags servers
// @Accept octet-stream
// @Produce json
// @Param serverId path int true "Server ID"
// @Success 200 {object} map[string]string "Status"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Server not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/server/{serverId}/icon [put]
func (h *Handler) HandlePutIcon(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	identity := auth.IdentityFromCtx(c)
	if !identity.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrAuthenticationRequired.Error()})
	}

	serverID, err := c.ParamsInt("serverId")
	if err != nil || serverID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidServerID.Error()})
	}

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty icon body"})
	}

	contentType := c.Get(fiber.HeaderContentType)
	if err := h.service.PutIcon(c.Context(), uint(serverID), body, contentType); err != nil {
		if errors.Is(err, ErrServerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Icon upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "stored"})
}

// HandleDeleteIcon removes a server's icon. Requires authentication.
// @Summary Delete Server Icon
// @Description Remove the icon of a server. Requires authentication.
// @Tags servers
// @Produce json
// @Param serverId path int true "Server ID"
// @Success 200 {object} map[string]string "Status"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Server not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/server/{serverId}/icon [delete]
func (h *Handler) HandleDeleteIcon(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	identity := auth.IdentityFromCtx(c)
	if !identity.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrAuthenticationRequired.Error()})
	}

	serverID, err := c.ParamsInt("serverId")
	if err != nil || serverID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidServerID.Error()})
	}

	if err := h.service.DeleteIcon(c.Context(), uint(serverID)); err != nil {
		if errors.Is(err, ErrServerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Icon delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "removed"})
}
