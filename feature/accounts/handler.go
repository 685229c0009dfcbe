package accounts

import (
	"errors"

	"chat-directory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// credentialsRequest is the JSON body of register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler handles HTTP requests for accounts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the account routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/account")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new user account.
// @Summary Register
// @Description Create a new user account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credentials"
// @Success 201 {object} map[string]interface{} "Created user"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Username taken"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/account/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}

// HandleLogin verifies credentials and returns an access token.
// @Summary Login
// @Description Verify credentials and receive an access token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credentials"
// @Success 200 {object} map[string]string "Access token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/account/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"access_token": token})
}
