package identity

import (
	"strings"

	"chat-directory/core/auth"

	"github.com/gofiber/fiber/v2"
)

// New creates a middleware that resolves the requesting identity from the
// Authorization header.
//
// No header means the request proceeds anonymous, handlers gate restricted
// filters themselves. A supplied token that fails validation is rejected
// with 401.
func New(issuer *auth.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			auth.StoreIdentity(c, auth.Anonymous())
			return c.Next()
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization format, use: Bearer <token>",
			})
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		auth.StoreIdentity(c, auth.Identity{UserID: claims.UserID, Authenticated: true})
		return c.Next()
	}
}
