package identity

import (
	"net/http/httptest"
	"testing"

	"chat-directory/core/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *auth.Issuer) {
	issuer := auth.NewIssuer(auth.Config{Secret: "test-secret", TokenTTLMinutes: 5})
	app := fiber.New()
	app.Use(New(issuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id := auth.IdentityFromCtx(c)
		return c.JSON(fiber.Map{"user_id": id.UserID, "authenticated": id.Authenticated})
	})
	return app, issuer
}

func TestNew_NoHeaderIsAnonymous(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNew_ValidToken(t *testing.T) {
	app, issuer := setupApp(t)

	token, err := issuer.Issue(9)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNew_MalformedHeader(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestNew_InvalidToken(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
