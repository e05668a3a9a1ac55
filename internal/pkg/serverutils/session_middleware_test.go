package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/dashboard", SessionMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		userId := ctx.Locals("user_id").(uuid.UUID)
		username := ctx.Locals("username").(string)
		return ctx.SendString(username + ":" + userId.String())
	})
	return app
}

func signSession(t *testing.T, secret string, userId uuid.UUID, username string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userId.String(),
		"username": username,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestSessionMiddlewareRedirectsWithoutCookie(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSessionMiddlewareRedirectsOnBadToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestSessionMiddlewareRejectsForeignSignature(t *testing.T) {
	app := newProtectedApp()

	token := signSession(t, "some-other-secret", uuid.New(), "mallory")
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestSessionMiddlewarePassesIdentityThrough(t *testing.T) {
	app := newProtectedApp()
	userId := uuid.New()

	token := signSession(t, testSecret, userId, "alice")
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
