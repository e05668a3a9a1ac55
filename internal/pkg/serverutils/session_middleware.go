package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "session"

// SessionMiddleware authenticates browser requests from the JWT session
// cookie. Requests without a valid session are redirected to /login; no
// downstream handler runs for them.
func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Cookies(SessionCookieName)
		if tokenStr == "" {
			return ctx.Redirect("/login", fiber.StatusFound)
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Redirect("/login", fiber.StatusFound)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Redirect("/login", fiber.StatusFound)
		}

		rawId, _ := claims["user_id"].(string)
		userId, err := uuid.Parse(rawId)
		if err != nil {
			return ctx.Redirect("/login", fiber.StatusFound)
		}

		username, _ := claims["username"].(string)

		ctx.Locals("user_id", userId)
		ctx.Locals("username", username)
		return ctx.Next()
	}
}

func SetSessionCookie(ctx *fiber.Ctx, token string, ttl time.Duration) {
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func ClearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
