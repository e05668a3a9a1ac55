package flash

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const cookieName = "flash_id"

// CookieID returns the browser's flash id, minting and setting one if the
// cookie is absent.
func CookieID(ctx *fiber.Ctx) string {
	id := ctx.Cookies(cookieName)
	if id == "" {
		id = uuid.NewString()
		ctx.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    id,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return id
}
