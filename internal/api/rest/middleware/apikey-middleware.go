package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// APIKeyAuth gates mutating routes behind a shared secret presented in the
// x-api-key header. Reads stay open; only the routes this is mounted on pay.
func APIKeyAuth(expected string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		presented := ctx.Get("x-api-key")

		if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return ctx.Next()
	}
}
