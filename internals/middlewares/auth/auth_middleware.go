// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "rupeess_backend/internals/helpers"
)

// AuthMiddleware verifikasi JWT dari Authorization header atau cookie "token",
// lalu simpan user_id + role ke Locals untuk handler berikutnya.
// Secret datang dari Config yang dirakit di startup, bukan env global.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helper.ExtractToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helper.ParseToken(secret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		userID, err := helper.UserIDFromClaims(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals("user_id", userID)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		return c.Next()
	}
}

// RequireRole membatasi akses ke role tertentu (mis. admin CRUD soal).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, _ := c.Locals("role").(string)
		for _, r := range roles {
			if current == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
	}
}
