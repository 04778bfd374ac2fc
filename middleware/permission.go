package middleware

import (
	"recipehub/services/enrollment"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly must run after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}
	if isAdmin, _ := c.Locals("isAdmin").(bool); !isAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, enrollment.ErrForbidden.Error(), nil)
	}
	return c.Next()
}
