package aiValidator

import (
	"strings"

	"recipehub/middleware"
	commonValidator "recipehub/validators/common"

	"github.com/gofiber/fiber/v2"
)

type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=500"`
}

// Generate validates the ingredient prompt sent to the recipe generator.
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Prompt = strings.TrimSpace(reqData.Prompt)

		if errs := commonValidator.Struct(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedPrompt", reqData)
		return c.Next()
	}
}
