package aiController

import (
	"context"
	"errors"
	"log"

	"recipehub/middleware"
	"recipehub/utils"
	aiValidator "recipehub/validators/ai"

	"github.com/gofiber/fiber/v2"
)

// RecipeGenerator turns a list of ingredients into a recipe text.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, ingredients string) (string, error)
}

type Controller struct {
	Generator RecipeGenerator
}

func New(gen RecipeGenerator) *Controller {
	return &Controller{Generator: gen}
}

func (ctl *Controller) Generate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPrompt").(*aiValidator.GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	recipe, err := ctl.Generator.GenerateRecipe(c.UserContext(), reqData.Prompt)
	if err != nil {
		if errors.Is(err, utils.ErrAINotConfigured) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Recipe generation is not available.", nil)
		}
		log.Printf("[AI] generate recipe: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate recipe", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe generated.", fiber.Map{"recipe": recipe})
}
