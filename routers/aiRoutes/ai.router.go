package aiRoutes

import (
	aiControllers "recipehub/controllers/ai"
	"recipehub/middleware"
	aiValidators "recipehub/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAIRoutes(app *fiber.App, ctl *aiControllers.Controller) {
	aiGroup := app.Group("/api/ai", middleware.JWTMiddleware)

	aiGroup.Post("/generate", aiValidators.Generate(), ctl.Generate)
}
