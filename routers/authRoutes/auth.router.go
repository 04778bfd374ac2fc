package authRoutes

import (
	authControllers "recipehub/controllers/auth"
	"recipehub/middleware"
	authValidators "recipehub/validators/auth"
	commonValidator "recipehub/validators/common"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/users")

	authGroup.Post("/register", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", middleware.JWTMiddleware, commonValidator.Pagination(), authControllers.LoginHistoryList)
}
