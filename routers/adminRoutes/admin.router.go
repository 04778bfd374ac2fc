package adminRoutes

import (
	adminControllers "recipehub/controllers/admin"
	"recipehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, ctl *adminControllers.Controller) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", ctl.Stats)
	adminGroup.Get("/users", ctl.Users)
	adminGroup.Post("/reconcile", ctl.Reconcile)
}
