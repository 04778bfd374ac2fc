package userRoutes

import (
	authControllers "recipehub/controllers/auth"
	courseControllers "recipehub/controllers/course"
	"recipehub/middleware"
	commonValidator "recipehub/validators/common"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes mounts the caller's own profile and enrollment list. The
// courses/:id routes are kept for older clients and behave exactly like
// /api/courses/:id/register and /unregister.
func SetupUserRoutes(app *fiber.App, courses *courseControllers.Controller) {
	userGroup := app.Group("/api/users")
	courseID := commonValidator.ParamID("id", "Course")

	userGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
	userGroup.Get("/courses", middleware.JWTMiddleware, courses.MyCourses)
	userGroup.Post("/courses/:id", middleware.JWTMiddleware, courseID, courses.Register)
	userGroup.Delete("/courses/:id", middleware.JWTMiddleware, courseID, courses.Unregister)
}
