package courseRoutes

import (
	courseControllers "recipehub/controllers/course"
	"recipehub/middleware"
	commonValidator "recipehub/validators/common"
	courseValidators "recipehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctl *courseControllers.Controller) {
	courseGroup := app.Group("/api/courses")
	courseID := commonValidator.ParamID("id", "Course")

	courseGroup.Get("/", ctl.ListCourses)
	courseGroup.Get("/:id", courseID, ctl.GetCourse)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, courseValidators.CreateCourse(), ctl.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseID, courseValidators.UpdateCourse(), ctl.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseID, ctl.DeleteCourse)

	courseGroup.Post("/:id/register", middleware.JWTMiddleware, courseID, ctl.Register)
	courseGroup.Post("/:id/unregister", middleware.JWTMiddleware, courseID, ctl.Unregister)
}
