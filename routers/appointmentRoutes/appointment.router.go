package appointmentRoutes

import (
	appointmentControllers "recipehub/controllers/appointment"
	"recipehub/middleware"
	appointmentValidators "recipehub/validators/appointment"
	commonValidator "recipehub/validators/common"

	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App, ctl *appointmentControllers.Controller) {
	group := app.Group("/api/appointments")

	group.Post("/", appointmentValidators.Book(), ctl.Book)
	group.Get("/occupied", ctl.Occupied)

	group.Get("/", middleware.JWTMiddleware, middleware.AdminOnly, ctl.List)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, commonValidator.ParamID("id", "Appointment"), ctl.Cancel)
}
