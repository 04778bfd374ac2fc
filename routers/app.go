package routers

import (
	"strings"

	"recipehub/config"
	adminControllers "recipehub/controllers/admin"
	aiControllers "recipehub/controllers/ai"
	appointmentControllers "recipehub/controllers/appointment"
	courseControllers "recipehub/controllers/course"
	"recipehub/middleware"
	"recipehub/routers/adminRoutes"
	"recipehub/routers/aiRoutes"
	"recipehub/routers/appointmentRoutes"
	"recipehub/routers/authRoutes"
	"recipehub/routers/courseRoutes"
	"recipehub/routers/userRoutes"
	"recipehub/services/appointment"
	"recipehub/services/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	DB           *gorm.DB
	Enrollment   *enrollment.Service
	Appointments *appointment.Service
	Generator    aiControllers.RecipeGenerator
	AccessLog    bool
}

// NewApp builds the Fiber app with every route group mounted.
func NewApp(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "recipehub",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return middleware.JsonResponse(c, code, false, err.Error(), nil)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.CORSOrigins, " ", ""),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})

	courses := courseControllers.New(deps.Enrollment)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, courses)
	courseRoutes.SetupCourseRoutes(app, courses)
	adminRoutes.SetupAdminRoutes(app, adminControllers.New(deps.DB, deps.Enrollment, deps.Appointments))
	appointmentRoutes.SetupAppointmentRoutes(app, appointmentControllers.New(deps.Appointments))
	aiRoutes.SetupAIRoutes(app, aiControllers.New(deps.Generator))

	return app
}
