package courseValidator

import (
	"time"

	"recipehub/middleware"
	commonValidator "recipehub/validators/common"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	Price       float64   `json:"price" validate:"gte=0"`
	Location    string    `json:"location" validate:"required,max=120"`
	Date        time.Time `json:"date" validate:"required"`
	MaxSeats    int       `json:"maxSeats" validate:"required,gt=0"`
	Content     string    `json:"content"`
	Image       string    `json:"image" validate:"omitempty,url"`
}

// UpdateCourseRequest fields are optional; only the ones sent are changed.
type UpdateCourseRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=120"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	Location    *string    `json:"location" validate:"omitempty,min=1,max=120"`
	Date        *time.Time `json:"date"`
	MaxSeats    *int       `json:"maxSeats" validate:"omitempty,gt=0"`
	Content     *string    `json:"content"`
	Image       *string    `json:"image" validate:"omitempty,url"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errs := commonValidator.Struct(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errs := commonValidator.Struct(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
