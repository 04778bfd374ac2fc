package appointmentValidator

import (
	"recipehub/middleware"
	"recipehub/models"
	commonValidator "recipehub/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func init() {
	_ = commonValidator.Validate().RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		for _, s := range models.AppointmentSlots {
			if s == fl.Field().String() {
				return true
			}
		}
		return false
	})
}

type BookRequest struct {
	FirstName string `json:"firstName" validate:"required,max=60"`
	LastName  string `json:"lastName" validate:"required,max=60"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,slot"`
}

func Book() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errs := commonValidator.Struct(reqData); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedAppointment", reqData)
		return c.Next()
	}
}
