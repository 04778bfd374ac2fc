package appointmentController

import (
	"errors"
	"log"

	"recipehub/middleware"
	"recipehub/services/appointment"
	appointmentValidator "recipehub/validators/appointment"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Appointments *appointment.Service
}

func New(svc *appointment.Service) *Controller {
	return &Controller{Appointments: svc}
}

func errorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, appointment.ErrSlotTaken):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, appointment.ErrInvalidSlot),
		errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrDateInPast):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[APPOINTMENT] %s %s: %v", c.Method(), c.Path(), err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
	}
}

func (ctl *Controller) Book(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAppointment").(*appointmentValidator.BookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	appt, err := ctl.Appointments.Book(c.UserContext(), appointment.BookInput{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Date:      reqData.Date,
		Time:      reqData.Time,
	})
	if err != nil {
		return errorResponse(c, err, "Failed to book appointment!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Appointment booked successfully!", fiber.Map{"appointment": appt})
}

// Occupied lists taken times per upcoming date so clients can grey them out.
func (ctl *Controller) Occupied(c *fiber.Ctx) error {
	occupied, err := ctl.Appointments.OccupiedSlots(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Failed to fetch occupied dates!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Occupied slots.", fiber.Map{"occupied": occupied})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	appts, err := ctl.Appointments.List(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Failed to fetch appointments!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments fetched successfully!", fiber.Map{"appointments": appts})
}

func (ctl *Controller) Cancel(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	appt, err := ctl.Appointments.Cancel(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err, "Failed to cancel appointment!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment cancelled.", fiber.Map{"appointment": appt})
}
