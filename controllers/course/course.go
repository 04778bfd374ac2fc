package courseController

import (
	"errors"
	"log"

	"recipehub/middleware"
	"recipehub/services/enrollment"
	courseValidator "recipehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// Controller exposes the enrollment service over HTTP. It holds no logic of
// its own beyond input extraction and status mapping.
type Controller struct {
	Enrollment *enrollment.Service
}

func New(svc *enrollment.Service) *Controller {
	return &Controller{Enrollment: svc}
}

// errorResponse maps service errors to status codes; anything unexpected is
// logged and reported as a generic server error.
func errorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, enrollment.ErrCourseNotFound), errors.Is(err, enrollment.ErrUserNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, enrollment.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, enrollment.ErrCourseFull),
		errors.Is(err, enrollment.ErrSeatsBelowParticipants),
		errors.Is(err, enrollment.ErrInvalidCourse):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[ENROLLMENT] %s %s: %v", c.Method(), c.Path(), err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
	}
}

func (ctl *Controller) ListCourses(c *fiber.Ctx) error {
	courses, err := ctl.Enrollment.ListCourses(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Failed to fetch courses!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func (ctl *Controller) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("id").(uint)

	course, err := ctl.Enrollment.GetCourse(c.UserContext(), courseID)
	if err != nil {
		return errorResponse(c, err, "Failed to fetch course!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.Enrollment.CreateCourse(c.UserContext(), middleware.CurrentActor(c), enrollment.CourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Location:    reqData.Location,
		Date:        reqData.Date,
		MaxSeats:    reqData.MaxSeats,
		Content:     reqData.Content,
		Image:       reqData.Image,
	})
	if err != nil {
		return errorResponse(c, err, "Failed to create course!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", fiber.Map{"course": course})
}

func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("id").(uint)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.Enrollment.UpdateCourse(c.UserContext(), middleware.CurrentActor(c), courseID, enrollment.CourseUpdate{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Location:    reqData.Location,
		Date:        reqData.Date,
		MaxSeats:    reqData.MaxSeats,
		Content:     reqData.Content,
		Image:       reqData.Image,
	})
	if err != nil {
		return errorResponse(c, err, "Failed to update course!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", fiber.Map{"course": course})
}

func (ctl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("id").(uint)

	if err := ctl.Enrollment.DeleteCourse(c.UserContext(), middleware.CurrentActor(c), courseID); err != nil {
		return errorResponse(c, err, "Failed to delete course!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
