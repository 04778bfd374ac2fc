package courseController

import (
	"recipehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Register enrolls the caller. Repeating it is a success carrying
// alreadyEnrolled=true.
func (ctl *Controller) Register(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	courseID := c.Locals("id").(uint)

	res, err := ctl.Enrollment.Register(c.UserContext(), actor.UserID, courseID)
	if err != nil {
		return errorResponse(c, err, "Failed to register to course!")
	}

	message := "Registered to course successfully!"
	if res.AlreadyEnrolled {
		message = "You are already registered to this course."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"course":          res.Course,
		"userCourses":     res.UserCourses,
		"alreadyEnrolled": res.AlreadyEnrolled,
	})
}

func (ctl *Controller) Unregister(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	courseID := c.Locals("id").(uint)

	userCourses, err := ctl.Enrollment.Unregister(c.UserContext(), actor.UserID, courseID)
	if err != nil {
		return errorResponse(c, err, "Failed to unregister from course!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unregistered from course successfully!", fiber.Map{
		"userCourses": userCourses,
	})
}

// MyCourses lists the caller's enrollments.
func (ctl *Controller) MyCourses(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	courses, err := ctl.Enrollment.UserCourses(c.UserContext(), actor.UserID)
	if err != nil {
		return errorResponse(c, err, "Failed to fetch your courses!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your courses.", fiber.Map{"courses": courses})
}
