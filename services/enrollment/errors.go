package enrollment

import "errors"

var (
	// ErrCourseNotFound is returned when the course does not exist or was deleted.
	ErrCourseNotFound = errors.New("Course not found")

	// ErrUserNotFound is returned when the acting user no longer exists.
	ErrUserNotFound = errors.New("User not found")

	// ErrCourseFull is returned when every seat of the course is taken.
	ErrCourseFull = errors.New("Course is full")

	// ErrForbidden is returned when a non-admin attempts a course mutation.
	ErrForbidden = errors.New("Access denied! Admin only.")

	// ErrSeatsBelowParticipants is returned when an update would shrink a
	// course below the participants it already has.
	ErrSeatsBelowParticipants = errors.New("Max seats cannot be lower than current participants")

	// ErrInvalidCourse is returned when course input fails domain checks.
	ErrInvalidCourse = errors.New("Invalid course data")
)
