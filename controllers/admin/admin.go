package adminController

import (
	"log"
	"time"

	"recipehub/middleware"
	"recipehub/models"
	"recipehub/services/appointment"
	"recipehub/services/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB           *gorm.DB
	Enrollment   *enrollment.Service
	Appointments *appointment.Service
}

func New(db *gorm.DB, enrollmentSvc *enrollment.Service, appointmentSvc *appointment.Service) *Controller {
	return &Controller{DB: db, Enrollment: enrollmentSvc, Appointments: appointmentSvc}
}

type UserEngagement struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CoursesCount int64     `json:"courses_count"`
	JoinedAt     time.Time `json:"joined_at"`
}

type CourseEnrollment struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	EnrolledCount int    `json:"enrolled_count"`
	MaxSeats      int    `json:"max_seats"`
}

type RecentUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the read-only dashboard summary.
func (ctl *Controller) Stats(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var totals struct {
		Users        int64 `json:"users"`
		Courses      int64 `json:"courses"`
		Enrollments  int64 `json:"enrollments"`
		Appointments int64 `json:"appointments"`
	}
	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{db.Model(&models.User{}).Where("is_deleted = ?", false), &totals.Users},
		{db.Model(&models.Course{}).Where("is_deleted = ?", false), &totals.Courses},
		{db.Model(&models.UserCourse{}), &totals.Enrollments},
		{db.Model(&models.Appointment{}), &totals.Appointments},
	}
	for _, q := range counts {
		if err := q.query.Count(q.dest).Error; err != nil {
			return ctl.failed(c, err)
		}
	}

	engagement := []UserEngagement{}
	if err := db.Table("users").
		Select("users.id, users.name, users.email, users.created_at AS joined_at, COUNT(user_courses.id) AS courses_count").
		Joins("LEFT JOIN user_courses ON user_courses.user_id = users.id").
		Where("users.is_deleted = ? AND users.deleted_at IS NULL", false).
		Group("users.id, users.name, users.email, users.created_at").
		Order("courses_count desc, users.id asc").
		Scan(&engagement).Error; err != nil {
		return ctl.failed(c, err)
	}

	mostEnrolled := []CourseEnrollment{}
	if err := db.Model(&models.Course{}).
		Select("id, title, participant_count AS enrolled_count, max_seats").
		Where("is_deleted = ? AND participant_count > 0", false).
		Order("participant_count desc, id asc").
		Limit(10).
		Scan(&mostEnrolled).Error; err != nil {
		return ctl.failed(c, err)
	}

	recentUsers := []RecentUser{}
	if err := db.Model(&models.User{}).
		Select("id, name, email, created_at").
		Where("is_deleted = ?", false).
		Order("created_at desc, id desc").
		Limit(10).
		Scan(&recentUsers).Error; err != nil {
		return ctl.failed(c, err)
	}

	upcoming, err := ctl.Appointments.Upcoming(c.UserContext())
	if err != nil {
		return ctl.failed(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin statistics.", fiber.Map{
		"totals":               totals,
		"userEngagement":       engagement,
		"mostEnrolledCourses":  mostEnrolled,
		"recentUsers":          recentUsers,
		"upcomingAppointments": upcoming,
	})
}

func (ctl *Controller) Users(c *fiber.Ctx) error {
	users := []models.User{}
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("enrolled_at asc, id asc")
		}).
		Where("is_deleted = ?", false).
		Order("created_at desc, id desc").
		Find(&users).Error; err != nil {
		return ctl.failed(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"count": len(users),
		"users": users,
	})
}

// Reconcile runs the enrollment repair pass now instead of waiting for cron.
func (ctl *Controller) Reconcile(c *fiber.Ctx) error {
	report, err := ctl.Enrollment.Reconcile(c.UserContext())
	if err != nil {
		return ctl.failed(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reconciliation finished.", report)
}

func (ctl *Controller) failed(c *fiber.Ctx, err error) error {
	log.Printf("[ADMIN] %s %s: %v", c.Method(), c.Path(), err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching admin data!", nil)
}
