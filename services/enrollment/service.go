// Package enrollment owns the (user, course) enrollment pair: the course's
// participant set and the user's course list are only ever changed here, and
// always together inside one transaction.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"recipehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Actor is the resolved identity performing an operation.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

// Notifier is told about fresh registrations. Implementations must not block.
type Notifier interface {
	CourseRegistered(user models.User, course models.Course)
}

type Option func(*Service)

// WithNotifier sends a notification after every fresh registration.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterResult is what a successful Register hands back to the caller.
// UserCourses is the user's complete list so clients can replace their copy.
type RegisterResult struct {
	Course          *models.Course
	UserCourses     []models.UserCourse
	AlreadyEnrolled bool
}

// Register adds userID to the course's participants and the course to the
// user's list. Registering twice is not an error: the second call reports
// AlreadyEnrolled and changes nothing except repairing a missing user entry.
func (s *Service) Register(ctx context.Context, userID, courseID uint) (*RegisterResult, error) {
	var (
		user    models.User
		already bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCourse(tx, courseID); err != nil {
			return err
		}
		if err := tx.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}

		now := s.now().UTC()

		// The unique (course_id, user_id) index is the membership test.
		participant := models.CourseParticipant{CourseID: courseID, UserID: userID, JoinedAt: now}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participant)
		if res.Error != nil {
			return fmt.Errorf("add participant: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			already = true
			return ensureUserCourse(tx, userID, courseID, now)
		}

		// Seat guard: the row only changes while a seat is free, so two
		// concurrent registrations for the last seat cannot both pass.
		res = tx.Model(&models.Course{}).
			Where("id = ? AND is_deleted = ? AND participant_count < max_seats", courseID, false).
			UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("take seat: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Deleted meanwhile, or really full.
			if _, err := findCourse(tx, courseID); err != nil {
				return err
			}
			return ErrCourseFull
		}

		return ensureUserCourse(tx, userID, courseID, now)
	})
	if err != nil {
		return nil, err
	}

	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	userCourses, err := s.UserCourses(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !already {
		log.Printf("[ENROLLMENT] user %d registered to course %d (%d/%d)", userID, courseID, course.ParticipantCount, course.MaxSeats)
		if s.notifier != nil {
			go s.notifier.CourseRegistered(user, *course)
		}
	}

	return &RegisterResult{Course: course, UserCourses: userCourses, AlreadyEnrolled: already}, nil
}

// Unregister removes the pair from both sides. Removing something that is not
// there is a no-op; only an unknown course is an error.
func (s *Service) Unregister(ctx context.Context, userID, courseID uint) ([]models.UserCourse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCourse(tx, courseID); err != nil {
			return err
		}

		res := tx.Where("course_id = ? AND user_id = ?", courseID, userID).Delete(&models.CourseParticipant{})
		if res.Error != nil {
			return fmt.Errorf("remove participant: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			if err := tx.Model(&models.Course{}).
				Where("id = ? AND participant_count > 0", courseID).
				UpdateColumn("participant_count", gorm.Expr("participant_count - ?", 1)).Error; err != nil {
				return fmt.Errorf("free seat: %w", err)
			}
			log.Printf("[ENROLLMENT] user %d unregistered from course %d", userID, courseID)
		}

		if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).Delete(&models.UserCourse{}).Error; err != nil {
			return fmt.Errorf("remove user course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.UserCourses(ctx, userID)
}

// UserCourses returns the user's enrollment list, oldest first.
func (s *Service) UserCourses(ctx context.Context, userID uint) ([]models.UserCourse, error) {
	courses := []models.UserCourse{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at asc, id asc").
		Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list user courses: %w", err)
	}
	return courses, nil
}

func findCourse(tx *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("load course: %w", err)
	}
	return &course, nil
}

// ensureUserCourse adds a pending entry unless the user already has one.
func ensureUserCourse(tx *gorm.DB, userID, courseID uint, now time.Time) error {
	entry := models.UserCourse{
		UserID:     userID,
		CourseID:   courseID,
		Status:     models.EnrollmentPending,
		EnrolledAt: now,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("add user course: %w", err)
	}
	return nil
}
