package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"recipehub/models"

	"gorm.io/gorm"
)

// CourseInput carries the fields of a new course.
type CourseInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Date        time.Time
	MaxSeats    int
	Content     string
	Image       string
}

// CourseUpdate carries the fields to change; nil means keep.
type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	Date        *time.Time
	MaxSeats    *int
	Content     *string
	Image       *string
}

// ListCourses returns every live course, soonest first.
func (s *Service) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("date asc, id asc").
		Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// GetCourse loads one course with its participants resolved to name and email.
func (s *Service) GetCourse(ctx context.Context, courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at asc, id asc")
		}).
		Preload("Participants.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Where("id = ? AND is_deleted = ?", courseID, false).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &course, nil
}

// CreateCourse stores a new course owned by the acting admin.
func (s *Service) CreateCourse(ctx context.Context, actor Actor, in CourseInput) (*models.Course, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Location) == "" || in.MaxSeats <= 0 || in.Price < 0 {
		return nil, ErrInvalidCourse
	}

	course := models.Course{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Location:    strings.TrimSpace(in.Location),
		Date:        in.Date,
		MaxSeats:    in.MaxSeats,
		Content:     in.Content,
		Image:       in.Image,
		CreatedBy:   actor.UserID,
	}
	if err := s.db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	log.Printf("[ENROLLMENT] course %d created by admin %d", course.ID, actor.UserID)
	return &course, nil
}

// UpdateCourse applies the provided fields. Shrinking MaxSeats below the
// current participant count is refused atomically.
func (s *Service) UpdateCourse(ctx context.Context, actor Actor, courseID uint, in CourseUpdate) (*models.Course, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := findCourse(tx, courseID)
		if err != nil {
			return err
		}

		if in.MaxSeats != nil {
			if *in.MaxSeats <= 0 {
				return ErrInvalidCourse
			}
			res := tx.Model(&models.Course{}).
				Where("id = ? AND participant_count <= ?", courseID, *in.MaxSeats).
				UpdateColumn("max_seats", *in.MaxSeats)
			if res.Error != nil {
				return fmt.Errorf("update seats: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrSeatsBelowParticipants
			}
		}

		changes := map[string]interface{}{}
		if in.Title != nil {
			if strings.TrimSpace(*in.Title) == "" {
				return ErrInvalidCourse
			}
			changes["title"] = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			changes["description"] = *in.Description
		}
		if in.Price != nil {
			if *in.Price < 0 {
				return ErrInvalidCourse
			}
			changes["price"] = *in.Price
		}
		if in.Location != nil {
			if strings.TrimSpace(*in.Location) == "" {
				return ErrInvalidCourse
			}
			changes["location"] = strings.TrimSpace(*in.Location)
		}
		if in.Date != nil {
			changes["date"] = *in.Date
		}
		if in.Content != nil {
			changes["content"] = *in.Content
		}
		if in.Image != nil {
			changes["image"] = *in.Image
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(course).Updates(changes).Error; err != nil {
			return fmt.Errorf("update course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCourse(ctx, courseID)
}

// DeleteCourse retires the course and drops it from every participant's list.
func (s *Service) DeleteCourse(ctx context.Context, actor Actor, courseID uint) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCourse(tx, courseID); err != nil {
			return err
		}

		if err := tx.Model(&models.Course{}).
			Where("id = ?", courseID).
			UpdateColumns(map[string]interface{}{"is_deleted": true, "participant_count": 0}).Error; err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseParticipant{}).Error; err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}
		res := tx.Where("course_id = ?", courseID).Delete(&models.UserCourse{})
		if res.Error != nil {
			return fmt.Errorf("delete user courses: %w", res.Error)
		}

		log.Printf("[ENROLLMENT] course %d deleted by admin %d, %d enrollments removed", courseID, actor.UserID, res.RowsAffected)
		return nil
	})
}
