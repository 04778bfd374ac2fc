package enrollment

import (
	"context"
	"fmt"
	"log"

	"recipehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconcileReport counts what a reconciliation pass repaired.
type ReconcileReport struct {
	OrphansRemoved      int64  `json:"orphans_removed"`
	UserEntriesAdded    int64  `json:"user_entries_added"`
	UserEntriesRemoved  int64  `json:"user_entries_removed"`
	CountsResynced      int64  `json:"counts_resynced"`
	OverCapacityCourses []uint `json:"over_capacity_courses"`
}

// Changed reports whether the pass touched anything.
func (r ReconcileReport) Changed() bool {
	return r.OrphansRemoved+r.UserEntriesAdded+r.UserEntriesRemoved+r.CountsResynced > 0
}

const participantCountSQL = "(SELECT COUNT(*) FROM course_participants WHERE course_participants.course_id = courses.id)"

// Reconcile brings both sides of every enrollment back into agreement.
// The participant set is authoritative: a participant missing from the
// user's list is added back, a user entry without a participant is dropped.
// Courses already over capacity are reported, never trimmed.
func (s *Service) Reconcile(ctx context.Context) (ReconcileReport, error) {
	report := ReconcileReport{OverCapacityCourses: []uint{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live := tx.Model(&models.Course{}).Select("id").Where("is_deleted = ?", false)

		res := tx.Where("course_id NOT IN (?)", live).Delete(&models.CourseParticipant{})
		if res.Error != nil {
			return fmt.Errorf("remove orphan participants: %w", res.Error)
		}
		report.OrphansRemoved += res.RowsAffected

		res = tx.Where("course_id NOT IN (?)", live).Delete(&models.UserCourse{})
		if res.Error != nil {
			return fmt.Errorf("remove orphan user courses: %w", res.Error)
		}
		report.OrphansRemoved += res.RowsAffected

		var missing []models.CourseParticipant
		if err := tx.Where("NOT EXISTS (SELECT 1 FROM user_courses WHERE user_courses.user_id = course_participants.user_id AND user_courses.course_id = course_participants.course_id)").
			Find(&missing).Error; err != nil {
			return fmt.Errorf("find participants without user entry: %w", err)
		}
		now := s.now().UTC()
		for _, p := range missing {
			entry := models.UserCourse{UserID: p.UserID, CourseID: p.CourseID, Status: models.EnrollmentPending, EnrolledAt: now}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
			if res.Error != nil {
				return fmt.Errorf("restore user course: %w", res.Error)
			}
			report.UserEntriesAdded += res.RowsAffected
		}

		res = tx.Where("NOT EXISTS (SELECT 1 FROM course_participants WHERE course_participants.user_id = user_courses.user_id AND course_participants.course_id = user_courses.course_id)").
			Delete(&models.UserCourse{})
		if res.Error != nil {
			return fmt.Errorf("remove user entries without participant: %w", res.Error)
		}
		report.UserEntriesRemoved = res.RowsAffected

		res = tx.Model(&models.Course{}).
			Where("is_deleted = ? AND participant_count <> "+participantCountSQL, false).
			UpdateColumn("participant_count", gorm.Expr(participantCountSQL))
		if res.Error != nil {
			return fmt.Errorf("resync participant counts: %w", res.Error)
		}
		report.CountsResynced = res.RowsAffected

		if err := tx.Model(&models.Course{}).
			Where("is_deleted = ? AND participant_count > max_seats", false).
			Pluck("id", &report.OverCapacityCourses).Error; err != nil {
			return fmt.Errorf("find over capacity courses: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReconcileReport{}, err
	}

	if report.Changed() {
		log.Printf("[RECONCILE] orphans=%d added=%d removed=%d resynced=%d",
			report.OrphansRemoved, report.UserEntriesAdded, report.UserEntriesRemoved, report.CountsResynced)
	}
	if len(report.OverCapacityCourses) > 0 {
		log.Printf("[RECONCILE] courses over capacity: %v", report.OverCapacityCourses)
	}
	return report, nil
}
