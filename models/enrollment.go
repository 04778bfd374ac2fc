package models

import "time"

const (
	EnrollmentPending = "pending"
	EnrollmentPaid    = "paid"
)

// CourseParticipant is one row of a course's participant set.
type CourseParticipant struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	CourseID uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_course_participant"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_course_participant;index"`
	JoinedAt time.Time `json:"joined_at"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// UserCourse is one entry of a user's enrollment list.
type UserCourse struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course;index"`
	Status     string    `json:"status" gorm:"default:'pending';not null"` // pending, paid
	EnrolledAt time.Time `json:"enrolled_at"`
}
