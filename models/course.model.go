package models

import (
	"time"

	"gorm.io/gorm"
)

// Course is a physical, seat-limited cooking course.
type Course struct {
	gorm.Model
	Title            string              `json:"title" gorm:"not null"`
	Description      string              `json:"description"`
	Price            float64             `json:"price"`
	Location         string              `json:"location" gorm:"not null"`
	Date             time.Time           `json:"date"`
	MaxSeats         int                 `json:"max_seats" gorm:"not null"`
	ParticipantCount int                 `json:"participant_count" gorm:"default:0;not null"` // mirrors len(Participants)
	Content          string              `json:"content"`
	Image            string              `json:"image"`
	CreatedBy        uint                `json:"created_by" gorm:"index"`
	Participants     []CourseParticipant `json:"participants,omitempty" gorm:"foreignKey:CourseID"`
	IsDeleted        bool                `json:"-" gorm:"default:false;index"`
}

// SeatsLeft reports how many more participants the course can take.
func (c Course) SeatsLeft() int {
	if left := c.MaxSeats - c.ParticipantCount; left > 0 {
		return left
	}
	return 0
}
