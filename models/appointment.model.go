package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppointmentSlots are the bookable start times, one booking per slot per day.
var AppointmentSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

type Appointment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Reference string         `json:"reference" gorm:"size:36;uniqueIndex"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Date      datatypes.Date `json:"date" gorm:"not null;uniqueIndex:idx_appointment_slot"`
	Time      string         `json:"time" gorm:"size:5;not null;uniqueIndex:idx_appointment_slot"`
	CreatedAt time.Time      `json:"created_at"`
}
