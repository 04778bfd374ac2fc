package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string       `json:"name" gorm:"not null"`
	Email     string       `json:"email" gorm:"unique;not null"`
	Password  string       `json:"-" gorm:"not null"`
	IsAdmin   bool         `json:"is_admin" gorm:"default:false"` // cached at login from ADMIN_EMAIL
	LastLogin *time.Time   `json:"last_login"`
	Courses   []UserCourse `json:"courses" gorm:"foreignKey:UserID"`
	IsDeleted bool         `json:"-" gorm:"default:false"`
}
