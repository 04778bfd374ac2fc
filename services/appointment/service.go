// Package appointment books the fixed daily consultation slots.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"recipehub/models"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidSlot         = errors.New("Invalid time selected. Valids: " + strings.Join(models.AppointmentSlots, ", "))
	ErrInvalidDate         = errors.New("Invalid date format, expected YYYY-MM-DD")
	ErrDateInPast          = errors.New("Invalid date. Please choose a future date.")
	ErrSlotTaken           = errors.New("This time slot is already taken.")
	ErrAppointmentNotFound = errors.New("Appointment not found")
)

// Notifier is told about every confirmed booking.
type Notifier interface {
	AppointmentBooked(a models.Appointment)
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
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

type BookInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Date      string
	Time      string
}

// IsValidSlot reports whether t is one of the bookable start times.
func IsValidSlot(t string) bool {
	for _, slot := range models.AppointmentSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// Book reserves (date, time). The unique slot index decides races; the
// pre-check only gives the common case a clean error.
func (s *Service) Book(ctx context.Context, in BookInput) (*models.Appointment, error) {
	if !IsValidSlot(in.Time) {
		return nil, ErrInvalidSlot
	}
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(in.Date), time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}
	today := now.With(s.now().UTC()).BeginningOfDay()
	if day.Before(today) {
		return nil, ErrDateInPast
	}

	appt := models.Appointment{
		Reference: uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      datatypes.Date(day),
		Time:      in.Time,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Appointment{}).
			Where("date = ? AND time = ?", appt.Date, appt.Time).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if taken > 0 {
			return ErrSlotTaken
		}
		if err := tx.Create(&appt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[APPOINTMENT] %s booked %s %s (%s)", appt.Email, day.Format(DateLayout), appt.Time, appt.Reference)
	if s.notifier != nil {
		go s.notifier.AppointmentBooked(appt)
	}
	return &appt, nil
}

// Cancel deletes the appointment and returns what was removed.
func (s *Service) Cancel(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("load appointment: %w", err)
		}
		if err := tx.Delete(&appt).Error; err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// List returns every appointment in calendar order.
func (s *Service) List(ctx context.Context) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	if err := s.db.WithContext(ctx).Order("date asc, time asc").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// Upcoming returns appointments from today on.
func (s *Service) Upcoming(ctx context.Context) ([]models.Appointment, error) {
	today := datatypes.Date(now.With(s.now().UTC()).BeginningOfDay())
	appts := []models.Appointment{}
	if err := s.db.WithContext(ctx).
		Where("date >= ?", today).
		Order("date asc, time asc").
		Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}
	return appts, nil
}

// OccupiedSlots maps each upcoming date (YYYY-MM-DD) to its taken times.
func (s *Service) OccupiedSlots(ctx context.Context) (map[string][]string, error) {
	appts, err := s.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	occupied := map[string][]string{}
	for _, a := range appts {
		key := time.Time(a.Date).UTC().Format(DateLayout)
		occupied[key] = append(occupied[key], a.Time)
	}
	return occupied, nil
}
