package utils

import (
	"errors"
	"testing"
	"time"

	"recipehub/config"
	"recipehub/models"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type outbox struct {
	sent []*mail.SGMailV3
	err  error
}

func (o *outbox) send(msg *mail.SGMailV3) error {
	o.sent = append(o.sent, msg)
	return o.err
}

func TestMailer_CourseRegistered(t *testing.T) {
	box := &outbox{}
	m := NewMailerWithSender("school@example.com", box.send)

	m.CourseRegistered(
		models.User{Name: "Noa <b>", Email: "noa@example.com"},
		models.Course{Title: "Bread", Location: "Jaffa", Date: time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC), MaxSeats: 8, ParticipantCount: 3},
	)

	require.Len(t, box.sent, 1)
	msg := box.sent[0]
	assert.Equal(t, "Course registration confirmed", msg.Subject)
	assert.Equal(t, "school@example.com", msg.From.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "noa@example.com", msg.Personalizations[0].To[0].Address)

	htmlBody := msg.Content[len(msg.Content)-1].Value
	assert.Contains(t, htmlBody, "Bread")
	assert.Contains(t, htmlBody, "3 / 8")
	assert.Contains(t, htmlBody, "Noa &lt;b&gt;")
}

func TestMailer_AppointmentBooked(t *testing.T) {
	box := &outbox{}
	m := NewMailerWithSender("school@example.com", box.send)

	m.AppointmentBooked(models.Appointment{
		FirstName: "Dana", LastName: "Levi", Email: "dana@example.com",
		Date: datatypes.Date(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)), Time: "10:00", Reference: "ref-1",
	})

	require.Len(t, box.sent, 1)
	htmlBody := box.sent[0].Content[len(box.sent[0].Content)-1].Value
	assert.Contains(t, htmlBody, "ref-1")
	assert.Contains(t, htmlBody, "10:00")
}

func TestMailer_SendError(t *testing.T) {
	box := &outbox{err: errors.New("boom")}
	m := NewMailerWithSender("school@example.com", box.send)

	err := m.SendEmail("x", "x@example.com", "s", "t", "b")
	assert.EqualError(t, err, "boom")
}

func TestMailer_DisabledWithoutKey(t *testing.T) {
	m := NewMailer(&config.Config{})
	assert.Nil(t, m)

	// a nil mailer swallows everything
	assert.NoError(t, m.SendEmail("x", "x@example.com", "s", "t", "b"))
	m.CourseRegistered(models.User{}, models.Course{})
	m.AppointmentBooked(models.Appointment{})
}
