package utils

import (
	"fmt"
	"html"
	"log"
	"time"

	"recipehub/config"
	"recipehub/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendFunc delivers one prepared message.
type SendFunc func(msg *mail.SGMailV3) error

// Mailer sends confirmation mail through SendGrid. It satisfies both the
// enrollment and the appointment notifier interfaces.
type Mailer struct {
	from *mail.Email
	send SendFunc
}

// NewMailer returns nil when no SendGrid key is configured; a nil *Mailer
// drops every message.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SendgridAPIKey == "" {
		log.Println("[MAILER] SENDGRID_API_KEY not set, confirmation mail disabled")
		return nil
	}
	client := sendgrid.NewSendClient(cfg.SendgridAPIKey)
	return NewMailerWithSender(cfg.EmailSender, func(msg *mail.SGMailV3) error {
		resp, err := client.Send(msg)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 300 {
			return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
		}
		return nil
	})
}

func NewMailerWithSender(from string, send SendFunc) *Mailer {
	return &Mailer{from: mail.NewEmail("RecipeHub", from), send: send}
}

// SendEmail sends one HTML mail wrapped in the house template.
func (m *Mailer) SendEmail(toName, toEmail, subject, title, body string) error {
	if m == nil {
		return nil
	}
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(m.from, subject, to, title, getEmailTemplate(title, body))
	if err := m.send(msg); err != nil {
		log.Printf("[MAILER] send %q to %s: %v", subject, toEmail, err)
		return err
	}
	log.Printf("[MAILER] sent %q to %s", subject, toEmail)
	return nil
}

// CourseRegistered confirms a fresh course registration.
func (m *Mailer) CourseRegistered(user models.User, course models.Course) {
	if m == nil {
		return
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are registered to <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Where:</strong> %s<br>
			<strong>When:</strong> %s<br>
			<strong>Seats taken:</strong> %d / %d (%d left)
		</div>
		<p>Your seat is reserved with status <em>pending</em> until payment.</p>
	`, html.EscapeString(user.Name), html.EscapeString(course.Title), html.EscapeString(course.Location),
		course.Date.Format("Mon 02 Jan 2006 15:04"), course.ParticipantCount, course.MaxSeats, course.SeatsLeft())

	_ = m.SendEmail(user.Name, user.Email, "Course registration confirmed", "See you in the kitchen!", body)
}

// AppointmentBooked confirms a consultation booking.
func (m *Mailer) AppointmentBooked(a models.Appointment) {
	if m == nil {
		return
	}
	name := a.FirstName + " " + a.LastName
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<div class="info-box">
			<strong>Date:</strong> %s<br>
			<strong>Time:</strong> %s<br>
			<strong>Reference:</strong> %s
		</div>
	`, html.EscapeString(a.FirstName), time.Time(a.Date).Format("Mon 02 Jan 2006"), a.Time, a.Reference)

	_ = m.SendEmail(name, a.Email, "Appointment confirmed", "Your appointment is booked", body)
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #FAF7F2; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #7A3E1D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.info-box { background: #FFF4E5; padding: 15px; border-radius: 4px; border-left: 4px solid #E59A3C; margin: 20px 0; }
			.footer { background-color: #FAF7F2; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>RECIPEHUB</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">&copy; RecipeHub cooking school.</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(title), bodyContent)
}
