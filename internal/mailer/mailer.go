package mailer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"attendance-backend/config"
)

// Mailer delivers the welcome message a new employee receives with their
// initial credentials.
type Mailer interface {
	SendWelcome(to, name, employeeID, tempPassword string) error
}

// NewFromEnv returns the SMTP mailer when SMTP_HOST is configured, otherwise
// a console mailer that only logs (useful in development).
func NewFromEnv() Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return &ConsoleMailer{}
	}
	return &SMTPMailer{
		host:     host,
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USER", ""),
		password: config.GetEnv("SMTP_PASS", ""),
		from:     config.GetEnv("SMTP_FROM", "no-reply@attendance.local"),
	}
}

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func (m *SMTPMailer) SendWelcome(to, name, employeeID, tempPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your attendance account is ready")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour attendance account has been created.\n\nEmployee ID: %s\nPassword: %s\n\nPlease change your password after your first login.\n",
		name, employeeID, tempPassword,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// ConsoleMailer logs instead of sending, so local setups need no SMTP server.
type ConsoleMailer struct{}

func (m *ConsoleMailer) SendWelcome(to, name, employeeID, tempPassword string) error {
	log.Info().
		Str("to", to).
		Str("employee_id", employeeID).
		Msg("welcome mail (console backend, not sent)")
	return nil
}
