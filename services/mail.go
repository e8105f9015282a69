package services

import (
	"fmt"
	"net/smtp"
	"os"

	"taskpro/model"

	"github.com/joho/godotenv"
)

// Mailer is the outbound mail channel. Delivery is a side effect of the
// request that triggered it; callers decide whether a failure is fatal.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

func LoadEmailConfig() (*model.EmailConfig, error) {
	if os.Getenv("SMTP_HOST") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &model.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}
	return config, nil
}

type SMTPMailer struct {
	config *model.EmailConfig
}

func NewSMTPMailer(config *model.EmailConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	addr := m.config.Host + ":" + m.config.Port
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	from := m.config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		htmlBody

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}

// FeedbackBody renders the help-request mail forwarded to the support
// inbox.
func FeedbackBody(userEmail, comment string) string {
	return `
        <div style="font-family: Arial, sans-serif; line-height: 1.6;">
          <h2 style="color: #333;">Help Request</h2>
          <p><strong>User Email:</strong> ` + userEmail + `</p>
          <p><strong>User Comment:</strong></p>
          <p style="background: #f9f9f9; padding: 10px; border-radius: 5px;">` + comment + `</p>
        </div>`
}

// ReminderBody renders the deadline-reminder mail sent to a board owner.
func ReminderBody(cardTitle, boardTitle string) string {
	return `
        <div style="font-family: Arial, sans-serif; line-height: 1.6;">
          <h2 style="color: #333;">TaskPro Reminder</h2>
          <p>The card <strong>` + cardTitle + `</strong> on board <strong>` + boardTitle + `</strong> is due within the next hour.</p>
        </div>`
}
