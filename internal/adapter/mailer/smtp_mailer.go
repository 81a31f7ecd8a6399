package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/domain"
)

// SMTPMailer sends plain-text mail through a configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates an SMTPMailer from configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	recipients := []string{to}

	message := fmt.Appendf(nil, "To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", strings.Join(recipients, ","), subject, body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.From, recipients, message); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

var _ domain.Mailer = (*SMTPMailer)(nil)
