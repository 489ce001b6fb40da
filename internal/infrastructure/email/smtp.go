// Package email sends outbound mail over SMTP using gomail.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"propdesk/internal/shared/config"
)

// SMTPSender delivers plaintext mail, most importantly the contractor drafts
// produced by the triage pipeline. It backs the EmailSender port of the
// ticket use cases.
type SMTPSender struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// Send delivers a plaintext message. Drafts are generated as plain text so no
// HTML alternative is attached.
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
