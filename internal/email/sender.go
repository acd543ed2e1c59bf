// Package email dispatches transactional mail over SMTP. Sending is
// best-effort: callers fire it from a goroutine and only log failures.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"iconsherald/internal/config"
	"iconsherald/internal/models"
)

// Sender is the boundary the services depend on; tests substitute a fake.
type Sender interface {
	// SendInvitation delivers the approval invitation with the nominee's
	// temporary credential.
	SendInvitation(to, name string, tier models.Tier, tempPassword string) error

	// SendNotification delivers a plain subject/body message.
	SendNotification(to, subject, body string) error
}

type SMTPSender struct {
	cfg       *config.Config
	templates *TemplateManager
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	return &SMTPSender{cfg: cfg, templates: tm}, nil
}

func (s *SMTPSender) SendInvitation(to, name string, tier models.Tier, tempPassword string) error {
	body, err := s.templates.Render("invitation", InvitationData{
		Name:         name,
		Tier:         string(tier),
		TempPassword: tempPassword,
		LoginURL:     s.cfg.Site.BaseURL + "/login",
		SupportEmail: s.cfg.Email.FromEmail,
	})
	if err != nil {
		return fmt.Errorf("failed to render invitation template: %w", err)
	}
	return s.send(to, "You have been selected for Icons Herald", body)
}

func (s *SMTPSender) SendNotification(to, subject, body string) error {
	rendered, err := s.templates.Render("notification", NotificationData{
		Subject: subject,
		Message: body,
	})
	if err != nil {
		return fmt.Errorf("failed to render notification template: %w", err)
	}
	return s.send(to, subject, rendered)
}

func (s *SMTPSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUser,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
