package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/realtyaudit/capital-service/internal/config"
	"github.com/realtyaudit/capital-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendLeadNotification notifies the agency inbox about a new lead
func (s *Sender) SendLeadNotification(lead models.Lead) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.LeadInbox}
	e.Subject = "New calculator lead"

	body := fmt.Sprintf(
		"A new lead was captured from the capital calculator.\n\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Submitted at: %s\n",
		lead.Name, lead.Phone, lead.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	body += "\nBest regards,\nCapital Audit Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send lead notification to %s: %v", s.cfg.LeadInbox, err)
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	s.logger.Infof("Lead notification sent to %s", s.cfg.LeadInbox)
	return nil
}
