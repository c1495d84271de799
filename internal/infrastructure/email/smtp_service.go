package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Melodious-nub/bnp-digital-backend/pkg/logger"
)

// ContactNotificationData carries a visitor message forwarded to the
// candidate's responsible email address.
type ContactNotificationData struct {
	To            string
	CandidateName string
	SenderName    string
	SenderEmail   string
	Subject       string
	Message       string
}

type EmailService interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := fmt.Sprintf("New contact message: %s", data.Subject)
	body := fmt.Sprintf(`Hello %s,

You have received a new message through your profile page.

From: %s <%s>
Subject: %s

%s

Reply directly to the sender's email address.`,
		data.CandidateName, data.SenderName, data.SenderEmail, data.Subject, data.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.To, data.SenderEmail, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.To}, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.To,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
