package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/email"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
)

// NotificationHandler delivers the contact-form email for one queued
// message.
type NotificationHandler struct {
	emailService email.EmailService
}

func NewNotificationHandler(emailService email.EmailService) *NotificationHandler {
	return &NotificationHandler{
		emailService: emailService,
	}
}

func (h *NotificationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ContactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal contact notification payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int64("message_id", payload.MessageID).
		Str("candidate_slug", payload.CandidateSlug).
		Msg("Sending contact notification")

	return h.emailService.SendContactNotification(ctx, email.ContactNotificationData{
		To:            payload.To,
		CandidateName: payload.CandidateName,
		SenderName:    payload.SenderName,
		SenderEmail:   payload.SenderEmail,
		Subject:       payload.Subject,
		Message:       payload.Message,
	})
}
