package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
)

// Enqueuer is the slice of asynq.Client the service needs.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// CandidateDirectory resolves slugs and contact addresses. Satisfied by
// the candidate repository.
type CandidateDirectory interface {
	FindResponsibleEmail(ctx context.Context, slug string) (name, email string, err error)
	FindSlugByUserID(ctx context.Context, userID int64) (string, error)
}

type ServiceInterface interface {
	// Submit stores the message and queues an email notification when the
	// candidate has a contact address. Queue failures never fail the
	// submission.
	Submit(ctx context.Context, req *model.SubmitRequest) error
	ListAll(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, error)
	// ListMine returns the messages addressed to the caller's own page.
	ListMine(ctx context.Context, userID int64, status string) ([]model.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
}

type contactService struct {
	repo          repository.RepositoryInterface
	candidateRepo CandidateDirectory
	queue         Enqueuer
}

func NewContactService(
	repo repository.RepositoryInterface,
	candidateRepo CandidateDirectory,
	queue Enqueuer,
) ServiceInterface {
	return &contactService{
		repo:          repo,
		candidateRepo: candidateRepo,
		queue:         queue,
	}
}

func (s *contactService) Submit(ctx context.Context, req *model.SubmitRequest) error {
	msg := &model.ContactMessage{
		CandidateSlug: req.SlugName,
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
	}

	id, err := s.repo.Insert(ctx, msg)
	if err != nil {
		return err
	}

	candidateName, candidateEmail, err := s.candidateRepo.FindResponsibleEmail(ctx, req.SlugName)
	if err != nil || candidateEmail == "" {
		// Message is stored either way; nothing to notify
		return nil
	}

	payload, err := json.Marshal(shared.ContactNotificationPayload{
		MessageID:     id,
		CandidateSlug: req.SlugName,
		To:            candidateEmail,
		CandidateName: candidateName,
		SenderName:    req.Name,
		SenderEmail:   req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeContactNotification, payload, asynq.MaxRetry(3))
	if _, err := s.queue.Enqueue(task); err != nil {
		// The submission already succeeded; losing the email is acceptable
		log.Error().Err(err).Int64("message_id", id).Msg("Failed to enqueue contact notification")
	}

	return nil
}

func (s *contactService) ListAll(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, error) {
	return s.repo.List(ctx, filter)
}

func (s *contactService) ListMine(ctx context.Context, userID int64, status string) ([]model.ContactMessage, error) {
	slug, err := s.candidateRepo.FindSlugByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, model.ListFilter{Status: status, Slug: slug})
}

func (s *contactService) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}
