package main

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Melodious-nub/bnp-digital-backend/internal/config"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/job"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/email"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
)

// asynqServer wraps asynq.Server with shutdown handling
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer creates the server, registers task handlers and starts
// processing.
func setupAsynqServer(cfg *config.Config) *asynqServer {
	emailService := email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	notificationHandler := job.NewNotificationHandler(emailService)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeContactNotification, notificationHandler.ProcessTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				"default": 10,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks, capped at 30s.
func (s *asynqServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("[Worker] Shutting down (waiting max 30s)...")
	s.Server.Shutdown()

	if ctx.Err() == context.DeadlineExceeded {
		log.Println("[Worker] Shutdown timeout exceeded")
	}
}
