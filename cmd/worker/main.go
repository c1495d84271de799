package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Melodious-nub/bnp-digital-backend/internal/config"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Worker] Failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	srv := setupAsynqServer(cfg)

	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	srv.Shutdown()
	log.Println("[Shutdown] Stopped")
}
