package main

import (
	"PhotoVault/config"
	"PhotoVault/internal/repo"
	"PhotoVault/internal/worker"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	config.InitConfig()
	repo.InitMysql()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("audit worker started")
	if err := worker.RunAuditWorker(ctx); err != nil {
		log.Fatalf("audit worker stopped: %v", err)
	}
}
