package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tracker-grpc/internal/config"
	"tracker-grpc/internal/notifications"
	"tracker-grpc/pkg/logging"
)

func main() {
	cfg := config.MustLoadConfig()
	log := logging.SetupLogger(slog.LevelDebug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := notifications.NewServer(cfg, log)

	log.Info("starting notifications")
	if err := srv.Run(ctx); err != nil {
		log.Error("server run error", logging.Err(err))
		return
	}
}
