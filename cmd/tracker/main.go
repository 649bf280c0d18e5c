package main

import (
	"log/slog"

	"tracker-grpc/internal/app"
	"tracker-grpc/internal/config"
	"tracker-grpc/pkg/logging"
)

func main() {
	cfg := config.MustLoadConfig()
	log := logging.SetupLogger(slog.LevelDebug)

	srv := app.NewServer(cfg, log)
	defer srv.Close()

	log.Info("starting server", "address", cfg.TrackerAddress)
	if err := srv.Run(); err != nil {
		log.Error("server run error", logging.Err(err))
		return
	}
}
