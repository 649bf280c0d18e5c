package main

import (
	"log/slog"

	"tracker-grpc/internal/config"
	"tracker-grpc/internal/gateway"
	"tracker-grpc/pkg/logging"
)

func main() {
	cfg := config.MustLoadConfig()
	log := logging.SetupLogger(slog.LevelDebug)

	srv := gateway.NewServer(cfg, log)

	if err := srv.Run(); err != nil {
		log.Error("gateway run error", logging.Err(err))
		return
	}
}
