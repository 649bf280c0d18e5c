package notifications

import (
	"context"
	"log/slog"

	"tracker-grpc/internal/config"
	"tracker-grpc/internal/email"
	"tracker-grpc/internal/kafka"
)

type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	consumer *kafka.Consumer
}

func NewServer(cfg *config.Config, log *slog.Logger) *Server {
	emailService := email.NewEmailSender(&cfg.SMTP, log)

	handlers := map[string]kafka.MessageHandler{
		cfg.Kafka.EventsTopic: kafka.NewEventsHandler(emailService, log),
	}

	consumer := kafka.NewConsumer(cfg.Kafka, handlers, log)
	return &Server{cfg: cfg, log: log, consumer: consumer}
}

func (s *Server) Run(ctx context.Context) error {
	if err := s.consumer.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	s.log.Info("shutting down, stopping consumer")
	return s.consumer.Stop()
}
