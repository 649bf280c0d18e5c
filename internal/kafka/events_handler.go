package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tracker-grpc/internal/email"
	"tracker-grpc/internal/models"
)

type EventsHandler struct {
	emailService *email.EmailSenderService
	log          *slog.Logger
}

func NewEventsHandler(emailService *email.EmailSenderService, log *slog.Logger) *EventsHandler {
	return &EventsHandler{emailService: emailService, log: log}
}

func (h *EventsHandler) HandleMessage(ctx context.Context, message []byte) error {
	var eventMsg models.EventMessage
	if err := json.Unmarshal(message, &eventMsg); err != nil {
		return fmt.Errorf("unmarshal event message: %w", err)
	}

	h.log.Info("received event message", "email", eventMsg.Email, "event-type", eventMsg.Type)
	return h.emailService.SendEventEmail(eventMsg)
}
