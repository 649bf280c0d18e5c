package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"tracker-grpc/internal/config"
	"tracker-grpc/internal/models"
)

// EventProducer publishes activity events consumed by the notifications
// service.
type EventProducer struct {
	producer    *producer
	eventsTopic string
}

func NewEventProducer(kafkaCfg *config.Kafka) *EventProducer {
	kafkaProducer := newProducer(kafkaCfg)
	return &EventProducer{
		producer:    kafkaProducer,
		eventsTopic: kafkaCfg.EventsTopic,
	}
}

func (e *EventProducer) SendEventEmail(ctx context.Context, message *models.EventMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal event message: %w", err)
	}

	err = e.producer.SendMessage(
		ctx,
		e.eventsTopic,
		[]byte(message.Email),
		jsonData,
	)
	if err != nil {
		return fmt.Errorf("failed to send event message: %w", err)
	}

	return nil
}

func (e *EventProducer) Close() {
	e.producer.Close()
}
