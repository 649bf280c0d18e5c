package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker-grpc/internal/config"
	"tracker-grpc/pkg/logging"

	"github.com/segmentio/kafka-go"
)

type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) error
}

// Consumer runs one reader goroutine per topic and retries each message a
// few times before giving up on it.
type Consumer struct {
	readers  map[string]*kafka.Reader
	handlers map[string]MessageHandler
	config   config.Kafka
	wg       sync.WaitGroup
	log      *slog.Logger
}

func NewConsumer(config config.Kafka, handlers map[string]MessageHandler, log *slog.Logger) *Consumer {
	return &Consumer{
		readers:  make(map[string]*kafka.Reader),
		handlers: handlers,
		config:   config,
		log:      log,
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("starting kafka consumers")

	for topic, handler := range c.handlers {
		c.log.Debug("creating reader for topic", "topic", topic)
		reader := c.createReader(topic)
		c.readers[topic] = reader

		c.wg.Add(1)
		go c.consumeTopic(ctx, topic, reader, handler)
	}

	c.log.Info("kafka consumers started")
	return nil
}

func (c *Consumer) createReader(topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.config.Brokers,
		GroupID:     c.config.GroupId,
		Topic:       topic,
		MaxAttempts: 3,
		MaxWait:     10 * time.Second,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			c.log.Debug("[KAFKA] "+msg, args...)
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			c.log.Error("[KAFKA-ERROR] "+msg, args...)
		}),
	})
}

func (c *Consumer) consumeTopic(ctx context.Context, topic string, reader *kafka.Reader, handler MessageHandler) {
	defer c.wg.Done()

	c.log.Info("starting consumer for topic", "topic", topic)
	for {
		select {
		case <-ctx.Done():
			c.log.Info("stopping consumer for topic", "topic", topic)
			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				c.log.Error("error reading message from kafka",
					"topic", topic,
					logging.Err(err))
				continue
			}

			c.handleMessageWithRetry(ctx, topic, msg, handler)
		}
	}
}

func (c *Consumer) handleMessageWithRetry(ctx context.Context, topic string, msg kafka.Message, handler MessageHandler) {
	const maxRetries = 3
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := handler.HandleMessage(ctx, msg.Value); err != nil {
			lastErr = err
			c.log.Warn("failed to process message, retrying",
				"topic", topic,
				"attempt", attempt,
				"maxRetries", maxRetries,
				logging.Err(err))

			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * time.Second)
			}
			continue
		}

		c.log.Info("successfully processed message",
			"topic", topic,
			"partition", msg.Partition,
			"offset", msg.Offset)
		return
	}

	c.log.Error("failed to process message after all retries",
		"topic", topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
		logging.Err(lastErr))
}

func (c *Consumer) Stop() error {
	c.log.Info("stopping kafka consumers")

	var lastErr error
	for topic, reader := range c.readers {
		if err := reader.Close(); err != nil {
			c.log.Error("error closing kafka reader",
				"topic", topic,
				"error", err)
			lastErr = err
		}
	}

	c.wg.Wait()

	c.log.Info("kafka consumers stopped")
	return lastErr
}
