package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/config"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

type KafkaProducerClient struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.", zap.String("topic", TopicPortfolioEvents))
	return &KafkaProducerClient{writer: writer, logger: log}, nil
}

// PublishMutation delivers the event best-effort. A broker failure is
// logged and never surfaced to the originating request.
func (c *KafkaProducerClient) PublishMutation(ctx context.Context, event service.MutationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to marshal mutation event", err, zap.String("entity", event.Entity))
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OwnerID.String()),
		Value: payload,
	}
	if err := c.writer.WriteMessages(ctx, msg); err != nil {
		c.logger.Warn("Failed to publish mutation event",
			zap.String("entity", event.Entity),
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}

func (c *KafkaProducerClient) Close() {
	if c.writer != nil {
		c.writer.Close()
	}
}
