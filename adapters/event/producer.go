package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/predusk/profile-api/internal/config"
	"github.com/predusk/profile-api/pkg/logger"
)

const TopicProfileEvents = "profile.events"

// ChangeEvent announces a mutation of one entity row. Consumers rebuild
// search indexes or static renders from these.
type ChangeEvent struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewProducer builds the change-event producer. With no brokers configured
// the producer is disabled and Publish becomes a no-op.
func NewProducer(cfg config.Config, log logger.Logger) *Producer {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("Kafka disabled: no brokers configured")
		return &Producer{logger: log}
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Topic:                  TopicProfileEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialized Kafka producer", zap.Strings("brokers", cfg.Kafka.Brokers))
	return &Producer{writer: writer, logger: log}
}

func (p *Producer) Publish(ctx context.Context, entity, action string, id int64) error {
	if p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(ChangeEvent{
		Entity: entity,
		Action: action,
		ID:     id,
		At:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entity),
		Value: payload,
	})
}

func (p *Producer) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
}
