package stream

import (
	"context"
	"encoding/json"
	"log/slog"

	"geotrack/internal/config"
	"geotrack/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher fans geofence events out to the analytics topic, keyed by
// entity so one entity's events stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []domain.GeofenceEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for i := range events {
		value, err := json.Marshal(&events[i])
		if err != nil {
			p.logger.Error("marshal event failed", slog.Any("error", err))
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(events[i].EntityID.String()),
			Value: value,
		})
	}
	if len(msgs) == 0 {
		return nil
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
