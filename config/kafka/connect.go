package kafka

import (
	"github.com/segmentio/kafka-go"

	"storefront/config"
)

// NewReader creates a consumer-group reader for the intake topic.
func NewReader(cfg config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(readerConfig(cfg))
}

func readerConfig(cfg config.KafkaConfig) kafka.ReaderConfig {
	return kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1e3,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	}
}

// NewWriter creates a producer for the intake topic.
func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}
