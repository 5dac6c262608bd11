package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront/internal/order"
	"storefront/pkg/log"
)

const retryBackoff = 500 * time.Millisecond

// Reader is the subset of *kafka.Reader the consumer needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Consumer feeds order intake messages into the order use case.
type Consumer struct {
	r       Reader
	uc      order.UseCase
	l       log.Logger
	backoff time.Duration
}

// New creates an intake consumer over r.
func New(r Reader, uc order.UseCase, l log.Logger) *Consumer {
	return &Consumer{
		r:       r,
		uc:      uc,
		l:       l,
		backoff: retryBackoff,
	}
}
