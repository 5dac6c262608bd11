package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"storefront/internal/order"
)

// Writer is the subset of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher enqueues order intake messages for the Consumer.
type Publisher struct {
	w Writer
}

// NewPublisher creates a publisher over w.
func NewPublisher(w Writer) *Publisher {
	return &Publisher{w: w}
}

// Publish enqueues one create request. Messages are keyed by user so a user's
// orders land on one partition.
func (p *Publisher) Publish(ctx context.Context, in order.CreateInput) error {
	value, err := json.Marshal(createMessage{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(in.UserID, 10)),
		Value: value,
	})
}
