package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront/internal/order"
)

// Start consumes until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.l.Infof(ctx, "order.delivery.kafka.Start: consuming")
	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.l.Errorf(ctx, "order.delivery.kafka.FetchMessage: %v", err)
			if !c.sleep(ctx) {
				return nil
			}
			continue
		}

		// The group tracks one offset per partition, so a message that failed
		// on the store is retried here instead of fetching past it.
		for !c.handle(ctx, m) {
			if !c.sleep(ctx) {
				return nil
			}
		}
		if err := c.r.CommitMessages(ctx, m); err != nil {
			c.l.Errorf(ctx, "order.delivery.kafka.CommitMessages: offset=%d: %v", m.Offset, err)
		}
	}
}

// handle processes one message and reports whether its offset may be committed.
// Malformed payloads and business rejections are final; store failures are not.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) bool {
	var msg createMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		c.l.Warnf(ctx, "order.delivery.kafka.handle: invalid message at offset %d: %v", m.Offset, err)
		return true
	}

	out, err := c.uc.Create(ctx, msg.toInput())
	switch {
	case err == nil:
		c.l.Infof(ctx, "order.delivery.kafka.handle: offset=%d order_id=%d", m.Offset, out.Order.ID)
		return true
	case errors.Is(err, order.ErrInvalidPayload),
		errors.Is(err, order.ErrDuplicateKey),
		errors.Is(err, order.ErrInvalidReference):
		c.l.Warnf(ctx, "order.delivery.kafka.handle: rejected offset=%d: %v", m.Offset, err)
		return true
	default:
		c.l.Errorf(ctx, "order.delivery.kafka.handle: offset=%d: %v", m.Offset, err)
		return false
	}
}

func (c *Consumer) sleep(ctx context.Context) bool {
	t := time.NewTimer(c.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
