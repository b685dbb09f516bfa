package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Handler processes one event. A returned error is logged; delivery is
// at most once on the in-memory transport.
type Handler func(ctx context.Context, evt Envelope) error

// Bus wraps watermill's GoChannel pub/sub.
type Bus struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
}

const metaKeyTopic = "topic"

// NewBus initializes the in-memory pub/sub. Subscribers must be registered
// before the first publish; GoChannel drops messages on topics nobody
// listens to.
func NewBus() *Bus {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &Bus{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

// Publish marshals the payload and hands it to the transport.
func (b *Bus) Publish(_ context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	wmMsg := message.NewMessage(watermill.NewUUID(), data)
	wmMsg.Metadata.Set(metaKeyTopic, topic)

	return b.pub.Publish(topic, wmMsg)
}

// Subscribe runs the handler for every message on the topic. Subscribe is
// non-blocking; the message loop runs until the bus closes.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	go func() {
		for wmMsg := range messages {
			evt := Envelope{
				Topic:    topic,
				Payload:  wmMsg.Payload,
				Metadata: map[string]string(wmMsg.Metadata),
			}

			if err := handler(ctx, evt); err != nil {
				slog.Error("event handler failed", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			// Always ack: the in-memory channel would otherwise redeliver a
			// permanently failing message forever.
			wmMsg.Ack()
		}
		slog.Debug("subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the transport and ends all subscription loops.
func (b *Bus) Close() error {
	return b.sub.Close()
}
