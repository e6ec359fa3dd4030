package share

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSGateway publishes shares as JSON onto the JetStream share stream.
type NATSGateway struct {
	js jetstream.JetStream
}

// NewNATSGateway returns a gateway publishing through js.
func NewNATSGateway(js jetstream.JetStream) *NATSGateway {
	return &NATSGateway{js: js}
}

func (g *NATSGateway) Name() string { return "nats" }

// Share implements Gateway.
func (g *NATSGateway) Share(ctx context.Context, c Content) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding share: %w", err)
	}
	subject := nats.SubjectForShare(c.Event)
	ack, err := g.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("publishing share: %w", err)
	}
	logger.Debug("Published share %s to %s (seq %d)", c.ID, subject, ack.Sequence)
	return nil
}

// ListShared returns up to limit of the most recent shares in stream, oldest first.
// Messages that do not decode are skipped.
func ListShared(ctx context.Context, stream jetstream.Stream, limit int) ([]Content, error) {
	msgs, err := nats.LastMessages(ctx, stream, limit)
	if err != nil {
		return nil, err
	}

	shares := make([]Content, 0, len(msgs))
	for _, msg := range msgs {
		var c Content
		if err := json.Unmarshal(msg.Data, &c); err != nil {
			logger.Warn("Skipping undecodable share at seq %d: %v", msg.Sequence, err)
			continue
		}
		shares = append(shares, c)
	}
	return shares, nil
}
