package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding shared results.
	StreamName = "yavoy_shares"

	subjectPrefix = "yavoy.shares"
)

// SubjectForShare returns the subject a share for the given event category is published on.
// Example: "yavoy.shares.wedding"
func SubjectForShare(category string) string {
	return fmt.Sprintf("%s.%s", subjectPrefix, category)
}

// SetupStream creates or updates the share stream with 30-day retention.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   30 * 24 * time.Hour,
	})
}

// LastMessages returns up to limit most recent messages from stream, oldest first.
func LastMessages(ctx context.Context, stream jetstream.Stream, limit int) ([]*jetstream.RawStreamMsg, error) {
	if limit <= 0 {
		return nil, nil
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stream info: %w", err)
	}
	if info.State.Msgs == 0 {
		return nil, nil
	}

	first := info.State.FirstSeq
	last := info.State.LastSeq
	if last-first+1 > uint64(limit) {
		first = last - uint64(limit) + 1
	}

	msgs := make([]*jetstream.RawStreamMsg, 0, last-first+1)
	for seq := first; seq <= last; seq++ {
		msg, err := stream.GetMsg(ctx, seq)
		if errors.Is(err, jetstream.ErrMsgNotFound) {
			continue // Deleted or expired
		}
		if err != nil {
			return nil, fmt.Errorf("reading message %d: %w", seq, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
