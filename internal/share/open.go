package share

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mark3labs/yavoy/internal/config"
	"github.com/mark3labs/yavoy/internal/nats"
)

// Open returns the gateway selected by cfg.ShareTarget, wrapped with rec.
// The returned close function releases anything the gateway holds and is never nil.
func Open(ctx context.Context, cfg *config.Config, out io.Writer, rec Recorder) (Gateway, func() error, error) {
	noop := func() error { return nil }

	var g Gateway
	closer := noop
	switch cfg.ShareTarget {
	case config.ShareStdout, "":
		g = NewWriterGateway(out)
	case config.ShareClipboard:
		g = NewClipboardGateway()
	case config.ShareFile:
		g = &FileGateway{Dir: cfg.ShareDir}
	case config.ShareNATS:
		bus, err := nats.Open(ctx, filepath.Join(cfg.DataDir, "nats"))
		if err != nil {
			return nil, noop, fmt.Errorf("opening share stream: %w", err)
		}
		g = NewNATSGateway(bus.JetStream())
		closer = bus.Close
	default:
		return nil, noop, fmt.Errorf("unknown share target %q", cfg.ShareTarget)
	}

	return Instrument(g, rec), closer, nil
}
