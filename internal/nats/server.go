package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Bus is an embedded, in-process NATS server with JetStream file storage
// plus the connection and share stream opened on it.
type Bus struct {
	server *server.Server
	conn   *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream
}

// Open starts the embedded server under dataDir, connects to it in-process and
// makes sure the share stream exists.
func Open(ctx context.Context, dataDir string) (*Bus, error) {
	ns, err := startEmbedded(dataDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("Connecting to NATS server in-process")
	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	stream, err := SetupStream(ctx, js)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("setting up share stream: %w", err)
	}

	return &Bus{server: ns, conn: nc, js: js, stream: stream}, nil
}

func startEmbedded(dataDir string) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server with data dir: %s", dataDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true, // In-process only, no network ports
		NoSigs:     true,
	})
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, fmt.Errorf("creating NATS server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		ns.Shutdown()
		logger.Error("NATS server failed to start within 4s timeout")
		return nil, errors.New("nats server failed to start within timeout")
	}
	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// JetStream returns the JetStream context.
func (b *Bus) JetStream() jetstream.JetStream { return b.js }

// Stream returns the share stream.
func (b *Bus) Stream() jetstream.Stream { return b.stream }

// Close drains the connection and shuts the server down, bounded by timeouts
// so a stuck drain never hangs the CLI.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}

	if b.conn != nil {
		drainDone := make(chan error, 1)
		go func() { drainDone <- b.conn.Drain() }()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				b.conn.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			b.conn.Close()
		}
	}

	if b.server == nil {
		return nil
	}
	b.server.Shutdown()

	done := make(chan struct{})
	go func() {
		b.server.WaitForShutdown()
		close(done)
	}()

	select {
	case <-done:
		logger.Debug("NATS server shut down cleanly")
		return nil
	case <-time.After(5 * time.Second):
		logger.Error("NATS server shutdown timed out after 5s")
		return errors.New("NATS server shutdown timed out")
	}
}
