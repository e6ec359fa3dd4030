// Package mcpserver exposes the delay calculator as MCP tools over streamable HTTP,
// with Prometheus metrics served from the same listener.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/metrics"
)

// Server is an embedded MCP HTTP server for the calculator tools.
type Server struct {
	family  delay.Family
	metrics *metrics.Manager
	now     func() time.Time

	mcpServer *server.MCPServer
	stdServer *http.Server
	addr      string
	mu        sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records calculations on m and serves it at /metrics.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) { s.metrics = m }
}

// WithClock overrides the clock used when a request omits the event time.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a server computing delays for family.
// The server is not started until Start() is called.
func New(family delay.Family, opts ...Option) *Server {
	s := &Server{family: family, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer(
		"yavoy",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// Start listens on addr ("127.0.0.1:0" picks a free port) and serves in the background.
// Returns the bound address.
func (s *Server) Start(ctx context.Context, addr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return "", fmt.Errorf("server already started")
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.addr = listener.Addr().String()

	// Stateless mode; pass the listener directly to avoid a TOCTOU race on the port.
	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	s.stdServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting MCP server on %s", s.addr)

	// Capture stdServer for the goroutine to avoid racing Stop()
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	return s.addr, nil
}

// Stop shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil // Already stopped
	}

	logger.Debug("Stopping MCP server")
	if err := s.stdServer.Shutdown(ctx); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.stdServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP URL of the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://%s/mcp", s.addr)
}
