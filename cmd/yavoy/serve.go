package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/mcpserver"
	"github.com/mark3labs/yavoy/internal/metrics"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator as MCP tools over HTTP",
	Long: `Start a streamable HTTP MCP server exposing the compute-delay and
list-events tools at /mcp, with Prometheus metrics at /metrics.

Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "Listen address (default: serve_addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := cfg.ServeAddr
	if serveFlags.addr != "" {
		addr = serveFlags.addr
	}

	family := cfg.SelectedFamily()
	if !family.Available() {
		return fmt.Errorf("%w: %s", delay.ErrFamilyLocked, family.Label())
	}

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewManager()
	defer func() {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics: %v", err)
		}
	}()

	srv := mcpserver.New(family, mcpserver.WithMetrics(m))
	bound, err := srv.Start(ctx, addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening at %s\n", srv.URL())
	fmt.Fprintf(cmd.OutOrStdout(), "Metrics at http://%s/metrics\n", bound)

	<-ctx.Done()
	fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down gracefully...")
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
