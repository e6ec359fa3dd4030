package main

import (
	"fmt"

	"github.com/mark3labs/yavoy/internal/config"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/metrics"
	"github.com/mark3labs/yavoy/internal/share"
)

// loadConfig loads configuration, applies flag overrides and configures logging.
// Precedence: CLI flags > ENV vars > project config > global config > defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if rootFlags.shareTarget != "" {
		cfg.ShareTarget = rootFlags.shareTarget
	}
	if rootFlags.family != "" {
		cfg.Family = rootFlags.family
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	logger.Debug("Config loaded: family=%s share_target=%s data_dir=%s", cfg.Family, cfg.ShareTarget, cfg.DataDir)
	return cfg, nil
}

func timeFormatter(cfg *config.Config) share.LayoutFormatter {
	return share.LayoutFormatter{Layout: cfg.TimeLayout}
}

// openMetrics returns a manager when metrics_file is set, nil otherwise.
// The returned flush writes the textfile and is always safe to call.
func openMetrics(cfg *config.Config) (*metrics.Manager, func()) {
	if cfg.MetricsFile == "" {
		return nil, func() {}
	}
	m := metrics.NewManager()
	return m, func() {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics: %v", err)
		}
	}
}
