package main

import (
	"bytes"
	"fmt"

	"github.com/mark3labs/yavoy/internal/share"
	tuiwizard "github.com/mark3labs/yavoy/internal/tui/wizard"
	"github.com/mark3labs/yavoy/internal/wizard"
	"github.com/spf13/cobra"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive calculator (default command)",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	m, flushMetrics := openMetrics(cfg)
	defer flushMetrics()

	// The TUI owns the terminal; stdout shares are printed once it exits.
	var pending bytes.Buffer
	gw, closeGateway, err := share.Open(ctx, cfg, &pending, m)
	if err != nil {
		return err
	}
	defer func() { _ = closeGateway() }()

	ctrl := wizard.New(
		wizard.WithFamily(cfg.SelectedFamily()),
		wizard.WithObserver(m),
	)

	res, err := tuiwizard.RunWizard(ctx, ctrl, gw, timeFormatter(cfg))
	if pending.Len() > 0 {
		fmt.Fprint(cmd.OutOrStdout(), pending.String())
	}
	if err != nil {
		return err
	}

	if res.Finalized && res.Shares == 0 && pending.Len() == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Colombian time: %s (%d minutes late)\n",
			timeFormatter(cfg).Format(res.Result.ArrivalTime), res.Result.DelayMinutes)
	}
	return nil
}
