package main

import (
	"fmt"
	"path/filepath"

	"github.com/mark3labs/yavoy/internal/nats"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/spf13/cobra"
)

var sharesFlags struct {
	limit int
}

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "List results shared to the NATS outbox",
	Long: `List the most recent results shared with share_target=nats.
Shares are kept for 30 days under the data directory.`,
	Args: cobra.NoArgs,
	RunE: runShares,
}

func init() {
	sharesCmd.Flags().IntVarP(&sharesFlags.limit, "limit", "l", 10, "Maximum number of shares to show")
}

func runShares(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sharesFlags.limit < 1 {
		return fmt.Errorf("limit must be >= 1")
	}

	ctx := cmd.Context()
	bus, err := nats.Open(ctx, filepath.Join(cfg.DataDir, "nats"))
	if err != nil {
		return fmt.Errorf("failed to open share outbox: %w", err)
	}
	defer func() { _ = bus.Close() }()

	shares, err := share.ListShared(ctx, bus.Stream(), sharesFlags.limit)
	if err != nil {
		return fmt.Errorf("failed to list shares: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(shares) == 0 {
		fmt.Fprintln(out, "No shares yet. Use --share-target nats to record some.")
		return nil
	}

	tf := timeFormatter(cfg)
	for _, c := range shares {
		spicy := ""
		if c.Spicy {
			spicy = " 🌶️"
		}
		fmt.Fprintf(out, "%s  %-16s %s → %s  (+%d min)%s\n",
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
			c.EventLabel,
			tf.Format(c.RequestedAt),
			tf.Format(c.ArrivalTime),
			c.DelayMinutes,
			spicy,
		)
	}
	return nil
}
