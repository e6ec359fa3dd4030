package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/spf13/cobra"
)

var calcFlags struct {
	time       string
	event      string
	total      int
	colombians int
	spicy      bool
	share      bool
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a delay without the interactive wizard",
	Long: `Compute the Colombian arrival time for one event.

Participant counts are clamped to the valid range: total to 1-20 and
Colombians to 0-total.`,
	Example: `  yavoy calc --event wedding --total 6 --colombians 2 --spicy
  yavoy calc --time 19:30 --event meal --colombians 3 --total 4 --share`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcFlags.time, "time", "t", "", "Event time, RFC 3339 or time of day like 19:30 (default: now)")
	calcCmd.Flags().StringVarP(&calcFlags.event, "event", "e", "meal", "Event category (see 'yavoy events')")
	calcCmd.Flags().IntVarP(&calcFlags.total, "total", "n", delay.MinParticipants, "Total participants")
	calcCmd.Flags().IntVarP(&calcFlags.colombians, "colombians", "c", 0, "Colombian participants")
	calcCmd.Flags().BoolVar(&calcFlags.spicy, "spicy", false, "Include the spicy Colombian women factor")
	calcCmd.Flags().BoolVar(&calcFlags.share, "share", false, "Send the summary through the configured share target")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	family := cfg.SelectedFamily()
	calc, ok := family.Calculator()
	if !ok {
		return fmt.Errorf("%w: %s", delay.ErrFamilyLocked, family.Label())
	}

	cat, err := delay.ParseCategory(calcFlags.event)
	if err != nil {
		return err
	}
	requested, err := delay.ParseRequestedTime(calcFlags.time, time.Now())
	if err != nil {
		return err
	}

	in := delay.NewInput(requested)
	in.SetCategory(cat)
	in.SetTotalParticipants(calcFlags.total)
	in.SetColombianParticipants(calcFlags.colombians)
	in.SetSpicy(calcFlags.spicy)

	m, flushMetrics := openMetrics(cfg)
	defer flushMetrics()
	res := delay.Compute(calc, in)
	m.RecordCalculation(family, in, res)

	tf := timeFormatter(cfg)
	printResult(cmd.OutOrStdout(), in, res, tf)

	if !calcFlags.share {
		return nil
	}

	ctx := cmd.Context()
	gw, closeGateway, err := share.Open(ctx, cfg, cmd.OutOrStdout(), m)
	if err != nil {
		return err
	}
	defer func() { _ = closeGateway() }()

	fmt.Fprintln(cmd.OutOrStdout())
	if err := gw.Share(ctx, share.NewContent(in, res, tf)); err != nil {
		return fmt.Errorf("share failed: %w", err)
	}
	if gw.Name() != "stdout" {
		fmt.Fprintf(cmd.OutOrStdout(), "Shared via %s\n", gw.Name())
	}
	return nil
}

func printResult(w io.Writer, in *delay.Input, res delay.Result, tf share.TimeFormatter) {
	cat := in.Category()
	fmt.Fprintf(w, "Event:          %s %s\n", cat.Emoji(), cat.Label())
	fmt.Fprintf(w, "People:         %d total, %d Colombian\n", in.TotalParticipants(), in.ColombianParticipants())
	fmt.Fprintf(w, "Original time:  %s\n", tf.Format(res.RequestedAt))
	fmt.Fprintf(w, "Colombian time: %s\n", tf.Format(res.ArrivalTime))
	fmt.Fprintf(w, "Delay:          %d minutes\n", res.DelayMinutes)
	fmt.Fprintf(w, "Breakdown:      %s\n", res.Breakdown.Text)
	if res.Breakdown.Discrepancy() {
		fmt.Fprintf(w, "Note:           breakdown adds up to %d minutes; %d are charged\n",
			res.Breakdown.StatedMinutes, res.DelayMinutes)
	}
}
