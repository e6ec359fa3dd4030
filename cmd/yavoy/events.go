package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/tui/theme"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List event categories",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	th := theme.Current()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(th.BgSurface2))).
		Headers("NAME", "EVENT", "KIND", "NOTES")

	for _, c := range delay.Categories() {
		kind := "formal"
		if c.IsInformal() {
			kind = "informal"
		}
		notes := ""
		if c.IsShopping() {
			notes = "shorter base, heavier spicy per-head rate"
		}
		t.Row(c.String(), fmt.Sprintf("%s %s", c.Emoji(), c.Label()), kind, notes)
	}

	_, err := lipgloss.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
