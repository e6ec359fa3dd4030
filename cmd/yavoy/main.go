package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█ █ ▄▀█ █ █ █▀█ █ █"
	logoText2 = " █  █▀█ ▀▄▀ █▄█  █ "
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootFlags struct {
	shareTarget string
	family      string
}

var rootCmd = &cobra.Command{
	Use:   "yavoy",
	Short: "Colombian time calculator: when will they really show up?",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Tertiary)
	line2 := theme.ApplyGradient(logoText2, t.Secondary, t.Tertiary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

yavoy estimates how late a group will arrive once Colombians are involved.
Answer a few questions about the event and get the real arrival time,
a breakdown of the delay and a message ready to share.

"¡Ya voy!" means "I'm on my way!". It rarely does.`

	rootCmd.PersistentFlags().StringVar(&rootFlags.shareTarget, "share-target", "", "Where shared results go: stdout, clipboard, file or nats")
	rootCmd.PersistentFlags().StringVar(&rootFlags.family, "family", "", "Cultural family to calculate for")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sharesCmd)
	rootCmd.AddCommand(setupCmd)
}
