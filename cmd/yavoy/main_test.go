package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/yavoy/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no config or YAVOY_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmpDir))

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, name := range []string{"YAVOY_FAMILY", "YAVOY_SHARE_TARGET", "YAVOY_SHARE_DIR", "YAVOY_DATA_DIR", "YAVOY_TIME_LAYOUT", "YAVOY_METRICS_FILE"} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	rootFlags.shareTarget = ""
	rootFlags.family = ""
	return tmpDir
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunCalc_PrintsResult(t *testing.T) {
	isolate(t)
	calcFlags.time = "2025-07-06T19:00:00Z"
	calcFlags.event = "wedding"
	calcFlags.total = 6
	calcFlags.colombians = 2
	calcFlags.spicy = true
	calcFlags.share = false

	cmd, out := testCommand()
	require.NoError(t, runCalc(cmd, nil))

	assert.Contains(t, out.String(), "Event:          💒 Wedding")
	assert.Contains(t, out.String(), "Colombian time: Jul 6, 2025 at 8:35 PM")
	assert.Contains(t, out.String(), "Delay:          95 minutes")
	assert.NotContains(t, out.String(), "Note:")
}

func TestRunCalc_SharesToStdoutAndNotesDiscrepancy(t *testing.T) {
	isolate(t)
	calcFlags.time = "2025-07-06T13:00:00Z"
	calcFlags.event = "meal"
	calcFlags.total = 2
	calcFlags.colombians = 5
	calcFlags.spicy = true
	calcFlags.share = true

	cmd, out := testCommand()
	require.NoError(t, runCalc(cmd, nil))

	assert.Contains(t, out.String(), "People:         2 total, 2 Colombian")
	assert.Contains(t, out.String(), "breakdown adds up to 60 minutes; 55 are charged")
	assert.Contains(t, out.String(), "🇨🇴 Colombian Time Calculator Results! 🇨🇴")
	assert.Contains(t, out.String(), "¡Ya voy, ya voy...! 😅")
}

func TestRunCalc_FileShare(t *testing.T) {
	dir := isolate(t)
	rootFlags.shareTarget = config.ShareFile
	calcFlags.time = "19:00"
	calcFlags.event = "court"
	calcFlags.total = 1
	calcFlags.colombians = 1
	calcFlags.spicy = false
	calcFlags.share = true

	cmd, out := testCommand()
	require.NoError(t, runCalc(cmd, nil))
	assert.Contains(t, out.String(), "Shared via file")

	files, err := filepath.Glob(filepath.Join(dir, "shares", "court-*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestRunCalc_Errors(t *testing.T) {
	isolate(t)
	calcFlags.time = ""
	calcFlags.event = "funeral"
	calcFlags.share = false

	cmd, _ := testCommand()
	require.Error(t, runCalc(cmd, nil))

	calcFlags.event = "meal"
	calcFlags.time = "whenever"
	require.Error(t, runCalc(cmd, nil))

	calcFlags.time = ""
	rootFlags.family = "jewish"
	require.Error(t, runCalc(cmd, nil))
}

func TestRunEvents(t *testing.T) {
	cmd, out := testCommand()
	require.NoError(t, runEvents(cmd, nil))

	assert.Contains(t, out.String(), "shopping")
	assert.Contains(t, out.String(), "Beach Vacation")
	assert.Contains(t, out.String(), "formal")
}

func TestRunSetup(t *testing.T) {
	isolate(t)
	setupFlags.project = true
	setupFlags.force = false
	t.Cleanup(func() { setupFlags.project = false })

	cmd, out := testCommand()
	require.NoError(t, runSetup(cmd, nil))
	assert.Contains(t, out.String(), "Config written to: yavoy.yml")
	assert.FileExists(t, config.ProjectPath())

	require.Error(t, runSetup(cmd, nil), "existing config needs --force")

	setupFlags.force = true
	t.Cleanup(func() { setupFlags.force = false })
	require.NoError(t, runSetup(cmd, nil))
}

func TestRunShares_Empty(t *testing.T) {
	isolate(t)
	sharesFlags.limit = 5

	cmd, out := testCommand()
	require.NoError(t, runShares(cmd, nil))
	assert.Contains(t, out.String(), "No shares yet")
}

func TestRunCalc_WritesMetricsFileWhenConfigured(t *testing.T) {
	dir := isolate(t)
	calcFlags.time = "2025-07-06T19:00:00Z"
	calcFlags.event = "wedding"
	calcFlags.total = 6
	calcFlags.colombians = 2
	calcFlags.spicy = true
	calcFlags.share = false

	cmd, _ := testCommand()
	require.NoError(t, runCalc(cmd, nil))
	_, err := os.Stat(filepath.Join(dir, "yavoy.prom"))
	require.True(t, os.IsNotExist(err), "no metrics file without metrics_file")

	path := filepath.Join(dir, "yavoy.prom")
	t.Setenv("YAVOY_METRICS_FILE", path)
	cmd, _ = testCommand()
	require.NoError(t, runCalc(cmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `yavoy_calculations_total{event="wedding",family="colombian"} 1`)
	assert.Contains(t, string(data), "yavoy_delay_minutes_count 1")
}
