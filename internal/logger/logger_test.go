package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietEnv clears both logger variables for the test.
func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFile, "")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
	assert.Equal(t, "UNKNOWN", Level(-1).String())
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	quietEnv(t)
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("share %s", "queued")
	l.Info("calculated %d minutes", 95)
	l.Warn("share via %s failed", "clipboard")
	l.Error("nats %s", "down")

	out := buf.String()
	assert.NotContains(t, out, "queued")
	assert.NotContains(t, out, "95 minutes")
	assert.Contains(t, out, "[WARN] share via clipboard failed")
	assert.Contains(t, out, "[ERROR] nats down")
}

func TestNew_DiscardsWithoutFile(t *testing.T) {
	quietEnv(t)
	l := New()

	assert.Equal(t, LevelInfo, l.level)
	assert.Nil(t, l.file)
	assert.NoError(t, l.Close())
}

func TestNew_ReadsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yavoy.log")
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFile, path)

	l := New()
	defer l.Close()
	l.Debug("wizard at step %d", 3)

	assert.Equal(t, LevelDebug, l.level)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[DEBUG] wizard at step 3")
}

func TestNew_BadLevelStillOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yavoy.log")
	t.Setenv(EnvLevel, "loud")
	t.Setenv(EnvFile, path)

	l := New()
	defer l.Close()
	l.Info("hello")

	assert.Equal(t, LevelInfo, l.level)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] hello")
}

func TestLogger_Configure(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	l := New()
	defer l.Close()

	require.NoError(t, l.Configure("warn", first))
	l.Info("quiet")
	l.Warn("to first")

	require.NoError(t, l.Configure("", second))
	l.Warn("to second")
	assert.Equal(t, LevelWarn, l.level, "empty level keeps the current one")

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.NotContains(t, string(a), "quiet")
	assert.Contains(t, string(a), "to first")
	assert.NotContains(t, string(a), "to second")
	assert.Contains(t, string(b), "to second")
}

func TestLogger_ConfigureErrors(t *testing.T) {
	quietEnv(t)
	l := New()

	require.Error(t, l.Configure("verbose", ""))
	assert.Equal(t, LevelInfo, l.level)

	err := l.Configure("", filepath.Join(t.TempDir(), "missing", "yavoy.log"))
	require.ErrorContains(t, err, "opening log file")
}

func TestLogger_CloseDiscardsAfterwards(t *testing.T) {
	quietEnv(t)
	path := filepath.Join(t.TempDir(), "yavoy.log")
	l := New()
	require.NoError(t, l.Configure("", path))

	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")
	l.Error("after close")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "after close")
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)
	t.Cleanup(func() {
		Default.SetLevel(LevelInfo)
		Default.SetOutput(io.Discard)
	})

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	for _, want := range []string{"[DEBUG] debug test", "[INFO] info test", "[WARN] warn test", "[ERROR] error test"} {
		assert.Contains(t, buf.String(), want)
	}
}
