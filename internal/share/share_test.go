package share

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/yavoy/internal/config"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 7, 6, 19, 0, 0, 0, time.UTC)

var testFormatter = LayoutFormatter{Layout: config.DefaultTimeLayout}

func weddingResult(spicy bool) (*delay.Input, delay.Result) {
	in := delay.NewInput(testNow)
	in.SetCategory(delay.CategoryWedding)
	in.SetTotalParticipants(4)
	in.SetColombianParticipants(2)
	in.SetSpicy(spicy)
	return in, delay.Compute(delay.ColombianCalculator{}, in)
}

func TestSummary_Spicy(t *testing.T) {
	in, res := weddingResult(true)

	want := "🇨🇴 Colombian Time Calculator Results! 🇨🇴\n\n" +
		"Event: 💒 Wedding\n" +
		"Original time: Jul 6, 2025 at 7:00 PM\n" +
		"Colombian time: Jul 6, 2025 at 8:35 PM\n\n" +
		"Total delay: 95 minutes\n" +
		"🌶️ Spicy Colombian women factor included!\n" +
		"\n¡Ya voy, ya voy...! 😅\n"
	require.Equal(t, want, Summary(in, res, testFormatter))
}

func TestSummary_MildOmitsSpicyLine(t *testing.T) {
	in, res := weddingResult(false)

	text := Summary(in, res, testFormatter)
	assert.NotContains(t, text, "Spicy")
	assert.Contains(t, text, "Total delay: 52 minutes")
}

func TestNewContent(t *testing.T) {
	in, res := weddingResult(true)

	c := NewContent(in, res, testFormatter)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "wedding", c.Event)
	assert.Equal(t, "Wedding", c.EventLabel)
	assert.Equal(t, 95, c.DelayMinutes)
	assert.True(t, c.Spicy)
	assert.False(t, c.Discrepancy)
	assert.Equal(t, testNow.Add(95*time.Minute), c.ArrivalTime)
	assert.Equal(t, res.Breakdown.Text, c.Breakdown)
	assert.Equal(t, Summary(in, res, testFormatter), c.Text)

	other := NewContent(in, res, testFormatter)
	assert.NotEqual(t, c.ID, other.ID)
}

func TestWriterGateway(t *testing.T) {
	var buf bytes.Buffer
	g := NewWriterGateway(&buf)

	require.Equal(t, "stdout", g.Name())
	require.NoError(t, g.Share(context.Background(), Content{Text: "hola"}))
	require.Equal(t, "hola", buf.String())
}

func TestClipboardGateway(t *testing.T) {
	var copied string
	g := &ClipboardGateway{write: func(s string) error {
		copied = s
		return nil
	}}

	err := g.Share(context.Background(), Content{Text: "ya voy"})
	if err != nil {
		// Headless machines without a clipboard helper.
		t.Skipf("clipboard unavailable: %v", err)
	}
	require.Equal(t, "ya voy", copied)

	g.write = func(string) error { return errors.New("boom") }
	err = g.Share(context.Background(), Content{Text: "x"})
	require.Error(t, err)
}

func TestFileGateway(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shares")
	g := &FileGateway{Dir: dir}
	in, res := weddingResult(true)
	c := NewContent(in, res, testFormatter)

	require.NoError(t, g.Share(context.Background(), c))

	path := g.Path(c)
	require.True(t, strings.HasPrefix(filepath.Base(path), "wedding-2025-07-06-1900-"))
	require.Equal(t, ".txt", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, c.Text, string(data))
}

type recordedShare struct {
	target string
	err    error
}

type fakeRecorder struct {
	calls []recordedShare
}

func (f *fakeRecorder) RecordShare(target string, err error) {
	f.calls = append(f.calls, recordedShare{target, err})
}

type failingGateway struct{}

func (failingGateway) Name() string { return "broken" }

func (failingGateway) Share(context.Context, Content) error { return errors.New("offline") }

func TestInstrument_RecordsOutcome(t *testing.T) {
	rec := &fakeRecorder{}

	ok := Instrument(NewWriterGateway(&bytes.Buffer{}), rec)
	require.NoError(t, ok.Share(context.Background(), Content{Text: "x"}))

	bad := Instrument(failingGateway{}, rec)
	err := bad.Share(context.Background(), Content{})
	require.EqualError(t, err, "offline")

	require.Equal(t, []recordedShare{
		{target: "stdout"},
		{target: "broken", err: err},
	}, rec.calls)
	require.Equal(t, "broken", bad.Name())
}

func TestNATSGateway_PublishAndList(t *testing.T) {
	ctx := context.Background()
	bus, err := nats.Open(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	g := NewNATSGateway(bus.JetStream())
	require.Equal(t, "nats", g.Name())

	in, res := weddingResult(true)
	first := NewContent(in, res, testFormatter)
	in.SetCategory(delay.CategoryMeal)
	second := NewContent(in, delay.Compute(delay.ColombianCalculator{}, in), testFormatter)

	require.NoError(t, g.Share(ctx, first))
	require.NoError(t, g.Share(ctx, second))
	_, err = bus.JetStream().Publish(ctx, nats.SubjectForShare("junk"), []byte("not json"))
	require.NoError(t, err)

	shares, err := ListShared(ctx, bus.Stream(), 10)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, first.ID, shares[0].ID)
	assert.Equal(t, "meal", shares[1].Event)
	assert.True(t, shares[1].Discrepancy)
}

func TestOpen_SelectsGateway(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		target string
		want   string
	}{
		{config.ShareStdout, "stdout"},
		{config.ShareClipboard, "clipboard"},
		{config.ShareFile, "file"},
		{config.ShareNATS, "nats"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			cfg := config.Default()
			cfg.ShareTarget = tt.target
			cfg.DataDir = t.TempDir()
			cfg.ShareDir = t.TempDir()

			g, closeFn, err := Open(ctx, cfg, &bytes.Buffer{}, nil)
			require.NoError(t, err)
			defer func() { require.NoError(t, closeFn()) }()
			require.Equal(t, tt.want, g.Name())
		})
	}

	cfg := config.Default()
	cfg.ShareTarget = "pigeon"
	_, closeFn, err := Open(ctx, cfg, nil, nil)
	require.Error(t, err)
	require.NotNil(t, closeFn)
}
