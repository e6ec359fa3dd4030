package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/wizard"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordCalculation(t *testing.T) {
	m := NewManager()

	in := delay.NewInput(time.Now())
	in.SetTotalParticipants(3)
	in.SetColombianParticipants(2)
	in.SetSpicy(true)
	res := delay.Compute(delay.ColombianCalculator{}, in)

	m.Finalized(delay.FamilyColombian, in, res)

	require.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("meal", "colombian")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.discrepancies))
}

func TestRecordShare(t *testing.T) {
	m := NewManager()

	m.RecordShare("stdout", nil)
	m.RecordShare("stdout", nil)
	m.RecordShare("nats", errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.shares.WithLabelValues("stdout", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.shares.WithLabelValues("nats", "error")))
}

func TestTransitionRejected_FromController(t *testing.T) {
	m := NewManager()
	c := wizard.New(wizard.WithObserver(m))

	require.Error(t, c.Retreat())

	require.Equal(t, 1.0, testutil.ToFloat64(m.transitionErrors.WithLabelValues("retreat")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewManager(WithNamespace("test"))
	m.RecordShare("file", nil)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `test_shares_total{status="ok",target="file"} 1`)
}

func TestNilManager_IsInert(t *testing.T) {
	var m *Manager
	in := delay.NewInput(time.Now())
	res := delay.Compute(delay.ColombianCalculator{}, in)

	require.NotPanics(t, func() {
		m.RecordCalculation(delay.FamilyColombian, in, res)
		m.RecordShare("stdout", nil)
		m.TransitionRejected("retreat", wizard.StepTime)
	})
	require.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "none.prom")))
}

func TestWriteTextfile(t *testing.T) {
	m := NewManager()
	m.RecordShare("file", nil)
	path := filepath.Join(t.TempDir(), "yavoy.prom")

	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `yavoy_shares_total{status="ok",target="file"} 1`)

	require.NoError(t, NewManager().WriteTextfile(""))
}
