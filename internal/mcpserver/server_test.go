package mcpserver

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/yavoy/internal/metrics"
	"github.com/stretchr/testify/require"
)

func TestServer_StartServesMCPAndMetrics(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(WithMetrics(metrics.NewManager()))

	addr, err := srv.Start(ctx, "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { require.NoError(t, srv.Stop(ctx)) }()

	require.Equal(t, "http://"+addr+"/mcp", srv.URL())

	_, err = srv.Start(ctx, "127.0.0.1:0")
	require.Error(t, err, "second start must fail")

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "yavoy_delay_minutes")

	initBody := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	req, err := http.NewRequest(http.MethodPost, srv.URL(), strings.NewReader(initBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `"name":"yavoy"`)
}

func TestServer_StopWithoutStart(t *testing.T) {
	srv := newTestServer()
	require.NoError(t, srv.Stop(context.Background()))
}

func TestServer_MetricsCountComputeDelay(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(WithMetrics(metrics.NewManager()))

	addr, err := srv.Start(ctx, "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { require.NoError(t, srv.Stop(ctx)) }()

	result, err := srv.handleComputeDelay(ctx, computeRequest(map[string]any{
		"event":      "wedding",
		"total":      float64(6),
		"colombians": float64(2),
		"spicy":      true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `yavoy_calculations_total{event="wedding",family="colombian"} 1`)
	require.Contains(t, string(body), "yavoy_delay_minutes_sum 95")
}
