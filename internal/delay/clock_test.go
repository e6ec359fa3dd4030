package delay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseRequestedTime(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	now := time.Date(2025, 7, 6, 9, 15, 0, 0, bogota)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", now},
		{"  ", now},
		{"19:30", time.Date(2025, 7, 6, 19, 30, 0, 0, bogota)},
		{"7:30 pm", time.Date(2025, 7, 6, 19, 30, 0, 0, bogota)},
		{"7:30PM", time.Date(2025, 7, 6, 19, 30, 0, 0, bogota)},
		{"8 am", time.Date(2025, 7, 6, 8, 0, 0, 0, bogota)},
		{"2025-12-24T20:00:00Z", time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRequestedTime(tt.in, now)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}

	_, err := ParseRequestedTime("teatime", now)
	require.Error(t, err)
}
