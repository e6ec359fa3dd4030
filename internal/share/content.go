// Package share turns a finished calculation into shareable text and hands it to
// a Gateway (stdout, clipboard, a file or the NATS share stream).
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/yavoy/internal/delay"
)

// TimeFormatter renders instants for display.
type TimeFormatter interface {
	Format(t time.Time) string
}

// LayoutFormatter formats instants with a Go reference-time layout in the instant's own zone.
type LayoutFormatter struct {
	Layout string
}

// Format implements TimeFormatter.
func (f LayoutFormatter) Format(t time.Time) string {
	return t.Format(f.Layout)
}

// Content is one shared result.
type Content struct {
	ID           string    `json:"id"`
	Event        string    `json:"event"`
	EventLabel   string    `json:"event_label"`
	RequestedAt  time.Time `json:"requested_at"`
	ArrivalTime  time.Time `json:"arrival_time"`
	DelayMinutes int       `json:"delay_minutes"`
	Spicy        bool      `json:"spicy"`
	Breakdown    string    `json:"breakdown"`
	Discrepancy  bool      `json:"discrepancy"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewContent builds the content for a result. The summary text is rendered with tf.
func NewContent(in *delay.Input, res delay.Result, tf TimeFormatter) Content {
	return Content{
		ID:           uuid.NewString(),
		Event:        in.Category().String(),
		EventLabel:   in.Category().Label(),
		RequestedAt:  res.RequestedAt,
		ArrivalTime:  res.ArrivalTime,
		DelayMinutes: res.DelayMinutes,
		Spicy:        in.Spicy(),
		Breakdown:    res.Breakdown.Text,
		Discrepancy:  res.Breakdown.Discrepancy(),
		Text:         Summary(in, res, tf),
		CreatedAt:    time.Now(),
	}
}

// Summary renders the share text for a result.
func Summary(in *delay.Input, res delay.Result, tf TimeFormatter) string {
	var b strings.Builder
	cat := in.Category()

	b.WriteString("🇨🇴 Colombian Time Calculator Results! 🇨🇴\n\n")
	fmt.Fprintf(&b, "Event: %s %s\n", cat.Emoji(), cat.Label())
	fmt.Fprintf(&b, "Original time: %s\n", tf.Format(res.RequestedAt))
	fmt.Fprintf(&b, "Colombian time: %s\n\n", tf.Format(res.ArrivalTime))
	fmt.Fprintf(&b, "Total delay: %d minutes\n", res.DelayMinutes)
	if in.Spicy() {
		b.WriteString("🌶️ Spicy Colombian women factor included!\n")
	}
	b.WriteString("\n¡Ya voy, ya voy...! 😅\n")
	return b.String()
}
