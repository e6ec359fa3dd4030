package delay

import (
	"fmt"
	"strings"
	"time"
)

// clockLayouts are accepted for a time of day on the reference date.
var clockLayouts = []string{"15:04", "3:04PM", "3:04 PM", "3PM", "3 PM"}

// ParseRequestedTime reads an event time. It accepts RFC 3339 timestamps or a
// time of day, which is placed on now's date in now's location. An empty
// string yields now.
func ParseRequestedTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	upper := strings.ToUpper(s)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, upper)
		if err != nil {
			continue
		}
		y, m, d := now.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or a time of day like 19:30 or 7:30 PM", s)
}
