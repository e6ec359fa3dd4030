package delay

import "time"

// Participant bounds.
const (
	MinParticipants = 1
	MaxParticipants = 20
)

// Input holds the five parameters collected by the wizard.
// All writes clamp to the valid range instead of failing.
type Input struct {
	requestedTime time.Time
	category      Category
	total         int
	colombians    int
	spicy         bool
}

// NewInput returns an Input with default values and the given requested time.
func NewInput(now time.Time) *Input {
	return &Input{
		requestedTime: now,
		category:      CategoryMeal,
		total:         MinParticipants,
		colombians:    0,
		spicy:         false,
	}
}

func (in *Input) RequestedTime() time.Time { return in.requestedTime }
func (in *Input) Category() Category { return in.category }
func (in *Input) TotalParticipants() int { return in.total }
func (in *Input) ColombianParticipants() int { return in.colombians }
func (in *Input) Spicy() bool { return in.spicy }

// SetRequestedTime accepts any instant.
func (in *Input) SetRequestedTime(t time.Time) { in.requestedTime = t }

// SetCategory ignores values outside the defined set.
func (in *Input) SetCategory(c Category) {
	if c.Valid() {
		in.category = c
	}
}

// SetSpicy sets the spicy factor.
func (in *Input) SetSpicy(v bool) { in.spicy = v }

// SetTotalParticipants clamps n to [1, 20] and pulls the Colombian count down with it.
func (in *Input) SetTotalParticipants(n int) {
	in.total = clamp(n, MinParticipants, MaxParticipants)
	if in.colombians > in.total {
		in.colombians = in.total
	}
}

// SetColombianParticipants clamps n to [0, total].
func (in *Input) SetColombianParticipants(n int) {
	in.colombians = clamp(n, 0, in.total)
}

// AdjustTotal adds delta to the total participant count.
func (in *Input) AdjustTotal(delta int) { in.SetTotalParticipants(in.total + delta) }

// AdjustColombians adds delta to the Colombian participant count.
func (in *Input) AdjustColombians(delta int) { in.SetColombianParticipants(in.colombians + delta) }

// Clone returns an independent copy.
func (in *Input) Clone() *Input {
	c := *in
	return &c
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
