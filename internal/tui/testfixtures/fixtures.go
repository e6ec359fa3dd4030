package testfixtures

import (
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
)

// Now is the fixed clock used across TUI tests: Sunday July 6 2025, 7:00 PM UTC.
var Now = time.Date(2025, 7, 6, 19, 0, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time { return Now }

// DefaultInput returns an input with default values at Now.
func DefaultInput() *delay.Input {
	return delay.NewInput(Now)
}

// SpicyWeddingInput is a formal group: 95 minutes.
func SpicyWeddingInput() *delay.Input {
	in := delay.NewInput(Now)
	in.SetCategory(delay.CategoryWedding)
	in.SetTotalParticipants(6)
	in.SetColombianParticipants(2)
	in.SetSpicy(true)
	return in
}

// SpicyMealPairInput is the informal spicy case whose breakdown line states 20
// minutes while 15 are charged: 55 minutes.
func SpicyMealPairInput() *delay.Input {
	in := delay.NewInput(Now)
	in.SetCategory(delay.CategoryMeal)
	in.SetTotalParticipants(2)
	in.SetColombianParticipants(2)
	in.SetSpicy(true)
	return in
}
