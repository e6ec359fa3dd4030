package delay

import "time"

// Calculator maps collected inputs to a delay in minutes.
type Calculator interface {
	DelayMinutes(in *Input) int
}

// Result is the outcome of one completed wizard run.
type Result struct {
	DelayMinutes int
	RequestedAt  time.Time
	ArrivalTime  time.Time
	Breakdown    Breakdown
}

// ColombianCalculator implements the Colombian formula set.
type ColombianCalculator struct{}

// DelayMinutes implements Calculator.
func (ColombianCalculator) DelayMinutes(in *Input) int {
	return ComputeDelayMinutes(in)
}

// Formula constants for the Colombian family.
const (
	informalBase        = 30
	informalPerHead     = 5
	informalSpicy       = 15
	informalSpicyStated = 20 // What the breakdown has always printed for the surcharge.
	shoppingBase        = 10
	shoppingPerHead     = 3
	shoppingPerHeadHot  = 5
	formalBase          = 44
	formalPerHead       = 4
	formalSpicy         = 43
)

// ComputeDelayMinutes returns the Colombian delay for in. It is pure and deterministic.
func ComputeDelayMinutes(in *Input) int {
	n := in.ColombianParticipants()
	if n == 0 {
		return 0
	}

	cat := in.Category()
	if !cat.IsInformal() {
		minutes := formalBase + n*formalPerHead
		if in.Spicy() {
			minutes += formalSpicy
		}
		return minutes
	}

	var minutes int
	switch {
	case n < 2 && cat.IsShopping():
		minutes = shoppingBase
	case n < 2:
		minutes = informalBase
	case cat.IsShopping():
		minutes = shoppingBase + n*shoppingPerHeadFor(in.Spicy())
	default:
		minutes = informalBase + n*informalPerHead
	}

	// Shopping folds the spicy factor into the per-head rate.
	if in.Spicy() && !cat.IsShopping() {
		minutes += informalSpicy
	}
	return minutes
}

func shoppingPerHeadFor(spicy bool) int {
	if spicy {
		return shoppingPerHeadHot
	}
	return shoppingPerHead
}

// Compute runs calc over in and assembles the full Result.
func Compute(calc Calculator, in *Input) Result {
	minutes := calc.DelayMinutes(in)
	return Result{
		DelayMinutes: minutes,
		RequestedAt:  in.RequestedTime(),
		ArrivalTime:  in.RequestedTime().Add(time.Duration(minutes) * time.Minute),
		Breakdown:    Explain(in, minutes),
	}
}
