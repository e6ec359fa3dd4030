package delay

import (
	"fmt"
	"strings"
)

// NoEffectText is shown when nobody in the group is affected.
const NoEffectText = "Not enough Colombians to activate the effect! 😅"

// Term is one additive piece of a breakdown, e.g. "4 × 5 min".
type Term struct {
	Text    string
	Minutes int
}

// Breakdown explains how a delay was reached.
//
// StatedMinutes is the sum of the displayed terms and ComputedMinutes is what the
// calculator returned. They differ for informal, non-shopping, spicy events, where the
// text has always said "+ 20 min" while the formula adds 15. Discrepancy exposes that
// instead of hiding it.
type Breakdown struct {
	Text            string
	Terms           []Term
	StatedMinutes   int
	ComputedMinutes int
}

// Discrepancy reports whether the displayed terms do not add up to the computed delay.
func (b Breakdown) Discrepancy() bool {
	return b.StatedMinutes != b.ComputedMinutes
}

// Explain builds the breakdown for in given the delay computed for it.
func Explain(in *Input, computed int) Breakdown {
	n := in.ColombianParticipants()
	if n == 0 {
		return Breakdown{Text: NoEffectText, ComputedMinutes: computed}
	}

	cat := in.Category()
	var terms []Term
	switch {
	case !cat.IsInformal():
		terms = append(terms,
			Term{Text: fmt.Sprintf("%d min", formalBase), Minutes: formalBase},
			Term{Text: fmt.Sprintf("%d × %d min", n, formalPerHead), Minutes: n * formalPerHead},
		)
		if in.Spicy() {
			terms = append(terms, Term{Text: fmt.Sprintf("%d min", formalSpicy), Minutes: formalSpicy})
		}

	default:
		base, perHead := informalBase, informalPerHead
		if cat.IsShopping() {
			base, perHead = shoppingBase, shoppingPerHeadFor(in.Spicy())
		}
		if n < 2 {
			terms = append(terms, Term{Text: fmt.Sprintf("%d minutes", base), Minutes: base})
		} else {
			terms = append(terms,
				Term{Text: fmt.Sprintf("%d min", base), Minutes: base},
				Term{Text: fmt.Sprintf("%d × %d min", n, perHead), Minutes: n * perHead},
			)
		}
		if in.Spicy() && !cat.IsShopping() {
			terms = append(terms, Term{Text: fmt.Sprintf("%d min", informalSpicyStated), Minutes: informalSpicyStated})
		}
	}

	stated := 0
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		stated += t.Minutes
		parts = append(parts, t.Text)
	}

	return Breakdown{
		Text:            "Base: " + strings.Join(parts, " + ") + fmt.Sprintf(" = %d minutes", computed),
		Terms:           terms,
		StatedMinutes:   stated,
		ComputedMinutes: computed,
	}
}
