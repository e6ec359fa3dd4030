package delay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFamilyLocked is returned when a family without a calculator is selected.
var ErrFamilyLocked = errors.New("cultural family is not available yet")

// Family is a cultural family. Only families with a calculator can be used.
type Family int

const (
	FamilyColombian Family = iota
	FamilyVietnamese
	FamilyJewish
)

type familyInfo struct {
	name  string
	label string
	flag  string
	calc  Calculator // nil means locked
}

var familyTable = [...]familyInfo{
	FamilyColombian:  {name: "colombian", label: "Colombian", flag: "🇨🇴", calc: ColombianCalculator{}},
	FamilyVietnamese: {name: "vietnamese", label: "Vietnamese", flag: "🇻🇳"},
	FamilyJewish:     {name: "jewish", label: "Jewish", flag: "✡️"},
}

// Families returns all families, locked ones included, in selector order.
func Families() []Family {
	out := make([]Family, len(familyTable))
	for i := range familyTable {
		out[i] = Family(i)
	}
	return out
}

func (f Family) info() familyInfo {
	if f < 0 || int(f) >= len(familyTable) {
		return familyInfo{name: "unknown", label: "Unknown"}
	}
	return familyTable[f]
}

func (f Family) String() string { return f.info().name }

// Label returns the display label.
func (f Family) Label() string { return f.info().label }

// Flag returns the icon shown in the selector.
func (f Family) Flag() string { return f.info().flag }

// Calculator returns the family's calculator. ok is false for locked families.
func (f Family) Calculator() (Calculator, bool) {
	c := f.info().calc
	return c, c != nil
}

// Available reports whether the family exposes a working calculator.
func (f Family) Available() bool {
	_, ok := f.Calculator()
	return ok
}

// ParseFamily parses a family name. Locked families parse fine; selecting them fails later.
func ParseFamily(s string) (Family, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, info := range familyTable {
		if norm == info.name {
			return Family(i), nil
		}
	}
	return FamilyColombian, fmt.Errorf("unknown cultural family: %q", s)
}
