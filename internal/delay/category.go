package delay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when an event category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown event category")

// Category is the kind of event being attended.
type Category int

const (
	CategoryMeal Category = iota
	CategoryMovies
	CategoryDate
	CategoryShopping
	CategoryVacation
	CategoryWedding
	CategorySpecialOccasion
	CategoryCourt
)

// categoryInfo is the per-category lookup row the calculator branches on.
type categoryInfo struct {
	name     string // Stable identifier used by CLI flags and tool arguments
	label    string // Display label
	emoji    string
	informal bool
	shopping bool // Bespoke per-head formula and no spicy surcharge
}

var categoryTable = [...]categoryInfo{
	CategoryMeal:            {name: "meal", label: "Meal", emoji: "🍽️", informal: true},
	CategoryMovies:          {name: "movies", label: "Movies", emoji: "🎬", informal: true},
	CategoryDate:            {name: "date", label: "Date", emoji: "💕", informal: true},
	CategoryShopping:        {name: "shopping", label: "Shopping", emoji: "🛍️", informal: true, shopping: true},
	CategoryVacation:        {name: "vacation", label: "Beach Vacation", emoji: "🏖️", informal: true},
	CategoryWedding:         {name: "wedding", label: "Wedding", emoji: "💒"},
	CategorySpecialOccasion: {name: "special-occasion", label: "Special Occasion", emoji: "🌃"},
	CategoryCourt:           {name: "court", label: "Court", emoji: "⚖️"},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i := range categoryTable {
		out[i] = Category(i)
	}
	return out
}

func (c Category) info() categoryInfo {
	if c < 0 || int(c) >= len(categoryTable) {
		return categoryTable[CategoryMeal]
	}
	return categoryTable[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryTable)
}

// String returns the stable identifier, e.g. "special-occasion".
func (c Category) String() string { return c.info().name }

// Label returns the display label, e.g. "Special Occasion".
func (c Category) Label() string { return c.info().label }

// Emoji returns the icon shown next to the label.
func (c Category) Emoji() string { return c.info().emoji }

// IsInformal reports whether the informal formula branch applies.
func (c Category) IsInformal() bool { return c.info().informal }

// IsShopping reports whether the shopping special case applies.
func (c Category) IsShopping() bool { return c.info().shopping }

// ParseCategory accepts the stable identifier or the display label, case-insensitively.
// "specialOccasion" and "special_occasion" are accepted as well.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, info := range categoryTable {
		if norm == info.name || norm == strings.ReplaceAll(info.name, "-", "") ||
			norm == strings.ToLower(strings.ReplaceAll(info.label, " ", "-")) {
			return Category(i), nil
		}
	}
	return CategoryMeal, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
