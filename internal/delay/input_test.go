package delay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInput_Defaults(t *testing.T) {
	in := NewInput(fixedNow)

	assert.Equal(t, fixedNow, in.RequestedTime())
	assert.Equal(t, CategoryMeal, in.Category())
	assert.Equal(t, 1, in.TotalParticipants())
	assert.Equal(t, 0, in.ColombianParticipants())
	assert.False(t, in.Spicy())
}

func TestInput_TotalClamps(t *testing.T) {
	tests := []struct {
		set  int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{12, 12},
		{20, 20},
		{21, 20},
		{1000, 20},
	}

	for _, tt := range tests {
		in := NewInput(fixedNow)
		in.SetTotalParticipants(tt.set)
		assert.Equal(t, tt.want, in.TotalParticipants(), "set=%d", tt.set)
	}
}

func TestInput_ColombiansClampToTotal(t *testing.T) {
	in := NewInput(fixedNow)
	in.SetTotalParticipants(5)

	in.SetColombianParticipants(9)
	assert.Equal(t, 5, in.ColombianParticipants())

	in.SetColombianParticipants(-1)
	assert.Equal(t, 0, in.ColombianParticipants())
}

func TestInput_LoweringTotalPullsColombiansDown(t *testing.T) {
	for start := MinParticipants; start <= MaxParticipants; start++ {
		for lower := -2; lower < start; lower++ {
			in := NewInput(fixedNow)
			in.SetTotalParticipants(start)
			in.SetColombianParticipants(start)

			in.SetTotalParticipants(lower)

			require.Equal(t, in.TotalParticipants(), in.ColombianParticipants())
			require.GreaterOrEqual(t, in.TotalParticipants(), MinParticipants)
		}
	}
}

func TestInput_AdjustNeverLeavesBounds(t *testing.T) {
	in := NewInput(fixedNow)
	deltas := []int{+1, +30, -4, +2, -100, +7, +1, -3}
	for _, d := range deltas {
		in.AdjustTotal(d)
		in.AdjustColombians(d * 2)

		require.GreaterOrEqual(t, in.TotalParticipants(), MinParticipants)
		require.LessOrEqual(t, in.TotalParticipants(), MaxParticipants)
		require.GreaterOrEqual(t, in.ColombianParticipants(), 0)
		require.LessOrEqual(t, in.ColombianParticipants(), in.TotalParticipants())
	}
}

func TestInput_SetCategoryIgnoresInvalid(t *testing.T) {
	in := NewInput(fixedNow)
	in.SetCategory(CategoryCourt)
	in.SetCategory(Category(99))
	assert.Equal(t, CategoryCourt, in.Category())
}

func TestInput_CloneIsIndependent(t *testing.T) {
	in := NewInput(fixedNow)
	in.SetTotalParticipants(4)

	c := in.Clone()
	c.SetTotalParticipants(9)

	assert.Equal(t, 4, in.TotalParticipants())
	assert.Equal(t, 9, c.TotalParticipants())
}

func TestCategory_Table(t *testing.T) {
	informal := map[Category]bool{
		CategoryMeal: true, CategoryMovies: true, CategoryDate: true,
		CategoryShopping: true, CategoryVacation: true,
	}
	require.Len(t, Categories(), 8)
	for _, c := range Categories() {
		assert.Equal(t, informal[c], c.IsInformal(), c.String())
		assert.Equal(t, c == CategoryShopping, c.IsShopping(), c.String())
		assert.NotEmpty(t, c.Label())
		assert.NotEmpty(t, c.Emoji())
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"meal", CategoryMeal},
		{"MOVIES", CategoryMovies},
		{" date ", CategoryDate},
		{"special-occasion", CategorySpecialOccasion},
		{"specialOccasion", CategorySpecialOccasion},
		{"special_occasion", CategorySpecialOccasion},
		{"Special Occasion", CategorySpecialOccasion},
		{"Beach Vacation", CategoryVacation},
		{"court", CategoryCourt},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCategory("picnic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}
