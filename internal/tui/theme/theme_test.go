package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#fcd116")
	assert.Equal(t, []uint8{0xfc, 0xd1, 0x16}, []uint8{r, g, b})

	r, g, b = ParseHexColor("bad")
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestApplyGradient_PreservesText(t *testing.T) {
	out := ApplyGradient("ya voy", "#fcd116", "#ce1126")
	assert.Equal(t, "ya voy", ansi.Strip(out))
	assert.Equal(t, "", ApplyGradient("", "#000000", "#ffffff"))
}

func TestCurrent_DefaultsToColombia(t *testing.T) {
	th := Current()
	require.NotNil(t, th)
	assert.Equal(t, "colombia", th.Name)
	assert.Same(t, th.S(), th.S(), "styles are built once")

	custom := NewColombia()
	custom.Name = "custom"
	SetCurrent(custom)
	t.Cleanup(func() { SetCurrent(th) })
	assert.Equal(t, "custom", Current().Name)

	SetCurrent(nil)
	assert.Equal(t, "custom", Current().Name)
}

func TestStyles_RenderWithoutPanics(t *testing.T) {
	s := NewColombia().S()
	out := s.ButtonFocused.Render("Share")
	assert.True(t, strings.Contains(ansi.Strip(out), "Share"))
}
