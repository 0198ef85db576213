package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OogleOG/MEUI/internal/theme"
)

func testHelpers(t *testing.T) *Helpers {
	t.Helper()
	p, err := theme.Named("purple")
	require.NoError(t, err)
	return NewHelpers(p)
}

func TestFormatNumberAbbreviates(t *testing.T) {
	t.Parallel()

	h := testHelpers(t)
	assert.Equal(t, "0", h.FormatNumber(0))
	assert.Equal(t, "950", h.FormatNumber(950))
	assert.Equal(t, "1.2K", h.FormatNumber(1200))
	assert.Equal(t, "2K", h.FormatNumber(2000))
	assert.Equal(t, "3.4M", h.FormatNumber(3_400_000))
	assert.Equal(t, "-1.5K", h.FormatNumber(-1500))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	h := testHelpers(t)
	assert.Equal(t, "00:00:00", h.FormatDuration(0))
	assert.Equal(t, "00:01:05", h.FormatDuration(65*time.Second))
	assert.Equal(t, "03:25:45", h.FormatDuration(3*time.Hour+25*time.Minute+45*time.Second))
	assert.Equal(t, "00:00:00", h.FormatDuration(-time.Minute))
}

func TestPerHourRate(t *testing.T) {
	t.Parallel()

	h := testHelpers(t)
	assert.InDelta(t, 120.0, h.PerHour(60, 30*time.Minute), 0.001)
	assert.Zero(t, h.PerHour(60, 0))
}

func TestProgressBarBounds(t *testing.T) {
	t.Parallel()

	h := testHelpers(t)

	full := h.ProgressBar(10, 10, 10)
	assert.Equal(t, 10, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(full, "░"))

	empty := h.ProgressBar(0, 10, 10)
	assert.Equal(t, 10, strings.Count(empty, "░"))

	// Over- and under-range clamp.
	over := h.ProgressBar(15, 10, 10)
	assert.Equal(t, 10, strings.Count(over, "█"))
	under := h.ProgressBar(-3, 10, 10)
	assert.Equal(t, 0, strings.Count(under, "█"))
}

func TestRowContainsLabelAndValue(t *testing.T) {
	t.Parallel()

	h := testHelpers(t)
	row := h.Row("Kills", "1.2K")
	assert.Contains(t, row, "Kills")
	assert.Contains(t, row, "1.2K")
}
