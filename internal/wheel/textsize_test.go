package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTextSize(t *testing.T) {
	cases := []struct {
		name     string
		maxWidth float64
		text     string
		upper    float64
		want     float64
	}{
		{"shrinks", 100, "abcdefghij", 30, 20},
		{"already fits", 100, "abcdefghij", 15, 15},
		{"no room", 0, "abc", 30, 0},
		{"empty text", 10, "", 30, 30},
		{"tiny room", 1, "abcdefghij", 30, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FitTextSize(fixedMeasure, tc.maxWidth, tc.text, tc.upper))
		})
	}
	assert.Equal(t, 30.0, FitTextSize(nil, 1, "abc", 30))
}

func newMeasuredWheel(t *testing.T, width, height int, mutate func(*Options)) *Wheel {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	w, err := New(opts)
	require.NoError(t, err)
	w.Measure = fixedMeasure
	w.Layout(width, height)
	return w
}

func TestWheelShrinksTextToWidth(t *testing.T) {
	w := newMeasuredWheel(t, 20, 400, func(o *Options) { o.SelectLine = false })
	assert.Equal(t, 20.0, w.TextSize())

	w = newMeasuredWheel(t, 20, 400, nil)
	assert.Equal(t, 16.0, w.TextSize(), "selection line is 80% of the width")

	w = newMeasuredWheel(t, 400, 400, nil)
	assert.Equal(t, 30.0, w.TextSize())
}

func TestWheelShrinksToLongestDisplayedValue(t *testing.T) {
	w := newMeasuredWheel(t, 100, 400, func(o *Options) {
		o.SelectLine = false
		o.Values = []string{"a", "abcdefghij", "abc"}
	})
	assert.Equal(t, 20.0, w.TextSize())
	assert.Equal(t, "abcdefghij", w.longestLabel())
}

func TestHorizontalTextCappedByMarker(t *testing.T) {
	w := newMeasuredWheel(t, 500, 100, func(o *Options) {
		o.Orientation = Horizontal
		o.VisibleCount = 5
		o.SelectLineScale = 0.25
	})
	assert.Equal(t, 25.0, w.TextSize())
}

func TestTextSizeRecomputedFromBase(t *testing.T) {
	w := newMeasuredWheel(t, 20, 400, func(o *Options) { o.SelectLine = false })
	require.Equal(t, 20.0, w.TextSize())
	w.Layout(400, 400)
	assert.Equal(t, 30.0, w.TextSize())
}
