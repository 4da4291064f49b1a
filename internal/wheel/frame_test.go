package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameVertical(t *testing.T) {
	w, _ := newTestWheel(t, nil)
	f := w.Frame()
	require.Len(t, f.Slots, 7)

	c := f.Slots[3]
	assert.Equal(t, 1, c.Value)
	assert.Equal(t, "1", c.Label)
	assert.Equal(t, 100.0, c.X)
	assert.Equal(t, 200.0, c.Y)
	assert.InDelta(t, 1.0, c.Scale, 1e-9)
	assert.InDelta(t, 1.0, c.Alpha, 1e-9)
	assert.InDelta(t, 30.0, c.TextSize, 1e-9)

	// cyclic 1..10 centered on 1
	var values []int
	for _, s := range f.Slots {
		values = append(values, s.Value)
		assert.GreaterOrEqual(t, s.Alpha, 0.1)
		assert.LessOrEqual(t, s.Alpha, 1.0)
	}
	assert.Equal(t, []int{8, 9, 10, 1, 2, 3, 4}, values)

	require.True(t, f.Marker.Visible)
	assert.Equal(t, Line{20, 180, 180, 180}, f.Marker.Lines[0])
	assert.Equal(t, Line{20, 220, 180, 220}, f.Marker.Lines[1])
	assert.Nil(t, f.Suffix)
}

func TestFrameFollowsOffset(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) { o.Min, o.Max, o.Value = 0, 99, 50 })
	w.ScrollBy(0, 10)
	f := w.Frame()
	c := f.Slots[3]
	assert.Less(t, c.Scale, 1.0)
	assert.Greater(t, c.Y, 200.0)

	w.SetDistort(false)
	f = w.Frame()
	assert.Equal(t, 80.0+10, f.Slots[0].Y)
	assert.Equal(t, 210.0, f.Slots[3].Y)
}

func TestFrameBoundedWheelHidesOutOfRange(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 1, 4, 1
		o.Cyclic = false
	})
	f := w.Frame()
	var labels []string
	for _, s := range f.Slots {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"", "", "", "1", "2", "3", "4"}, labels)
}

func TestFrameSuffix(t *testing.T) {
	opts := DefaultOptions()
	opts.Label = "kg"
	w, err := New(opts)
	require.NoError(t, err)
	w.Measure = fixedMeasure
	w.Layout(testWidth, testHeight)

	f := w.Frame()
	require.NotNil(t, f.Suffix)
	assert.Equal(t, "kg", f.Suffix.Text)
	assert.Equal(t, 30.0, f.Suffix.TextSize)
	assert.InDelta(t, 137.5, f.Suffix.X, 1e-9)
	assert.Equal(t, 200.0, f.Suffix.Y)
}

func TestFrameHorizontalMarker(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) {
		o.Orientation = Horizontal
		o.VisibleCount = 5
		o.SelectLineScale = 0.5
		o.Label = "ignored"
	})
	f := w.Frame()
	require.True(t, f.Marker.Visible)
	// the vertical half-height is 200, so the marker spans 100px of it
	for _, l := range f.Marker.Lines {
		assert.Equal(t, 100.0, l.X0)
		assert.Equal(t, 100.0, l.X1)
	}
	assert.Nil(t, f.Suffix)
	for _, s := range f.Slots {
		assert.Equal(t, 200.0, s.Y)
		assert.Greater(t, s.Size, 0.0)
	}
}

func TestFrameWithoutLayout(t *testing.T) {
	w, err := New(DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, w.Frame().Slots)

	w.SetSelectLine(false)
	w.Layout(testWidth, testHeight)
	assert.False(t, w.Frame().Marker.Visible)
}
