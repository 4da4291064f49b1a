package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidRange(t *testing.T) {
	opts := DefaultOptions()
	opts.Min = -1
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrNegativeBound)

	opts = DefaultOptions()
	opts.Min, opts.Max = 5, 2
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSetRangeRejectsWithoutMutation(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) { o.Min, o.Max, o.Value = 2, 8, 5 })

	assert.ErrorIs(t, w.SetRange(-1, 8), ErrNegativeBound)
	assert.ErrorIs(t, w.SetMaxValue(-3), ErrNegativeBound)
	assert.ErrorIs(t, w.SetMinValue(9), ErrInvalidRange)

	lo, hi := w.Range()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 8, hi)
	assert.Equal(t, 5, w.Value())
}

func TestSetRangeReclampsValue(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) { o.Min, o.Max, o.Value = 0, 20, 15 })
	require.NoError(t, w.SetRange(0, 10))
	assert.Equal(t, 10, w.Value())
	require.NoError(t, w.SetMaxValue(30))
	require.NoError(t, w.SetMinValue(12))
	assert.Equal(t, 12, w.Value())
}

func TestCyclicScrollOneElementForward(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 7, 0
		o.Cyclic = true
		o.VisibleCount = 7
	})
	w.ScrollBy(0, -w.ElementSize())

	assert.Equal(t, []valueChange{{0, 1}}, rec.changes)
	assert.Equal(t, 1, w.Value())
	assert.Zero(t, w.Offset())
}

func TestCumulativeScrollFiresOnce(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 7, 0
		o.Cyclic = true
	})
	e := w.ElementSize()
	w.ScrollBy(0, -e/4)
	w.ScrollBy(0, -e/4)
	w.ScrollBy(0, -e/4)
	w.ScrollBy(0, -e/4)

	assert.Equal(t, []valueChange{{0, 1}}, rec.changes)
	assert.Zero(t, w.Offset())
}

func TestCyclicScrollWrapsBackward(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 7, 0
		o.Cyclic = true
	})
	w.ScrollBy(0, w.ElementSize())
	assert.Equal(t, []valueChange{{0, 7}}, rec.changes)
	assert.Equal(t, 7, w.Value())
}

func TestLargeDeltaCrossesSeveralBoundaries(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 99, 10
	})
	w.ScrollBy(0, -3*w.ElementSize()-5)

	assert.Equal(t, []valueChange{{10, 11}, {11, 12}, {12, 13}}, rec.changes)
	assert.Equal(t, -5, w.Offset())
}

func TestScrollPastUpperBoundIsNoop(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 1, 4, 4
		o.Cyclic = false
	})
	w.ScrollBy(0, -w.ElementSize())

	assert.Equal(t, 4, w.Value())
	assert.Empty(t, rec.changes)
	assert.Zero(t, w.Offset())
}

func TestScrollPastLowerBoundIsNoop(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 1, 4, 1
		o.Cyclic = false
	})
	before := append([]int(nil), w.ring.slots...)
	for i := 0; i < 50; i++ {
		w.ScrollBy(0, 3)
	}
	assert.Equal(t, 1, w.Value())
	assert.Empty(t, rec.changes)
	assert.Equal(t, before, w.ring.slots)
	assert.Zero(t, w.Offset())
}

func TestScrollIntoBoundClampsOffset(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 1, 4, 3
		o.Cyclic = false
	})
	w.ScrollBy(0, -5*w.ElementSize())
	assert.Equal(t, 4, w.Value())
	assert.Zero(t, w.Offset())
	assert.Equal(t, []valueChange{{3, 4}}, rec.changes)
}

func TestZeroDeltaIsIdempotent(t *testing.T) {
	w, rec := newTestWheel(t, nil)
	w.ScrollBy(0, -7)
	for i := 0; i < 10; i++ {
		w.ScrollBy(0, 0)
	}
	assert.Equal(t, -7, w.Offset())
	assert.Empty(t, rec.changes)
}

func TestScrollByUsesOrientationAxis(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) {
		o.Orientation = Horizontal
		o.Min, o.Max, o.Value = 0, 9, 5
		o.VisibleCount = 5
	})
	require.Equal(t, testWidth/5, w.ElementSize())

	w.ScrollBy(0, -1000)
	assert.Equal(t, 5, w.Value())
	w.ScrollBy(-w.ElementSize(), 0)
	assert.Equal(t, 6, w.Value())
}

func TestSetValueDoesNotNotify(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 7, 0
		o.Cyclic = true
	})
	w.SetValue(9)
	assert.Equal(t, 1, w.Value())
	assert.Equal(t, 1, w.ring.center())
	assert.Empty(t, rec.changes)

	w.SetCyclic(false)
	w.SetValue(42)
	assert.Equal(t, 7, w.Value())
	w.SetValue(-4)
	assert.Equal(t, 0, w.Value())
	assert.Empty(t, rec.changes)
}

func TestSingleElementRangeNeverWraps(t *testing.T) {
	w, rec := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 3, 3, 3
		o.Cyclic = true
	})
	w.ScrollBy(0, 500)
	w.ScrollBy(0, -500)
	w.SetValue(10)
	assert.Equal(t, 3, w.Value())
	assert.Empty(t, rec.changes)

	f := w.Frame()
	var labels []string
	for _, s := range f.Slots {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"", "", "", "3", "", "", ""}, labels)
}

func TestSetDisplayedValuesShrinksWheel(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) { o.VisibleCount = 7 })
	w.SetDisplayedValues([]string{"A", "B", "C"})

	assert.Equal(t, 3, w.VisibleCount())
	lo, hi := w.Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)
	assert.Equal(t, "A", w.Label(1))
	assert.Equal(t, "B", w.Label(2))
	assert.Equal(t, "", w.Label(0))
	assert.Len(t, w.Frame().Slots, 3)
}

func TestSetDisplayedValuesKeepsSmallerCount(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) { o.VisibleCount = 5 })
	w.SetDisplayedValues([]string{"a", "b", "c", "d", "e", "f", "g", "h"})
	assert.Equal(t, 5, w.VisibleCount())
	lo, hi := w.Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 7, hi)

	w.SetDisplayedValues(nil)
	assert.Nil(t, w.DisplayedValues())
	assert.Equal(t, "3", w.Label(3))
}

func TestSetDisplayedValuesCopies(t *testing.T) {
	w, _ := newTestWheel(t, nil)
	vals := []string{"x", "y", "z", "w"}
	w.SetDisplayedValues(vals)
	vals[0] = "changed"
	assert.Equal(t, "x", w.Label(1))
}

func TestSetVisibleCountEnforcesMinimum(t *testing.T) {
	w, _ := newTestWheel(t, nil)
	w.SetVisibleCount(1)
	assert.Equal(t, MinVisibleCount, w.VisibleCount())
	w.SetVisibleCount(9)
	assert.Equal(t, 9, w.VisibleCount())
	assert.Len(t, w.Frame().Slots, 9)
}

func TestLayoutIgnoresEmptySurface(t *testing.T) {
	w, _ := newTestWheel(t, nil)
	w.Layout(0, 100)
	width, height := w.Size()
	assert.Equal(t, testWidth, width)
	assert.Equal(t, testHeight, height)
}

func TestConfigurationInvalidates(t *testing.T) {
	w, rec := newTestWheel(t, nil)
	before := rec.invals
	w.SetValue(4)
	w.SetMinAlpha(0.3)
	w.SetTextSize(20)
	assert.Greater(t, rec.invals, before+2)
}

func TestSetOrientationRelayouts(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 99, 50
	})
	require.Equal(t, 40, w.ElementSize())
	w.ScrollBy(0, -7)
	require.Equal(t, -7, w.Offset())

	w.SetOrientation(Horizontal)
	assert.Equal(t, Horizontal, w.Orientation())
	assert.Equal(t, testWidth/7, w.ElementSize())
	assert.Zero(t, w.Offset())
	assert.Equal(t, 50, w.Value())
	require.Len(t, w.slots, 7)
	slot, ok := w.slots[0].(horizontalSlot)
	require.True(t, ok)
	x, y := slot.rest()
	assert.Equal(t, float64(testWidth/7/2), x)
	assert.Equal(t, float64(testHeight/2), y)

	w.ScrollBy(0, -9)
	assert.Zero(t, w.Offset(), "vertical delta is ignored")
	w.ScrollBy(-9, 0)
	assert.Equal(t, -9, w.Offset())

	w.SetOrientation(Vertical)
	assert.Equal(t, 40, w.ElementSize())
	assert.Zero(t, w.Offset())
	_, ok = w.slots[0].(verticalSlot)
	assert.True(t, ok)
}
