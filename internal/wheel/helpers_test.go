package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 200
	testHeight = 400
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

type valueChange struct{ old, new int }

// recorder captures every listener callback of a wheel.
type recorder struct {
	changes []valueChange
	settles []int
	states  []ScrollState
	invals  int
}

func newTestWheel(t *testing.T, mutate func(*Options)) (*Wheel, *recorder) {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	w, err := New(opts)
	require.NoError(t, err)
	rec := &recorder{}
	w.OnValueChange = func(old, new int) { rec.changes = append(rec.changes, valueChange{old, new}) }
	w.OnValueSettle = func(v int) { rec.settles = append(rec.settles, v) }
	w.OnScrollStateChange = func(s ScrollState) { rec.states = append(rec.states, s) }
	w.Invalidate = func() { rec.invals++ }
	w.Layout(testWidth, testHeight)
	return w, rec
}

// runTicks ticks at 60fps from start until the wheel stops animating and
// returns the time of the last tick.
func runTicks(t *testing.T, w *Wheel, start time.Time) time.Time {
	t.Helper()
	now := start
	for i := 0; i < 10_000; i++ {
		now = now.Add(16 * time.Millisecond)
		if !w.Tick(now) {
			return now
		}
	}
	t.Fatal("wheel never came to rest")
	return now
}

// fixedMeasure treats every rune as half the text size wide.
func fixedMeasure(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}
