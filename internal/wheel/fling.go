package wheel

import (
	"math"
	"time"
)

const (
	// flingDecay is the drag coefficient k in x''(t) = k·x'(t).
	flingDecay = -4.2
	// flingStopVelocity ends the fling once the speed in px/s drops below it.
	flingStopVelocity = 1
)

// flingSim integrates a point mass whose velocity decays exponentially. The
// travel range is unbounded; boundaries are enforced by ScrollBy.
type flingSim struct {
	t0     time.Time
	v0     float64
	x      int
	active bool
}

func (f *flingSim) start(now time.Time, velocity float64) {
	f.t0 = now
	f.v0 = velocity
	f.x = 0
	f.active = velocity != 0
}

func (f *flingSim) forceFinish() {
	f.active = false
}

// step returns the whole-pixel distance travelled since the previous step.
func (f *flingSim) step(now time.Time) int {
	if !f.active {
		return 0
	}
	t := now.Sub(f.t0).Seconds()
	if t < 0 {
		t = 0
	}
	// With x(0) = 0 and x'(0) = v0 the position is
	//
	//	x(t) = v0·e^(k·t)/k - v0/k
	//
	// and the velocity is x'(t) = v0·e^(k·t).
	ekt := math.Exp(flingDecay * t)
	x := f.v0*ekt/flingDecay - f.v0/flingDecay
	d := int(x - float64(f.x))
	f.x += d
	if v := f.v0 * ekt; math.Abs(v) < flingStopVelocity {
		f.active = false
	}
	return d
}
