package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/time/rate"
)

// WheelStepper turns mouse-wheel motion into single wheel steps. Trackpads
// report many small deltas per gesture, so steps are rate limited.
type WheelStepper struct {
	limiter *rate.Limiter
}

func NewWheelStepper(interval time.Duration) *WheelStepper {
	return &WheelStepper{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Step returns -1 when the wheel scrolled up, 1 when it scrolled down and 0
// for no motion or while limited.
func (ws *WheelStepper) Step(delta float64, now time.Time) int {
	if delta == 0 || !ws.limiter.AllowN(now, 1) {
		return 0
	}
	if delta > 0 {
		return -1
	}
	return 1
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}
