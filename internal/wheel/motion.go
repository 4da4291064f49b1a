package wheel

import (
	"math"
	"time"
)

// ScrollState is the gesture state of a wheel.
type ScrollState int

const (
	StateIdle ScrollState = iota
	StateTouchScroll
	StateFling
)

func (s ScrollState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTouchScroll:
		return "touch-scroll"
	case StateFling:
		return "fling"
	}
	return "unknown"
}

// PointerPhase is the kind of a pointer sample.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is one pointer sample in view coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
	Time  time.Time
}

// motion is the touch state machine. At most one of fling and snap is active.
type motion struct {
	state    ScrollState
	downPos  float64
	lastPos  float64
	tracker  velocityTracker
	fling    flingSim
	snap     snapSim
	settling bool
}

// ScrollState returns the current gesture state.
func (w *Wheel) ScrollState() ScrollState { return w.motion.state }

// Animating reports whether a fling or snap is still running.
func (w *Wheel) Animating() bool {
	return w.motion.fling.active || w.motion.snap.active
}

func (w *Wheel) setScrollState(s ScrollState) {
	if s == w.motion.state {
		return
	}
	w.motion.state = s
	if w.OnScrollStateChange != nil {
		w.OnScrollStateChange(s)
	}
}

func (w *Wheel) axis(ev PointerEvent) float64 {
	if w.orientation == Vertical {
		return ev.Y
	}
	return ev.X
}

// HandlePointer feeds one pointer sample to the wheel.
func (w *Wheel) HandlePointer(ev PointerEvent) {
	switch ev.Phase {
	case PointerDown:
		w.pointerDown(ev)
	case PointerMove:
		w.pointerMove(ev)
	case PointerUp:
		w.pointerUp(ev)
	}
}

func (w *Wheel) pointerDown(ev PointerEvent) {
	m := &w.motion
	m.fling.forceFinish()
	m.snap.forceFinish()
	m.settling = false

	pos := w.axis(ev)
	m.downPos, m.lastPos = pos, pos
	m.tracker.reset()
	m.tracker.add(pos, ev.Time)
	if w.CapturePointer != nil {
		w.CapturePointer()
	}
	w.setScrollState(StateIdle)
}

func (w *Wheel) pointerMove(ev PointerEvent) {
	m := &w.motion
	pos := w.axis(ev)
	m.tracker.add(pos, ev.Time)
	if m.state != StateTouchScroll {
		if math.Abs(pos-m.downPos) > w.gesture.DragThreshold {
			w.setScrollState(StateTouchScroll)
		}
		m.lastPos = pos
		return
	}
	// carry the sub-pixel remainder into the next sample
	d := int(pos - m.lastPos)
	if d == 0 {
		return
	}
	m.lastPos += float64(d)
	w.scrollAxis(d)
	w.invalidate()
}

func (w *Wheel) pointerUp(ev PointerEvent) {
	m := &w.motion
	m.tracker.add(w.axis(ev), ev.Time)
	v := m.tracker.velocity()
	m.tracker.reset()
	if limit := w.gesture.MaxFlingVelocity; limit > 0 {
		v = math.Max(-limit, math.Min(limit, v))
	}
	if math.Abs(v) > w.gesture.MinFlingVelocity {
		w.startFling(ev.Time, v)
		return
	}
	w.setScrollState(StateIdle)
	w.startSnap(ev.Time)
}

func (w *Wheel) startFling(now time.Time, velocity float64) {
	m := &w.motion
	m.snap.forceFinish()
	m.fling.start(now, velocity)
	m.settling = true
	w.setScrollState(StateFling)
	w.invalidate()
}

// snapDelta is the shortest distance from the current offset to a rest
// position.
func (w *Wheel) snapDelta() int {
	delta := w.restOffset - w.offset
	if w.elementSize > 0 && abs(delta) > w.elementSize/2 {
		if delta > 0 {
			delta -= w.elementSize
		} else {
			delta += w.elementSize
		}
	}
	return delta
}

// startSnap settles the wheel on the nearest item, firing OnValueSettle at
// once when it is already at rest.
func (w *Wheel) startSnap(now time.Time) {
	m := &w.motion
	m.fling.forceFinish()
	m.snap.start(now, w.snapDelta(), w.gesture.SnapDuration)
	m.settling = true
	if !m.snap.active {
		w.settle()
		return
	}
	w.invalidate()
}

func (w *Wheel) settle() {
	if !w.motion.settling {
		return
	}
	w.motion.settling = false
	if w.OnValueSettle != nil {
		w.OnValueSettle(w.value)
	}
}

// Tick advances the running fling or snap to now. It returns true while the
// host must keep ticking.
func (w *Wheel) Tick(now time.Time) bool {
	m := &w.motion
	switch {
	case m.fling.active:
		d := m.fling.step(now)
		if d != 0 && !w.scrollAxis(d) {
			// pinned at a bound; nothing left to fling
			m.fling.forceFinish()
		}
		if !m.fling.active {
			w.setScrollState(StateIdle)
			w.startSnap(now)
		}
	case m.snap.active:
		w.scrollAxis(m.snap.step(now))
		if !m.snap.active {
			w.settle()
		}
	default:
		return false
	}
	w.invalidate()
	return w.Animating()
}

// Step animates the wheel n items forward (n > 0, toward higher values) or
// backward. Steps issued while a previous step is running accumulate.
func (w *Wheel) Step(n int, now time.Time) {
	if n == 0 || w.elementSize <= 0 || w.motion.state == StateTouchScroll {
		return
	}
	m := &w.motion
	delta := w.snapDelta()
	if m.snap.active {
		delta = m.snap.remaining()
	}
	m.fling.forceFinish()
	w.setScrollState(StateIdle)
	delta -= n * w.elementSize
	m.snap.start(now, delta, w.gesture.StepDuration)
	m.settling = true
	if !m.snap.active {
		w.settle()
		return
	}
	w.invalidate()
}

// Stop cancels any running fling or snap without settling.
func (w *Wheel) Stop() {
	w.motion.fling.forceFinish()
	w.motion.snap.forceFinish()
	w.motion.settling = false
	w.setScrollState(StateIdle)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
