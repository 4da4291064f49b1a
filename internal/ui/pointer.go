package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/wheelview/internal/wheel"
)

// PointerSample is the primary pointer state for one update.
type PointerSample struct {
	Pressed bool
	X, Y    int
}

// ReadPointer polls the first touch, falling back to the left mouse button.
// A multi-touch gesture reports no press.
func ReadPointer() PointerSample {
	ids := ebiten.AppendTouchIDs(nil)
	switch {
	case len(ids) > 1:
		return PointerSample{}
	case len(ids) == 1:
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{Pressed: true, X: x, Y: y}
	}
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// PointerRouter turns polled pointer samples into wheel pointer events. A
// press goes to the view under it; moves and the release go only to the view
// that captured the gesture, even once the pointer leaves its bounds.
type PointerRouter struct {
	pressed      bool
	lastX, lastY int
	captured     *WheelView
}

// Capture routes the rest of the current gesture to v.
func (r *PointerRouter) Capture(v *WheelView) { r.captured = v }

// Captured returns the view owning the current gesture, if any.
func (r *PointerRouter) Captured() *WheelView { return r.captured }

func (r *PointerRouter) Update(s PointerSample, now time.Time, views []*WheelView) {
	switch {
	case s.Pressed && !r.pressed:
		r.pressed = true
		r.lastX, r.lastY = s.X, s.Y
		r.captured = nil
		for _, v := range views {
			if v.Contains(s.X, s.Y) {
				v.HandlePointer(wheel.PointerDown, s.X, s.Y, now)
				break
			}
		}
	case s.Pressed:
		if r.captured == nil || (s.X == r.lastX && s.Y == r.lastY) {
			return
		}
		r.lastX, r.lastY = s.X, s.Y
		r.captured.HandlePointer(wheel.PointerMove, s.X, s.Y, now)
	case r.pressed:
		r.pressed = false
		if r.captured != nil {
			// touch releases carry no position
			r.captured.HandlePointer(wheel.PointerUp, r.lastX, r.lastY, now)
			r.captured = nil
		}
	}
}
