package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/wheelview/internal/wheel"
)

// WheelView hosts one wheel engine inside a rectangle of the screen and
// renders its frames.
type WheelView struct {
	Name  string
	Wheel *wheel.Wheel

	X, Y, W, H float64
	Focused    bool

	// OnCapture is called when the wheel claims the current pointer gesture.
	OnCapture func(v *WheelView)

	canvas *ebiten.Image
	dirty  bool
}

// NewWheelView wraps w and installs the host hooks it needs: text
// measurement, invalidation and pointer capture.
func NewWheelView(name string, w *wheel.Wheel) *WheelView {
	v := &WheelView{Name: name, Wheel: w, dirty: true}
	w.Measure = MeasureWidth
	w.Invalidate = func() { v.dirty = true }
	w.CapturePointer = func() {
		if v.OnCapture != nil {
			v.OnCapture(v)
		}
	}
	return v
}

// SetBounds places the view and lays the wheel out to its size.
func (v *WheelView) SetBounds(x, y, w, h float64) {
	v.X, v.Y, v.W, v.H = x, y, w, h
	v.Wheel.Layout(int(w), int(h))
	v.dirty = true
}

func (v *WheelView) Contains(px, py int) bool {
	return PointInRect(px, py, v.X, v.Y, v.W, v.H)
}

// Dirty reports whether the wheel changed since the last render.
func (v *WheelView) Dirty() bool { return v.dirty }

// HandlePointer forwards a pointer sample in screen coordinates.
func (v *WheelView) HandlePointer(phase wheel.PointerPhase, px, py int, now time.Time) {
	v.Wheel.HandlePointer(wheel.PointerEvent{
		Phase: phase,
		X:     float64(px) - v.X,
		Y:     float64(py) - v.Y,
		Time:  now,
	})
}

// Update advances running animations. It reports whether the wheel is still
// moving.
func (v *WheelView) Update(now time.Time) bool {
	if !v.Wheel.Animating() {
		return false
	}
	return v.Wheel.Tick(now)
}

func (v *WheelView) Draw(dst *ebiten.Image) {
	w, h := int(v.W), int(v.H)
	if w <= 0 || h <= 0 {
		return
	}
	if v.canvas == nil || v.canvas.Bounds().Dx() != w || v.canvas.Bounds().Dy() != h {
		if v.canvas != nil {
			v.canvas.Deallocate()
		}
		v.canvas = ebiten.NewImage(w, h)
		v.dirty = true
	}
	if v.dirty {
		v.canvas.Clear()
		v.render(v.canvas)
		v.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(v.X, v.Y)
	dst.DrawImage(v.canvas, op)

	if v.Focused {
		vector.StrokeRect(dst, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), FocusBorderW, ColorFocusBorder, false)
	}
}

func (v *WheelView) render(img *ebiten.Image) {
	vector.DrawFilledRect(img, 0, 0, float32(v.W), float32(v.H), ColorSurface, false)

	f := v.Wheel.Frame()
	for _, s := range f.Slots {
		if s.Label == "" {
			continue
		}
		size := s.TextSize
		// horizontal slots shrink with distance, keep the label inside
		if s.Size > 0 {
			if tw := MeasureWidth(s.Label, size); tw > s.Size {
				size *= s.Size / tw
			}
		}
		DrawTextCentered(img, s.Label, s.X, s.Y, size, f.TextColor, s.Alpha)
	}

	if m := f.Marker; m.Visible && m.Color != nil {
		for _, l := range m.Lines {
			vector.StrokeLine(img, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), float32(m.Width), m.Color, true)
		}
	}

	if sfx := f.Suffix; sfx != nil {
		DrawTextCentered(img, " "+sfx.Text, sfx.X, sfx.Y, sfx.TextSize, f.TextColor, 1)
	}
}
