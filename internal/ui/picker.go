package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/wheelview/internal/wheel"
)

// PickerKeys are the keyboard bindings of the picker screen.
type PickerKeys struct {
	FocusNext ebiten.Key
	FocusPrev ebiten.Key
	StepUp    ebiten.Key
	StepDown  ebiten.Key
}

// PickerScreen lays out a set of wheels and routes pointer, mouse-wheel and
// keyboard input to them.
type PickerScreen struct {
	Views         []*WheelView
	Keys          PickerKeys
	Width, Height int

	// Now is the clock used for pointer samples and animation ticks.
	Now func() time.Time

	focus   int
	pointer PointerRouter
	stepper *WheelStepper
}

func NewPickerScreen(views []*WheelView, keys PickerKeys, width, height int, wheelInterval time.Duration) *PickerScreen {
	s := &PickerScreen{
		Views:   views,
		Keys:    keys,
		Width:   width,
		Height:  height,
		Now:     time.Now,
		stepper: NewWheelStepper(wheelInterval),
	}
	for _, v := range views {
		v.OnCapture = s.capture
	}
	s.setFocus(0)
	return s
}

func (s *PickerScreen) Name() string { return "Picker" }

func (s *PickerScreen) OnEnter() {
	LayoutViews(s.Views, s.Width, s.Height)
}

func (s *PickerScreen) OnExit() {}

func (s *PickerScreen) capture(v *WheelView) {
	s.pointer.Capture(v)
	for i, view := range s.Views {
		if view == v {
			s.setFocus(i)
		}
	}
}

// Focused returns the view receiving keyboard steps.
func (s *PickerScreen) Focused() *WheelView {
	if len(s.Views) == 0 {
		return nil
	}
	return s.Views[s.focus]
}

func (s *PickerScreen) setFocus(i int) {
	if len(s.Views) == 0 {
		return
	}
	n := len(s.Views)
	s.focus = ((i % n) + n) % n
	for j, v := range s.Views {
		v.Focused = j == s.focus
	}
}

func (s *PickerScreen) FocusNext() { s.setFocus(s.focus + 1) }
func (s *PickerScreen) FocusPrev() { s.setFocus(s.focus - 1) }

// StepFocused animates the focused wheel n items.
func (s *PickerScreen) StepFocused(n int, now time.Time) {
	if v := s.Focused(); v != nil {
		v.Wheel.Step(n, now)
	}
}

// ScrollAt applies a mouse-wheel delta to the view under (px, py).
// Horizontal wheels prefer the horizontal delta.
func (s *PickerScreen) ScrollAt(px, py int, dx, dy float64, now time.Time) {
	for _, v := range s.Views {
		if !v.Contains(px, py) {
			continue
		}
		delta := dy
		if v.Wheel.Orientation() == wheel.Horizontal && dx != 0 {
			delta = dx
		}
		if n := s.stepper.Step(delta, now); n != 0 {
			v.Wheel.Step(n, now)
		}
		return
	}
}

func (s *PickerScreen) Update() (*ScreenTransition, error) {
	now := s.Now()

	if BackJustPressed() {
		return nil, ebiten.Termination
	}
	if EnterJustPressed() {
		return &ScreenTransition{Type: TransitionPush, Screen: NewSummaryScreen(s.Views)}, nil
	}

	switch {
	case KeyRepeating(s.Keys.FocusNext):
		s.FocusNext()
	case KeyRepeating(s.Keys.FocusPrev):
		s.FocusPrev()
	case KeyRepeating(s.Keys.StepUp):
		s.StepFocused(-1, now)
	case KeyRepeating(s.Keys.StepDown):
		s.StepFocused(1, now)
	}

	s.pointer.Update(ReadPointer(), now, s.Views)

	if dx, dy := MouseWheelDelta(); dx != 0 || dy != 0 {
		mx, my := ebiten.CursorPosition()
		s.ScrollAt(mx, my, dx, dy, now)
	}

	s.tick(now)
	return nil, nil
}

func (s *PickerScreen) tick(now time.Time) {
	for _, v := range s.Views {
		v.Update(now)
	}
}

func (s *PickerScreen) Draw(dst *ebiten.Image) {
	for _, v := range s.Views {
		DrawText(dst, v.Name, v.X, v.Y-WheelTitleH, FontSizeHeading, ColorTextSecondary)
		v.Draw(dst)
	}
	hint := "drag, fling or scroll a wheel · Tab to switch · Enter for summary · Esc to quit"
	DrawText(dst, hint, ScreenPadding, float64(s.Height)-ScreenPadding/2-FontSizeSmall, FontSizeSmall, ColorTextMuted)
}

// LayoutViews places vertical wheels side by side in one row and stacks
// horizontal wheels full-width beneath them.
func LayoutViews(views []*WheelView, width, height int) {
	var vertical, horizontal []*WheelView
	for _, v := range views {
		if v.Wheel.Orientation() == wheel.Horizontal {
			horizontal = append(horizontal, v)
		} else {
			vertical = append(vertical, v)
		}
	}

	innerW := float64(width) - 2*ScreenPadding
	y := float64(ScreenPadding + WheelTitleH)
	bottom := float64(height) - ScreenPadding
	rowH := float64(HorizontalWheelHeight)

	vertH := bottom - y - float64(len(horizontal))*(rowH+WheelTitleH+WheelGap)
	if len(vertical) > 0 && vertH > 0 {
		n := float64(len(vertical))
		colW := (innerW - (n-1)*WheelGap) / n
		for i, v := range vertical {
			v.SetBounds(ScreenPadding+float64(i)*(colW+WheelGap), y, colW, vertH)
		}
		y += vertH + WheelGap + WheelTitleH
	}
	for _, v := range horizontal {
		v.SetBounds(ScreenPadding, y, innerW, rowH)
		y += rowH + WheelGap + WheelTitleH
	}
}
