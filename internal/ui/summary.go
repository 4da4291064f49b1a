package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// SummaryScreen lists the settled value of every wheel.
type SummaryScreen struct {
	views []*WheelView
}

func NewSummaryScreen(views []*WheelView) *SummaryScreen {
	return &SummaryScreen{views: views}
}

func (s *SummaryScreen) Name() string { return "Summary" }
func (s *SummaryScreen) OnEnter()     {}
func (s *SummaryScreen) OnExit()      {}

func (s *SummaryScreen) Update() (*ScreenTransition, error) {
	if BackJustPressed() || EnterJustPressed() {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

// Lines returns one "name: label" line per wheel.
func (s *SummaryScreen) Lines() []string {
	lines := make([]string, 0, len(s.views))
	for _, v := range s.views {
		val := v.Wheel.Value()
		label := v.Wheel.Label(val)
		if label == "" {
			label = "-"
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%d)", v.Name, label, val))
	}
	return lines
}

func (s *SummaryScreen) Draw(dst *ebiten.Image) {
	x, y := float64(ScreenPadding), float64(ScreenPadding)
	DrawText(dst, "Selection", x, y, FontSizeTitle, ColorPrimary)
	y += FontSizeTitle * 2
	for _, line := range s.Lines() {
		DrawText(dst, line, x, y, FontSizeHeading, ColorText)
		y += FontSizeHeading * 1.6
	}
	DrawText(dst, "Enter or Esc to go back", x, y+FontSizeBody, FontSizeSmall, ColorTextMuted)
}
