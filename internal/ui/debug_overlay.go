package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugEvent is one wheel listener event shown in the overlay.
type DebugEvent struct {
	Time    time.Time
	Message string
}

const maxDebugEvents = 10

// eventLog keeps the most recent events, oldest first.
type eventLog struct {
	events []DebugEvent
}

func (l *eventLog) add(ev DebugEvent) {
	if len(l.events) == maxDebugEvents {
		copy(l.events, l.events[1:])
		l.events = l.events[:maxDebugEvents-1]
	}
	l.events = append(l.events, ev)
}

var debugEvents eventLog

// RecordEvent adds a listener event to the overlay's log.
func RecordEvent(msg string) {
	debugEvents.add(DebugEvent{Time: time.Now(), Message: msg})
}

// RecentEvents returns the logged events, oldest first.
func RecentEvents() []DebugEvent {
	return debugEvents.events
}

// WheelStateLine summarizes a view's engine state.
func WheelStateLine(v *WheelView) string {
	w := v.Wheel
	lo, hi := w.Range()
	return fmt.Sprintf("%-10s value=%-4d [%d,%d] offset=%+4d %-12s text=%.0f",
		v.Name, w.Value(), lo, hi, w.Offset(), w.ScrollState(), w.TextSize())
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, views []*WheelView) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	// Collect data
	events := RecentEvents()

	// Calculate overlay height
	lines := 2 // header + separator
	lines += max(len(views), 1)
	lines += 2 // blank + events header
	lines += max(len(events), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 520.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	// Background
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	// Header
	DrawText(screen, "Debug: wheels (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, "--- state ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(views) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	}
	// One line per wheel, highlighted while animating
	for _, v := range views {
		clr := ColorText
		if v.Wheel.Animating() {
			clr = ColorSuccess
		}
		DrawText(screen, WheelStateLine(v), x, y, FontSizeSmall, clr)
		y += lineH
	}

	// Recent listener events
	y += lineH * 0.5
	DrawText(screen, "--- events ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(events) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	now := time.Now()
	for _, ev := range events {
		age := now.Sub(ev.Time).Truncate(time.Millisecond)
		DrawText(screen, fmt.Sprintf("%s  %s ago", ev.Message, age), x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
