package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// EnterJustPressed reports a plain Enter press; Alt+Enter is fullscreen.
func EnterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !IsModifierPressed()
}

func BackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports a key press on the frame it goes down and then at the
// repeat rate while held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return repeatFires(keyHoldFrames[key])
}

// repeatFires reports whether a key held for frames previous updates fires
// this update.
func repeatFires(frames int) bool {
	if frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}
