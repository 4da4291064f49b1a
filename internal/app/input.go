package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/wheelview/internal/config"
	"github.com/depeter/wheelview/internal/ui"
)

var ErrUnknownKey = errors.New("unknown key")

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

// PickerKeys resolves the picker bindings of kb.
func PickerKeys(kb config.KeybindConfig) (ui.PickerKeys, error) {
	var keys ui.PickerKeys
	for _, b := range []struct {
		field string
		name  string
		dst   *ebiten.Key
	}{
		{"focus_next", kb.FocusNext, &keys.FocusNext},
		{"focus_prev", kb.FocusPrev, &keys.FocusPrev},
		{"step_up", kb.StepUp, &keys.StepUp},
		{"step_down", kb.StepDown, &keys.StepDown},
	} {
		k, ok := parseKey(b.name)
		if !ok {
			return keys, fmt.Errorf("keybinds.%s %q: %w", b.field, b.name, ErrUnknownKey)
		}
		*b.dst = k
	}
	if _, ok := parseKey(kb.Fullscreen); !ok {
		return keys, fmt.Errorf("keybinds.fullscreen %q: %w", kb.Fullscreen, ErrUnknownKey)
	}
	return keys, nil
}
