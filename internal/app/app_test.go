package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/wheelview/internal/config"
	"github.com/depeter/wheelview/internal/ui"
	"github.com/depeter/wheelview/internal/wheel"
)

func TestParseKey(t *testing.T) {
	k, ok := parseKey(" Tab ")
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyTab, k)

	_, ok = parseKey("hyper")
	assert.False(t, ok)
}

func TestPickerKeysDefaults(t *testing.T) {
	keys, err := PickerKeys(config.DefaultConfig().Keybinds)
	require.NoError(t, err)
	assert.Equal(t, ui.PickerKeys{
		FocusNext: ebiten.KeyTab,
		FocusPrev: ebiten.KeyBackspace,
		StepUp:    ebiten.KeyArrowUp,
		StepDown:  ebiten.KeyArrowDown,
	}, keys)
}

func TestPickerKeysRejectsUnknown(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	kb.StepDown = "wheel"
	_, err := PickerKeys(kb)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "step_down")

	kb = config.DefaultConfig().Keybinds
	kb.Fullscreen = ""
	_, err = PickerKeys(kb)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestBuildViews(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewGame(cfg)
	require.NoError(t, g.BuildViews())
	require.Len(t, g.Views, len(cfg.Wheels))

	assert.Equal(t, "weather", g.Views[0].Name)
	assert.Equal(t, "sunny", g.Views[0].Wheel.Label(1))
	assert.Equal(t, wheel.Horizontal, g.Views[2].Wheel.Orientation())
	assert.Equal(t, 30, g.Views[2].Wheel.Value())
}

func TestBuildViewsReportsBadWheel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Wheels[1].Min, cfg.Wheels[1].Max = 5, 2
	g := NewGame(cfg)
	err := g.BuildViews()
	assert.ErrorIs(t, err, wheel.ErrInvalidRange)
	assert.Contains(t, err.Error(), "minutes")
}

func TestObserveRecordsEvents(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewGame(cfg)
	require.NoError(t, g.BuildViews())

	v := g.Views[1]
	v.SetBounds(0, 0, 200, 400)
	v.Wheel.ScrollBy(0, -40)

	events := ui.RecentEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, "minutes: 5 -> 6", events[len(events)-1].Message)
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	g := NewGame(config.DefaultConfig())
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 960, w)
	assert.Equal(t, 540, h)
}
