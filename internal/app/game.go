package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/wheelview/internal/config"
	"github.com/depeter/wheelview/internal/ui"
	"github.com/depeter/wheelview/internal/wheel"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager
	Views   []*ui.WheelView

	Width, Height int

	background color.Color
}

// NewGame creates the Game from a validated config.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		Config:     cfg,
		Screens:    ui.NewScreenManager(),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		background: ui.ColorBackground,
	}
	if c, err := config.ParseColor(cfg.Window.Background); err == nil {
		g.background = c
	}
	return g
}

// BuildViews creates one view per configured wheel and wires its listeners.
func (g *Game) BuildViews() error {
	gesture := g.Config.Gesture.Gesture()
	g.Views = g.Views[:0]
	for i, wc := range g.Config.Wheels {
		opts, err := wc.Options(gesture)
		if err != nil {
			return fmt.Errorf("wheel %d (%q): %w", i, wc.Name, err)
		}
		w, err := wheel.New(opts)
		if err != nil {
			return fmt.Errorf("wheel %d (%q): %w", i, wc.Name, err)
		}
		name := wc.Name
		if name == "" {
			name = fmt.Sprintf("wheel %d", i+1)
		}
		v := ui.NewWheelView(name, w)
		g.Observe(v)
		g.Views = append(g.Views, v)
	}
	return nil
}

// Observe routes the wheel's listener events to the debug overlay, and to the
// log when debug is enabled.
func (g *Game) Observe(v *ui.WheelView) {
	w := v.Wheel
	w.OnValueChange = func(old, new int) {
		g.event("%s: %s -> %s", v.Name, w.Label(old), w.Label(new))
	}
	w.OnValueSettle = func(value int) {
		g.event("%s: settled on %s (%d)", v.Name, w.Label(value), value)
	}
	w.OnScrollStateChange = func(s wheel.ScrollState) {
		g.event("%s: %s", v.Name, s)
	}
}

func (g *Game) event(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	ui.RecordEvent(msg)
	if g.Config.Debug {
		log.Printf("%s", msg)
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if keyJustPressed(g.Config.Keybinds.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Views)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
