package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/wheelview/assets/icon"
	"github.com/depeter/wheelview/internal/app"
	"github.com/depeter/wheelview/internal/config"
	"github.com/depeter/wheelview/internal/constants"
	"github.com/depeter/wheelview/internal/ui"
)

type options struct {
	configPath   string
	debug        bool
	writeDefault bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%s: %v", constants.AppName, err)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Wheel picker demo",
		Long:  "wheelview shows the wheels from its config file. Drag or fling a wheel, scroll it with the mouse wheel, or step the focused wheel from the keyboard.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.writeDefault {
				return writeDefault(opts.configPath)
			}
			return run(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/wheelview/config.toml)")
	f.BoolVar(&opts.debug, "debug", false, "log wheel events")
	f.BoolVar(&opts.writeDefault, "write-default", false, "write the default config and exit")
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func writeDefault(path string) error {
	cfg := config.DefaultConfig()
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := cfg.SaveFile(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Printf("Wrote default config to %s", path)
	return nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	keys, err := app.PickerKeys(cfg.Keybinds)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	game := app.NewGame(cfg)
	if err := game.BuildViews(); err != nil {
		return err
	}
	sf := &screenFactory{game: game, cfg: cfg, keys: keys}
	sf.pushPicker()

	if cfg.Debug {
		log.Printf("Loaded %d wheels", len(game.Views))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(constants.AppName)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(constants.TicksPerSecond)

	// RunGame returns nil when a screen ends the game with ebiten.Termination.
	return ebiten.RunGame(game)
}
