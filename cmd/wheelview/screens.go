package main

import (
	"github.com/depeter/wheelview/internal/app"
	"github.com/depeter/wheelview/internal/config"
	"github.com/depeter/wheelview/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game *app.Game
	cfg  *config.Config
	keys ui.PickerKeys
}

func (sf *screenFactory) newPicker() *ui.PickerScreen {
	return ui.NewPickerScreen(sf.game.Views, sf.keys, sf.game.Width, sf.game.Height,
		sf.cfg.Gesture.MouseWheelInterval())
}

func (sf *screenFactory) pushPicker() {
	sf.game.Screens.Replace(sf.newPicker())
}
