package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/wheelview/internal/constants"
	"github.com/depeter/wheelview/internal/wheel"
)

var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrUnknownOrientation = errors.New("unknown orientation")
	ErrNoWheels           = errors.New("no wheels configured")
	ErrWindowSize         = errors.New("window size must be positive")
)

type Config struct {
	Debug    bool          `toml:"debug"`
	Window   WindowConfig  `toml:"window"`
	Gesture  GestureConfig `toml:"gesture"`
	Keybinds KeybindConfig `toml:"keybinds"`
	Wheels   []WheelConfig `toml:"wheels"`
}

type WindowConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// GestureConfig overrides the touch constants. Zero fields keep the defaults.
type GestureConfig struct {
	DragThreshold    float64 `toml:"drag_threshold"`
	MinFlingVelocity float64 `toml:"min_fling_velocity"`
	MaxFlingVelocity float64 `toml:"max_fling_velocity"`
	SnapMS           int     `toml:"snap_ms"`
	StepMS           int     `toml:"step_ms"`
	// MouseWheelMS is the minimum interval between mouse-wheel steps.
	MouseWheelMS int `toml:"mouse_wheel_ms"`
}

type KeybindConfig struct {
	FocusNext  string `toml:"focus_next"`
	FocusPrev  string `toml:"focus_prev"`
	StepUp     string `toml:"step_up"`
	StepDown   string `toml:"step_down"`
	Fullscreen string `toml:"fullscreen"`
}

// WheelConfig describes one picker. Pointer fields distinguish "unset" from a
// false or zero value; unset fields take the wheel defaults.
type WheelConfig struct {
	Name            string   `toml:"name"`
	Orientation     string   `toml:"orientation,omitempty"`
	Min             int      `toml:"min"`
	Max             int      `toml:"max"`
	Value           int      `toml:"value"`
	Cyclic          *bool    `toml:"cyclic,omitempty"`
	VisibleCount    int      `toml:"visible_count,omitempty"`
	ItemHeight      int      `toml:"item_height,omitempty"`
	TextSize        float64  `toml:"text_size,omitempty"`
	TextColor       string   `toml:"text_color,omitempty"`
	MinAlpha        *float64 `toml:"min_alpha,omitempty"`
	Distort         *bool    `toml:"distort,omitempty"`
	SelectLine      *bool    `toml:"select_line,omitempty"`
	SelectLineScale *float64 `toml:"select_line_scale,omitempty"`
	SelectLineWidth float64  `toml:"select_line_width,omitempty"`
	SelectLineColor string   `toml:"select_line_color,omitempty"`
	Label           string   `toml:"label,omitempty"`
	Values          []string `toml:"values,omitempty"`
}

func ptr[T any](v T) *T { return &v }

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Fullscreen: false,
			Width:      960,
			Height:     540,
			Background: "#101014",
		},
		Gesture: GestureConfig{
			DragThreshold:    8,
			MinFlingVelocity: 50,
			MaxFlingVelocity: 4000,
			SnapMS:           800,
			StepMS:           200,
			MouseWheelMS:     60,
		},
		Keybinds: KeybindConfig{
			FocusNext:  "Tab",
			FocusPrev:  "Backspace",
			StepUp:     "Up",
			StepDown:   "Down",
			Fullscreen: "F",
		},
		Wheels: []WheelConfig{
			{
				Name:      "weather",
				Value:     1,
				Cyclic:    ptr(true),
				TextColor: "#E0E0E0",
				// the last entry of a value list is never selectable
				Values:    []string{"sunny", "cloudy", "rain", "snow", "fog", "storm", "wind", ""},
			},
			{
				Name:      "minutes",
				Min:       1,
				Max:       10,
				Value:     5,
				Cyclic:    ptr(false),
				TextColor: "#E0E0E0",
				Label:     "min",
			},
			{
				Name:            "seconds",
				Orientation:     "horizontal",
				Min:             0,
				Max:             59,
				Value:           30,
				Cyclic:          ptr(true),
				VisibleCount:    5,
				TextColor:       "#E0E0E0",
				SelectLineScale: ptr(0.5),
				SelectLineColor: "#00A4DC",
			},
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFile), nil
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// wheels in the file replace the demo wheels instead of merging into them
	defaults := cfg.Wheels
	cfg.Wheels = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if !md.IsDefined("wheels") {
		cfg.Wheels = defaults
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate checks the window and every wheel, reporting the first failure.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrWindowSize)
	}
	if c.Window.Background != "" {
		if _, err := ParseColor(c.Window.Background); err != nil {
			return fmt.Errorf("window background: %w", err)
		}
	}
	if len(c.Wheels) == 0 {
		return ErrNoWheels
	}
	g := c.Gesture.Gesture()
	for i, wc := range c.Wheels {
		opts, err := wc.Options(g)
		if err == nil {
			_, err = wheel.New(opts)
		}
		if err != nil {
			return fmt.Errorf("wheel %d (%q): %w", i, wc.Name, err)
		}
	}
	return nil
}

// Gesture returns the wheel touch constants with the overrides applied.
func (gc GestureConfig) Gesture() wheel.Gesture {
	g := wheel.DefaultGesture()
	if gc.DragThreshold > 0 {
		g.DragThreshold = gc.DragThreshold
	}
	if gc.MinFlingVelocity > 0 {
		g.MinFlingVelocity = gc.MinFlingVelocity
	}
	if gc.MaxFlingVelocity > 0 {
		g.MaxFlingVelocity = gc.MaxFlingVelocity
	}
	if gc.SnapMS > 0 {
		g.SnapDuration = time.Duration(gc.SnapMS) * time.Millisecond
	}
	if gc.StepMS > 0 {
		g.StepDuration = time.Duration(gc.StepMS) * time.Millisecond
	}
	return g
}

// MouseWheelInterval returns the minimum time between mouse-wheel steps.
func (gc GestureConfig) MouseWheelInterval() time.Duration {
	if gc.MouseWheelMS <= 0 {
		return 60 * time.Millisecond
	}
	return time.Duration(gc.MouseWheelMS) * time.Millisecond
}

// Options converts the wheel config to engine options. A wheel with neither a
// range nor values gets the default 1..10 range.
func (wc WheelConfig) Options(g wheel.Gesture) (wheel.Options, error) {
	opts := wheel.DefaultOptions()
	opts.Gesture = g

	o, err := ParseOrientation(wc.Orientation)
	if err != nil {
		return opts, err
	}
	opts.Orientation = o

	if wc.Min != 0 || wc.Max != 0 {
		opts.Min, opts.Max = wc.Min, wc.Max
	}
	opts.Value = wc.Value
	if wc.Cyclic != nil {
		opts.Cyclic = *wc.Cyclic
	}
	if wc.VisibleCount > 0 {
		opts.VisibleCount = wc.VisibleCount
	}
	if wc.ItemHeight > 0 {
		opts.ItemHeight = wc.ItemHeight
	}
	if wc.TextSize > 0 {
		opts.TextSize = wc.TextSize
	}
	if wc.TextColor != "" {
		c, err := ParseColor(wc.TextColor)
		if err != nil {
			return opts, fmt.Errorf("text_color: %w", err)
		}
		opts.TextColor = c
	}
	if wc.MinAlpha != nil {
		opts.MinAlpha = *wc.MinAlpha
	}
	if wc.Distort != nil {
		opts.Distort = *wc.Distort
	}
	if wc.SelectLine != nil {
		opts.SelectLine = *wc.SelectLine
	}
	if wc.SelectLineScale != nil {
		opts.SelectLineScale = *wc.SelectLineScale
	}
	if wc.SelectLineWidth > 0 {
		opts.SelectLineWidth = wc.SelectLineWidth
	}
	if wc.SelectLineColor != "" {
		c, err := ParseColor(wc.SelectLineColor)
		if err != nil {
			return opts, fmt.Errorf("select_line_color: %w", err)
		}
		opts.SelectLineColor = c
	}
	opts.Label = wc.Label
	if len(wc.Values) > 0 {
		opts.Values = wc.Values
	}
	return opts, nil
}

// ParseOrientation accepts "vertical" (or empty) and "horizontal".
func ParseOrientation(s string) (wheel.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return wheel.Vertical, nil
	case "horizontal":
		return wheel.Horizontal, nil
	}
	return wheel.Vertical, fmt.Errorf("%q: %w", s, ErrUnknownOrientation)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	a := uint8(0xFF)
	if len(hex) == 8 {
		a = uint8(n >> 24)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: a}, nil
}
