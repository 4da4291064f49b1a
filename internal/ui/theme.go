package ui

import "image/color"

// Colors
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	ScreenPadding = 40
	WheelGap      = 24
	WheelTitleH   = 32
	FocusBorderW  = 2

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// HorizontalWheelHeight is the height given to each horizontal wheel;
	// vertical wheels share the remaining space in one row.
	HorizontalWheelHeight = 120
)
