package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

// GetFace returns a cached face. Wheel text sizes are whole numbers, so the
// cache stays small even while slots are scaled.
func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	DrawTextAlpha(dst, txt, x, y, size, clr, 1)
}

// DrawTextAlpha draws txt with its color faded by alpha in [0,1].
func DrawTextAlpha(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color, alpha float64) {
	if size <= 0 || txt == "" {
		return
	}
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, txt, face, op)
}

// DrawTextCentered draws txt centered on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color, alpha float64) {
	if size <= 0 || txt == "" {
		return
	}
	w, h := MeasureText(txt, size)
	DrawTextAlpha(dst, txt, cx-w/2, cy-h/2, size, clr, alpha)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// MeasureWidth matches the wheel's text measurement hook.
func MeasureWidth(txt string, size float64) float64 {
	if fontSource == nil || size <= 0 {
		return 0
	}
	w, _ := MeasureText(txt, size)
	return w
}
