package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/depeter/wheelview/internal/wheel"
)

var (
	accent   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	drumBody = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	rowColor = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// iconRows is the number of items painted on the drum.
const iconRows = 5

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Fill background
	fillRect(img, 0, 0, size, size, darkBG)

	// Drum body, then the items and the selection marker over it
	fillRoundedRect(img, s*0.14, s*0.06, s*0.72, s*0.88, s*0.12, drumBody)
	drawRows(img, s)
	drawMarker(img, s)

	return img
}

// drawRows paints one bar per item, narrowed and faded toward the drum edges
// the way the picker renders its slots.
func drawRows(img *image.RGBA, s float64) {
	top, height := s*0.10, s*0.80
	pitch := height / iconRows
	for i := 0; i < iconRows; i++ {
		cy := top + pitch*(float64(i)+0.5)
		// 1 at the drum center, 0 at its edge
		f := 1 - math.Abs(cy-s/2)/(height/2)
		scale := wheel.ScaleFactor(f)
		alpha := wheel.AlphaFactor(f, 0.15)

		w := s * 0.44 * scale
		h := math.Max(pitch*0.32*scale, 1)
		c := rowColor
		c.A = uint8(alpha * 0xFF)
		fillRoundedRect(img, (s-w)/2, cy-h/2, w, h, h/2, c)
	}
}

func drawMarker(img *image.RGBA, s float64) {
	pitch := s * 0.80 / iconRows
	thick := max(int(s/32), 1)
	// Lines above and below the center row
	x0 := int(s * 0.20)
	w := int(s * 0.60)
	fillRect(img, x0, int(s/2-pitch/2)-thick, w, thick, accent)
	fillRect(img, x0, int(s/2+pitch/2), w, thick, accent)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	r2 := rf * rf
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// distance outside the inner rect, zero when not in a corner
			dx := math.Max(math.Max(xf+rf-float64(x), float64(x)-(xf+wf-rf)), 0)
			dy := math.Max(math.Max(yf+rf-float64(y), float64(y)-(yf+hf-rf)), 0)
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites c over the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	// c.RGBA is premultiplied, so only the destination is scaled
	nr := r0 + uint32(existing.R)*257*inv/0xFFFF
	ng := g0 + uint32(existing.G)*257*inv/0xFFFF
	nb := b0 + uint32(existing.B)*257*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
