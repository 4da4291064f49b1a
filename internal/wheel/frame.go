package wheel

import "image/color"

// SlotFrame describes how to draw one visible slot.
type SlotFrame struct {
	// Value is the logical index shown in the slot.
	Value int
	// Label is empty when the slot is past a bound and must not be drawn.
	Label    string
	X, Y     float64
	Size     float64
	Scale    float64
	Alpha    float64
	TextSize float64
}

// Line is a segment in view coordinates.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Marker is the selection indicator around the centered slot.
type Marker struct {
	Visible bool
	Lines   [2]Line
	Width   float64
	Color   color.Color
}

// SuffixFrame places the label suffix beside the selected value.
type SuffixFrame struct {
	Text     string
	X, Y     float64
	TextSize float64
}

// Frame is everything the host needs to draw the wheel.
type Frame struct {
	Slots     []SlotFrame
	TextColor color.Color
	Marker    Marker
	Suffix    *SuffixFrame
}

type markerRect struct {
	left, top, right, bottom int
}

func (r markerRect) centerX() int { return (r.left + r.right) / 2 }
func (r markerRect) centerY() int { return (r.top + r.bottom) / 2 }

func (w *Wheel) computeMarker() markerRect {
	W, H, E := w.width, w.height, w.elementSize
	scale := w.selectLineScale
	if w.orientation == Horizontal {
		lineH := H / 2
		if scale >= 0 && scale <= 1 {
			lineH = int(float64(H/2) * scale)
		} else if scale > 1 {
			lineH = int(scale)
		}
		return markerRect{
			left:   (W - E) / 2,
			top:    (H/2 - lineH) / 2,
			right:  (W + E) / 2,
			bottom: H - (H/2-lineH)/2,
		}
	}
	lineW := W
	if scale >= 0 && scale <= 1 {
		lineW = int(float64(W) * scale)
	} else if scale > 1 {
		lineW = int(scale)
	}
	return markerRect{
		left:   (W - lineW) / 2,
		top:    (H - E) / 2,
		right:  (W + lineW) / 2,
		bottom: (H + E) / 2,
	}
}

// Frame computes the draw state for the current offset. The returned Slots
// slice is reused by the next call.
func (w *Wheel) Frame() Frame {
	f := &w.frame
	f.Slots = f.Slots[:0]
	f.TextColor = w.textColor
	f.Suffix = nil
	f.Marker = Marker{}
	if len(w.slots) == 0 {
		return *f
	}

	offset := w.offset
	for i, g := range w.slots {
		idx := w.ring.slots[i]
		fac := g.factor(offset)
		scale := ScaleFactor(fac)
		var x, y float64
		if w.orientation == Vertical && !w.distort {
			x, y = g.rest()
			y += float64(offset)
		} else {
			x, y = g.position(offset)
		}
		f.Slots = append(f.Slots, SlotFrame{
			Value:    idx,
			Label:    w.labels.lookup(idx),
			X:        x,
			Y:        y,
			Size:     g.size(offset),
			Scale:    scale,
			Alpha:    AlphaFactor(fac, w.minAlpha),
			TextSize: scale * w.textSize,
		})
	}

	if w.selectLine {
		r := w.marker
		m := Marker{Visible: true, Width: w.selectLineWidth, Color: w.selectLineColor}
		if w.orientation == Horizontal {
			cx, cy := float64(r.centerX()), float64(r.centerY())
			m.Lines[0] = Line{cx, cy - float64(r.top), cx, float64(r.top)}
			m.Lines[1] = Line{cx, cy + float64(r.top), cx, float64(r.bottom)}
		} else {
			m.Lines[0] = Line{float64(r.left), float64(r.top), float64(r.right), float64(r.top)}
			m.Lines[1] = Line{float64(r.left), float64(r.bottom), float64(r.right), float64(r.bottom)}
		}
		f.Marker = m
	}

	if w.label != "" && w.orientation == Vertical {
		cx, _ := w.slots[w.ring.centerSlot()].rest()
		x := cx
		if w.Measure != nil {
			x += w.Measure(w.longestLabel(), w.textSize)/2 + w.Measure(" "+w.label, w.textSize)/2
		}
		f.Suffix = &SuffixFrame{
			Text:     w.label,
			X:        x,
			Y:        float64(w.height) / 2,
			TextSize: w.textSize,
		}
	}
	return *f
}
