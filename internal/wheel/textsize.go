package wheel

import (
	"math"
	"strconv"
)

// measureBaseSize is the text size used to compare label widths.
const measureBaseSize = 10

// FitTextSize returns the largest whole text size not above upper at which
// text measures no wider than maxWidth. It never returns less than 1 for
// non-empty text that has room to be drawn.
func FitTextSize(measure func(string, float64) float64, maxWidth float64, text string, upper float64) float64 {
	if measure == nil || text == "" || upper <= 1 {
		return upper
	}
	if maxWidth <= 0 {
		return 0
	}
	if measure(text, upper) <= maxWidth {
		return upper
	}
	lo, hi := 1, int(math.Ceil(upper))
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(text, float64(mid)) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return float64(lo)
}

// longestLabel returns the widest label of the range.
func (w *Wheel) longestLabel() string {
	if w.content == nil || w.Measure == nil {
		lo, hi := strconv.Itoa(w.min), strconv.Itoa(w.max)
		if len(lo) > len(hi) {
			return lo
		}
		return hi
	}
	var best string
	var bestW float64
	for _, s := range w.content {
		if s == "" {
			continue
		}
		if mw := w.Measure(s, measureBaseSize); mw >= bestW {
			best, bestW = s, mw
		}
	}
	return best
}

// fitTextSize shrinks the base text size until the widest label fits the
// selected slot and, when drawn, the selection marker.
func (w *Wheel) fitTextSize() float64 {
	size := w.baseTextSize
	if w.Measure == nil || len(w.slots) == 0 {
		return size
	}
	longest := w.longestLabel()
	center := w.slots[w.ring.centerSlot()]
	scale := ScaleFactor(center.factor(0))

	switch w.orientation {
	case Horizontal:
		size = min(size, FitTextSize(w.Measure, scale*float64(w.elementSize), longest, size))
		if w.selectLine && w.selectLineScale <= 0.5 {
			size = min(size, math.Floor(float64(w.height)*(0.5-w.selectLineScale)))
		}
	default:
		text := longest
		if w.label != "" {
			// the suffix sits beside centered text, so reserve it on both sides
			text += " " + w.label + " " + w.label
		}
		size = min(size, FitTextSize(w.Measure, scale*float64(w.width), text, size))
		if w.selectLine && w.selectLineScale > 0 {
			size = min(size, FitTextSize(w.Measure, float64(w.marker.right-w.marker.left), text, size))
		}
	}
	return max(size, 0)
}
