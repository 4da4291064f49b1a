// Package wheel implements the state engine of a wheel picker: a finite or
// cyclic list of labeled integers scrolled along one axis, with the selected
// value centered under a selection marker.
//
// The engine is headless. A host feeds it a surface size, pointer samples and
// frame ticks, optionally supplies text measurement, and draws the Frame it
// returns.
package wheel

import (
	"fmt"
	"image/color"
	"time"
)

// MinVisibleCount is the smallest number of visible slots a wheel renders.
const MinVisibleCount = 3

// Gesture holds the host-specific touch constants.
type Gesture struct {
	// DragThreshold is the axis distance in px a pointer must travel before a
	// press turns into a drag.
	DragThreshold float64
	// MinFlingVelocity and MaxFlingVelocity are in px/s.
	MinFlingVelocity float64
	MaxFlingVelocity float64
	// SnapDuration is the time taken to settle on the nearest item.
	SnapDuration time.Duration
	// StepDuration is the time taken by Step to move between items.
	StepDuration time.Duration
}

// DefaultGesture returns touch constants matching a typical mobile platform at
// 1x density.
func DefaultGesture() Gesture {
	return Gesture{
		DragThreshold:    8,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 4000,
		SnapDuration:     800 * time.Millisecond,
		StepDuration:     200 * time.Millisecond,
	}
}

// Options configures a new Wheel.
type Options struct {
	Orientation  Orientation
	Min, Max     int
	Value        int
	Cyclic       bool
	VisibleCount int
	// ItemHeight is the slot length of a vertical wheel. Horizontal wheels
	// divide their width evenly between the visible slots.
	ItemHeight int
	TextSize   float64
	TextColor  color.Color
	MinAlpha   float64
	// Distort enables the perspective compression of vertical slots.
	Distort bool

	SelectLine bool
	// SelectLineScale is the marker length as a fraction of the view when in
	// [0,1], or an absolute length in px when greater than 1.
	SelectLineScale float64
	SelectLineWidth float64
	SelectLineColor color.Color

	// Label is a suffix drawn beside the selected item of a vertical wheel.
	Label string
	// Values replaces the numeric labels; see SetDisplayedValues.
	Values []string

	Gesture Gesture
}

// DefaultOptions returns the options of a plain 1..10 cyclic vertical wheel.
func DefaultOptions() Options {
	return Options{
		Orientation:     Vertical,
		Min:             1,
		Max:             10,
		Value:           1,
		Cyclic:          true,
		VisibleCount:    7,
		ItemHeight:      40,
		TextSize:        30,
		TextColor:       color.Black,
		MinAlpha:        0.1,
		Distort:         true,
		SelectLine:      true,
		SelectLineScale: 0.8,
		SelectLineWidth: 1,
		SelectLineColor: color.RGBA{A: 0x66},
		Gesture:         DefaultGesture(),
	}
}

// Wheel is the picker engine. All methods must be called from the host's
// update goroutine.
type Wheel struct {
	// OnValueChange fires for every item boundary crossed while scrolling.
	OnValueChange func(old, new int)
	// OnValueSettle fires once a drag, fling or step has come to rest.
	OnValueSettle func(value int)
	// OnScrollStateChange fires on transitions between scroll states.
	OnScrollStateChange func(state ScrollState)

	// Invalidate asks the host for another frame. The host must call Tick on
	// every frame while Animating reports true.
	Invalidate func()
	// CapturePointer asks the host to route the current pointer gesture to
	// this wheel only.
	CapturePointer func()
	// Measure returns the rendered width of text at the given size. Without
	// it text is never shrunk to fit.
	Measure func(text string, size float64) float64

	orientation  Orientation
	min, max     int
	value        int
	cyclic       bool
	visibleCount int
	itemHeight   int
	baseTextSize float64
	textSize     float64
	textColor    color.Color
	minAlpha     float64
	distort      bool
	label        string
	content      []string

	selectLine      bool
	selectLineScale float64
	selectLineWidth float64
	selectLineColor color.Color

	gesture Gesture

	width, height int
	slots         []slotGeometry
	elementSize   int
	offset        int
	restOffset    int
	marker        markerRect

	ring   *ring
	labels *labelCache
	motion motion
	frame  Frame
}

// New creates a wheel from opts. It fails if the range is invalid.
func New(opts Options) (*Wheel, error) {
	if err := checkRange(opts.Min, opts.Max); err != nil {
		return nil, err
	}
	w := &Wheel{
		orientation:     opts.Orientation,
		min:             opts.Min,
		max:             opts.Max,
		cyclic:          opts.Cyclic,
		visibleCount:    max(opts.VisibleCount, MinVisibleCount),
		itemHeight:      opts.ItemHeight,
		baseTextSize:    opts.TextSize,
		textColor:       opts.TextColor,
		minAlpha:        clampUnit(opts.MinAlpha),
		distort:         opts.Distort,
		label:           opts.Label,
		selectLine:      opts.SelectLine,
		selectLineScale: opts.SelectLineScale,
		selectLineWidth: opts.SelectLineWidth,
		selectLineColor: opts.SelectLineColor,
		gesture:         opts.Gesture,
		labels:          newLabelCache(),
	}
	if w.textColor == nil {
		w.textColor = color.Black
	}
	w.textSize = w.baseTextSize
	w.ring = newRing(w.visibleCount, w.min, w.max, w.cyclic)
	w.value = w.normalize(opts.Value)
	if opts.Values != nil {
		w.SetDisplayedValues(opts.Values)
	}
	w.relayout()
	return w, nil
}

func checkRange(min, max int) error {
	if min < 0 || max < 0 {
		return fmt.Errorf("range [%d,%d]: %w", min, max, ErrNegativeBound)
	}
	if min > max {
		return fmt.Errorf("range [%d,%d]: %w", min, max, ErrInvalidRange)
	}
	return nil
}

// Layout sets the surface size and recomputes all geometry. Non-positive
// sizes are ignored.
func (w *Wheel) Layout(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.relayout()
}

// Size returns the surface size last passed to Layout.
func (w *Wheel) Size() (width, height int) {
	return w.width, w.height
}

// relayout resets the window to rest and rebuilds geometry, the marker and the
// fitted text size.
func (w *Wheel) relayout() {
	w.rebuild()
	w.restOffset = 0
	w.offset = w.restOffset
	w.elementSize = w.computeElementSize()
	w.textSize = w.baseTextSize
	if w.width <= 0 || w.height <= 0 {
		w.slots = nil
		w.invalidate()
		return
	}
	w.slots = layoutSlots(w.orientation, w.visibleCount, w.width, w.height, w.elementSize)
	w.marker = w.computeMarker()
	w.textSize = w.fitTextSize()
	w.invalidate()
}

func (w *Wheel) computeElementSize() int {
	if w.orientation == Horizontal {
		if w.visibleCount == 0 {
			return 0
		}
		return w.width / w.visibleCount
	}
	return w.itemHeight
}

// rebuild recenters the ring on the current value and drops cached labels.
func (w *Wheel) rebuild() {
	w.ring.min, w.ring.max, w.ring.cyclic = w.min, w.max, w.cyclic
	w.labels.reset(w.min, w.max, w.content)
	w.ring.rebuild(w.value)
	for _, idx := range w.ring.slots {
		w.labels.lookup(idx)
	}
}

// normalize wraps v into range on a cyclic wheel and clamps it otherwise.
func (w *Wheel) normalize(v int) int {
	if w.ring.wraps() {
		return w.ring.wrap(v)
	}
	return clampInt(v, w.min, w.max)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// commitValue is the single mutation path for the selected value.
func (w *Wheel) commitValue(v int, notify bool) {
	v = w.normalize(v)
	if v == w.value {
		return
	}
	prev := w.value
	w.value = v
	if notify && w.OnValueChange != nil {
		w.OnValueChange(prev, v)
	}
	w.rebuild()
	w.invalidate()
}

func (w *Wheel) invalidate() {
	if w.Invalidate != nil {
		w.Invalidate()
	}
}

// ScrollBy moves the wheel by the component of (dx, dy) along its scroll
// axis. Positive deltas move toward lower values.
func (w *Wheel) ScrollBy(dx, dy int) {
	if w.orientation == Vertical {
		w.scrollAxis(dy)
	} else {
		w.scrollAxis(dx)
	}
}

// scrollAxis applies delta and shifts the ring once per element crossed. It
// reports whether the wheel moved.
func (w *Wheel) scrollAxis(delta int) bool {
	if delta == 0 || w.elementSize <= 0 {
		return false
	}
	// At a bound the offset may only return to rest, never pass it.
	if delta > 0 && w.ring.atLowerBound() {
		if w.offset >= w.restOffset {
			return false
		}
		w.offset = min(w.offset+delta, w.restOffset)
		return true
	}
	if delta < 0 && w.ring.atUpperBound() {
		if w.offset <= w.restOffset {
			return false
		}
		w.offset = max(w.offset+delta, w.restOffset)
		return true
	}
	w.offset += delta
	trig := w.elementSize / 2
	for w.offset-w.restOffset > trig {
		w.offset -= w.elementSize
		w.ring.shiftBackward()
		w.commitValue(w.ring.center(), true)
		if w.ring.atLowerBound() {
			w.offset = w.restOffset
		}
	}
	for w.offset-w.restOffset < -trig {
		w.offset += w.elementSize
		w.ring.shiftForward()
		w.commitValue(w.ring.center(), true)
		if w.ring.atUpperBound() {
			w.offset = w.restOffset
		}
	}
	return true
}

// Value returns the selected value.
func (w *Wheel) Value() int { return w.value }

// SetValue selects v, clamped or wrapped into range. It does not fire
// OnValueChange.
func (w *Wheel) SetValue(v int) {
	v = w.normalize(v)
	if v == w.value {
		return
	}
	w.value = v
	w.rebuild()
	w.invalidate()
}

// Offset returns the scroll offset from the rest position in px.
func (w *Wheel) Offset() int { return w.offset - w.restOffset }

// ElementSize returns the slot length along the scroll axis in px.
func (w *Wheel) ElementSize() int { return w.elementSize }

// Range returns the inclusive value range.
func (w *Wheel) Range() (min, max int) { return w.min, w.max }

// SetRange replaces the value range and re-clamps the selected value.
func (w *Wheel) SetRange(min, max int) error {
	if err := checkRange(min, max); err != nil {
		return err
	}
	if min == w.min && max == w.max {
		return nil
	}
	w.min, w.max = min, max
	w.ring.min, w.ring.max = min, max
	w.value = clampInt(w.value, min, max)
	w.relayout()
	return nil
}

// SetMinValue changes the lower bound.
func (w *Wheel) SetMinValue(v int) error { return w.SetRange(v, w.max) }

// SetMaxValue changes the upper bound.
func (w *Wheel) SetMaxValue(v int) error { return w.SetRange(w.min, v) }

// Cyclic reports whether the wheel wraps past its bounds.
func (w *Wheel) Cyclic() bool { return w.cyclic }

// SetCyclic enables or disables wrapping past the range bounds.
func (w *Wheel) SetCyclic(cyclic bool) {
	if cyclic == w.cyclic {
		return
	}
	w.cyclic = cyclic
	w.rebuild()
	w.invalidate()
}

// VisibleCount returns the number of rendered slots.
func (w *Wheel) VisibleCount() int { return w.visibleCount }

// SetVisibleCount changes the number of rendered slots. Counts below
// MinVisibleCount are raised to it.
func (w *Wheel) SetVisibleCount(n int) {
	n = max(n, MinVisibleCount)
	if n == w.visibleCount {
		return
	}
	w.visibleCount = n
	w.ring.slots = make([]int, n)
	w.relayout()
}

// SetDisplayedValues replaces the numeric labels with values. A non-empty list
// shrinks the visible count to its length when needed and sets the range to
// [1, len(values)-1]. Entry i labels value i+1, so the last entry is never
// shown. A nil or empty list restores numeric labels.
func (w *Wheel) SetDisplayedValues(values []string) {
	if len(values) == 0 {
		w.content = nil
		w.relayout()
		return
	}
	w.content = append([]string(nil), values...)
	if w.visibleCount > len(values) {
		w.visibleCount = max(len(values), MinVisibleCount)
		w.ring.slots = make([]int, w.visibleCount)
	}
	w.min, w.max = 1, max(len(values)-1, 1)
	w.ring.min, w.ring.max = w.min, w.max
	w.value = clampInt(w.value, w.min, w.max)
	w.relayout()
}

// DisplayedValues returns the label list, or nil for numeric labels.
func (w *Wheel) DisplayedValues() []string { return w.content }

// Label returns the display string of a logical value, or "" when it is out
// of range.
func (w *Wheel) Label(value int) string {
	return w.labels.label(value)
}

// Orientation returns the scroll axis.
func (w *Wheel) Orientation() Orientation { return w.orientation }

// SetOrientation switches the scroll axis and returns the wheel to rest.
func (w *Wheel) SetOrientation(o Orientation) {
	if o == w.orientation {
		return
	}
	w.orientation = o
	w.relayout()
}

// SetItemHeight changes the slot length of a vertical wheel.
func (w *Wheel) SetItemHeight(h int) {
	w.itemHeight = h
	w.relayout()
}

// SetTextSize changes the base text size; it may still be shrunk to fit.
func (w *Wheel) SetTextSize(size float64) {
	w.baseTextSize = size
	w.relayout()
}

// TextSize returns the fitted text size of the selected item.
func (w *Wheel) TextSize() float64 { return w.textSize }

// SetTextColor changes the label color.
func (w *Wheel) SetTextColor(c color.Color) {
	w.textColor = c
	w.invalidate()
}

// SetMinAlpha sets the opacity of the outermost slots, clamped to [0,1].
func (w *Wheel) SetMinAlpha(a float64) {
	w.minAlpha = clampUnit(a)
	w.invalidate()
}

// SetDistort toggles the perspective compression of vertical slots.
func (w *Wheel) SetDistort(on bool) {
	w.distort = on
	w.invalidate()
}

// SetLabel sets the suffix drawn beside the selected item.
func (w *Wheel) SetLabel(label string) {
	w.label = label
	w.relayout()
}

// SetSelectLine shows or hides the selection marker.
func (w *Wheel) SetSelectLine(on bool) {
	w.selectLine = on
	w.relayout()
}

// SetSelectLineScale sets the marker length: a fraction of the view up to 1,
// absolute pixels above it.
func (w *Wheel) SetSelectLineScale(scale float64) {
	w.selectLineScale = scale
	w.relayout()
}

// SetSelectLineWidth sets the marker stroke width.
func (w *Wheel) SetSelectLineWidth(width float64) {
	w.selectLineWidth = width
	w.invalidate()
}

// SetSelectLineColor sets the marker color.
func (w *Wheel) SetSelectLineColor(c color.Color) {
	w.selectLineColor = c
	w.invalidate()
}

// SetGesture replaces the touch constants.
func (w *Wheel) SetGesture(g Gesture) {
	w.gesture = g
}
