package wheel

// Orientation selects the scroll axis of a wheel.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

const (
	minScale   = 0.6
	scaleRange = 1 - minScale
)

// ScaleFactor maps a center-distance factor in [0,1] to a text scale in
// [0.6,1]. Slots at the visual center are drawn at full size.
func ScaleFactor(f float64) float64 {
	f = clampUnit(f)
	return minScale + scaleRange*f*f
}

// AlphaFactor maps a center-distance factor in [0,1] to an opacity in
// [minAlpha,1].
func AlphaFactor(f, minAlpha float64) float64 {
	f = clampUnit(f)
	minAlpha = clampUnit(minAlpha)
	return minAlpha + (1-minAlpha)*f*f
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// slotGeometry positions one slot of the wheel. The variant is picked once per
// layout from the wheel's orientation.
type slotGeometry interface {
	// rest returns the undistorted slot center at offset 0.
	rest() (x, y float64)
	// factor returns the slot's closeness to the visual center at the given
	// scroll offset: 1 at the center, 0 at the edge of the wheel.
	factor(offset int) float64
	// position returns the distorted draw center at the given offset.
	position(offset int) (x, y float64)
	// size returns the slot's draw length on the scroll axis.
	size(offset int) float64
}

type verticalSlot struct {
	centerX, centerY int
	viewHeight       int
	// stacked height of all visible items and its top inset in the view
	totalHeight int
	totalInset  int
}

func (s verticalSlot) rest() (float64, float64) {
	return float64(s.centerX), float64(s.centerY)
}

func (s verticalSlot) factor(offset int) float64 {
	if s.totalHeight <= 0 {
		return 0
	}
	cy := s.centerY + offset - s.totalInset
	half := float64(s.totalHeight) * 0.5
	var f float64
	if cy > s.totalHeight/2 {
		f = float64(s.totalHeight-cy) / half
	} else {
		f = float64(cy) / half
	}
	return clampUnit(f)
}

func (s verticalSlot) position(offset int) (float64, float64) {
	cy := float64(offset + s.centerY)
	h := float64(s.viewHeight)
	scale := ScaleFactor(s.factor(offset))
	if cy > h/2 {
		return float64(s.centerX), h - (h-cy)*scale
	}
	return float64(s.centerX), cy * scale
}

func (s verticalSlot) size(int) float64 { return 0 }

type horizontalSlot struct {
	centerX, centerY int
	viewWidth        int
	itemSize         int
}

func (s horizontalSlot) rest() (float64, float64) {
	return float64(s.centerX), float64(s.centerY)
}

func (s horizontalSlot) factor(offset int) float64 {
	half := s.viewWidth / 2
	if half <= 0 {
		return 0
	}
	cx := s.centerX + offset
	var f float64
	if cx > half {
		f = float64(s.viewWidth-cx) / float64(half)
	} else {
		f = float64(cx) / float64(half)
	}
	return clampUnit(f)
}

func (s horizontalSlot) position(offset int) (float64, float64) {
	cx := float64(s.centerX + offset)
	w := float64(s.viewWidth)
	scale := ScaleFactor(s.factor(offset))
	if cx > w/2 {
		return w - (w-cx)*scale, float64(s.centerY)
	}
	return cx * scale, float64(s.centerY)
}

func (s horizontalSlot) size(offset int) float64 {
	return float64(s.itemSize) * ScaleFactor(s.factor(offset))
}

// layoutSlots builds the slot geometry for a view of the given size.
func layoutSlots(o Orientation, count, width, height, elementSize int) []slotGeometry {
	slots := make([]slotGeometry, count)
	switch o {
	case Horizontal:
		for i := range slots {
			slots[i] = horizontalSlot{
				centerX:   elementSize/2 + elementSize*i,
				centerY:   height / 2,
				viewWidth: width,
				itemSize:  elementSize,
			}
		}
	default:
		total := elementSize * count
		for i := range slots {
			slots[i] = verticalSlot{
				centerX:     width / 2,
				centerY:     height/2 + (i-count/2)*elementSize,
				viewHeight:  height,
				totalHeight: total,
				totalInset:  (height - total) / 2,
			}
		}
	}
	return slots
}
