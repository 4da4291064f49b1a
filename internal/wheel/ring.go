package wheel

// ring holds the logical indices of the visible slots, centered on the
// selected value.
type ring struct {
	min, max int
	cyclic   bool
	slots    []int
}

func newRing(count, min, max int, cyclic bool) *ring {
	return &ring{min: min, max: max, cyclic: cyclic, slots: make([]int, count)}
}

// wraps reports whether indices wrap around the range. A single-element range
// never wraps.
func (r *ring) wraps() bool {
	return r.cyclic && r.max > r.min
}

// wrap maps any index into [min, max] modulo the range length.
func (r *ring) wrap(index int) int {
	if index >= r.min && index <= r.max {
		return index
	}
	span := r.max - r.min + 1
	if span <= 1 {
		return r.min
	}
	m := (index - r.min) % span
	if m < 0 {
		m += span
	}
	return r.min + m
}

func (r *ring) centerSlot() int { return len(r.slots) / 2 }

func (r *ring) center() int { return r.slots[r.centerSlot()] }

func (r *ring) rebuild(value int) {
	c := r.centerSlot()
	for i := range r.slots {
		idx := value + (i - c)
		if r.wraps() {
			idx = r.wrap(idx)
		}
		r.slots[i] = idx
	}
}

// shiftForward drops the head slot and appends the successor of the tail.
func (r *ring) shiftForward() {
	n := len(r.slots)
	copy(r.slots, r.slots[1:])
	next := r.slots[n-2] + 1
	if r.wraps() {
		next = r.wrap(next)
	}
	r.slots[n-1] = next
}

// shiftBackward drops the tail slot and prepends the predecessor of the head.
func (r *ring) shiftBackward() {
	n := len(r.slots)
	copy(r.slots[1:], r.slots[:n-1])
	prev := r.slots[1] - 1
	if r.wraps() {
		prev = r.wrap(prev)
	}
	r.slots[0] = prev
}

func (r *ring) atLowerBound() bool {
	return !r.wraps() && r.center() <= r.min
}

func (r *ring) atUpperBound() bool {
	return !r.wraps() && r.center() >= r.max
}
