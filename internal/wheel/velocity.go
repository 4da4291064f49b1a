package wheel

import "time"

const (
	velocityHorizon    = 100 * time.Millisecond
	velocityMaxSamples = 20
	// a pointer that has not moved for this long is treated as stopped
	velocityStopGap = 40 * time.Millisecond
)

type velocitySample struct {
	pos float64
	t   time.Time
}

// velocityTracker estimates pointer speed along the scroll axis from recent
// samples using a least-squares line fit.
type velocityTracker struct {
	samples []velocitySample
}

func (vt *velocityTracker) add(pos float64, t time.Time) {
	if len(vt.samples) == velocityMaxSamples {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:len(vt.samples)-1]
	}
	vt.samples = append(vt.samples, velocitySample{pos: pos, t: t})
}

func (vt *velocityTracker) reset() {
	vt.samples = vt.samples[:0]
}

// velocity returns the estimated speed in pixels per second.
func (vt *velocityTracker) velocity() float64 {
	n := len(vt.samples)
	if n < 2 {
		return 0
	}
	last := vt.samples[n-1]
	if last.t.Sub(vt.samples[n-2].t) > velocityStopGap {
		return 0
	}

	var sumT, sumP, sumTT, sumTP float64
	count := 0
	for i := n - 1; i >= 0; i-- {
		s := vt.samples[i]
		age := last.t.Sub(s.t)
		if age > velocityHorizon {
			break
		}
		t := -age.Seconds()
		p := s.pos - last.pos
		sumT += t
		sumP += p
		sumTT += t * t
		sumTP += t * p
		count++
	}
	if count < 2 {
		return 0
	}
	c := float64(count)
	denom := c*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	return (c*sumTP - sumT*sumP) / denom
}
