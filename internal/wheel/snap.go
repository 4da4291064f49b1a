package wheel

import (
	"math"
	"time"
)

// snapFactor shapes the decelerate curve 1-(1-t)^(2·factor).
const snapFactor = 2.5

func decelerate(t float64) float64 {
	return 1 - math.Pow(1-clampUnit(t), 2*snapFactor)
}

// snapSim moves a fixed distance over a fixed duration, fast at first and
// slowing into the target.
type snapSim struct {
	t0       time.Time
	duration time.Duration
	delta    int
	x        int
	active   bool
}

func (s *snapSim) start(now time.Time, delta int, duration time.Duration) {
	s.t0 = now
	s.duration = duration
	s.delta = delta
	s.x = 0
	s.active = delta != 0
}

func (s *snapSim) forceFinish() {
	s.active = false
}

// remaining is the distance the snap has yet to travel.
func (s *snapSim) remaining() int {
	if !s.active {
		return 0
	}
	return s.delta - s.x
}

func (s *snapSim) step(now time.Time) int {
	if !s.active {
		return 0
	}
	t := 1.0
	if s.duration > 0 {
		t = float64(now.Sub(s.t0)) / float64(s.duration)
	}
	target := int(math.Round(float64(s.delta) * decelerate(t)))
	if t >= 1 {
		target = s.delta
		s.active = false
	}
	d := target - s.x
	s.x = target
	return d
}
