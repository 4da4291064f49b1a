package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/depeter/wheelview/internal/wheel"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

func newTestView(t *testing.T, name string, mutate func(*wheel.Options)) *WheelView {
	t.Helper()
	opts := wheel.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	w, err := wheel.New(opts)
	require.NoError(t, err)
	return NewWheelView(name, w)
}

// settle ticks v at 60fps until it stops moving.
func settle(t *testing.T, v *WheelView, start time.Time) {
	t.Helper()
	now := start
	for i := 0; i < 1000; i++ {
		now = now.Add(16 * time.Millisecond)
		if !v.Update(now) {
			return
		}
	}
	t.Fatal("wheel never came to rest")
}
