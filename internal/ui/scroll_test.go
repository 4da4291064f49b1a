package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWheelStepperDirection(t *testing.T) {
	ws := NewWheelStepper(60 * time.Millisecond)
	assert.Equal(t, 0, ws.Step(0, ms(0)))
	assert.Equal(t, -1, ws.Step(1, ms(0)))
	assert.Equal(t, 1, ws.Step(-0.5, ms(100)))
}

func TestWheelStepperLimitsRate(t *testing.T) {
	ws := NewWheelStepper(60 * time.Millisecond)
	steps := 0
	// a trackpad burst: one small delta per frame for half a second
	for i := 0; i < 30; i++ {
		steps += ws.Step(-0.2, ms(i*16))
	}
	assert.InDelta(t, 8, steps, 1)
}
