package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelLookup(t *testing.T) {
	c := newLabelCache()
	c.reset(1, 5, []string{"one", "two", "three"})

	assert.Equal(t, "one", c.lookup(1))
	assert.Equal(t, "three", c.lookup(3))
	// past the end of the content the number itself is shown
	assert.Equal(t, "4", c.lookup(4))
	assert.Equal(t, "", c.lookup(0))
	assert.Equal(t, "", c.lookup(6))
	assert.Equal(t, "", c.lookup(-3))
}

func TestLabelNumericWithoutContent(t *testing.T) {
	c := newLabelCache()
	c.reset(0, 100, nil)
	assert.Equal(t, "0", c.lookup(0))
	assert.Equal(t, "42", c.lookup(42))
}

func TestLabelResetInvalidates(t *testing.T) {
	c := newLabelCache()
	c.reset(0, 3, []string{"a", "b"})
	assert.Equal(t, "a", c.lookup(0))
	assert.Equal(t, 1, c.len())

	c.reset(0, 3, []string{"x", "y"})
	assert.Zero(t, c.len())
	assert.Equal(t, "x", c.lookup(0))
}

func TestLabelCacheBoundedByWindow(t *testing.T) {
	w, _ := newTestWheel(t, func(o *Options) {
		o.Min, o.Max, o.Value = 0, 999, 500
	})
	for i := 0; i < 300; i++ {
		w.ScrollBy(0, -w.ElementSize())
	}
	assert.Equal(t, 800, w.Value())
	w.Frame()
	assert.LessOrEqual(t, w.labels.len(), w.VisibleCount())
}
