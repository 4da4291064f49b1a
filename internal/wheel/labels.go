package wheel

import "strconv"

// labelCache memoizes display strings for logical indices. It is cleared on
// every ring rebuild, so it never holds more than the live window.
type labelCache struct {
	min, max int
	content  []string
	entries  map[int]string
}

func newLabelCache() *labelCache {
	return &labelCache{entries: make(map[int]string)}
}

func (c *labelCache) reset(min, max int, content []string) {
	c.min, c.max = min, max
	c.content = content
	clear(c.entries)
}

func (c *labelCache) lookup(index int) string {
	if s, ok := c.entries[index]; ok {
		return s
	}
	s := c.label(index)
	c.entries[index] = s
	return s
}

func (c *labelCache) label(index int) string {
	if index < c.min || index > c.max {
		return ""
	}
	if i := index - c.min; i < len(c.content) {
		return c.content[i]
	}
	return strconv.Itoa(index)
}

func (c *labelCache) len() int { return len(c.entries) }
