// export_test.go exports private state for white-box testing.
package cache

import "go.trai.ch/zerr"

// Keys returns the keys from most to least recently used.
func (c *Cache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[V]).key)
	}
	return keys
}

// CheckInvariants verifies that the index and the recency list hold the same
// keys and that the running total matches the sum of entry sizes.
func (c *Cache[V]) CheckInvariants() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.order.Len() != len(c.items) {
		return zerr.With(zerr.New("list and index differ in length"), "list", c.order.Len())
	}

	var sum int64
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[V])
		indexed, ok := c.items[e.key]
		if !ok || indexed != el {
			return zerr.With(zerr.New("list entry missing from index"), "key", e.key)
		}
		sum += e.size
	}
	if sum != c.total {
		return zerr.With(zerr.New("running total drifted"), "sum", sum)
	}
	if c.total > c.budget && c.order.Len() > 1 {
		return zerr.With(zerr.New("budget exceeded by more than one entry"), "total", c.total)
	}
	return nil
}
