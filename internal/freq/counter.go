package freq

import "sort"

// Entry is one key of a Counter together with its occurrence count.
type Entry[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// Counter maps keys to occurrence counts.
type Counter[K comparable] struct {
	index   map[K]int
	entries []Entry[K]
	total   int
}

// New returns an empty counter.
func New[K comparable]() *Counter[K] {
	return &Counter[K]{index: make(map[K]int)}
}

// FromSlice counts every element of keys.
func FromSlice[K comparable](keys []K) *Counter[K] {
	c := &Counter[K]{index: make(map[K]int, len(keys))}
	c.Add(keys...)
	return c
}

// Add records one occurrence of each key.
func (c *Counter[K]) Add(keys ...K) {
	if c.index == nil {
		c.index = make(map[K]int, len(keys))
	}
	for _, key := range keys {
		if pos, ok := c.index[key]; ok {
			c.entries[pos].Count++
		} else {
			c.index[key] = len(c.entries)
			c.entries = append(c.entries, Entry[K]{Key: key, Count: 1})
		}
		c.total++
	}
}

// Count returns the occurrences of key, zero when it was never added.
func (c *Counter[K]) Count(key K) int {
	if c == nil {
		return 0
	}
	pos, ok := c.index[key]
	if !ok {
		return 0
	}
	return c.entries[pos].Count
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Total returns the number of occurrences added, which is the sum of all counts.
func (c *Counter[K]) Total() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Keys returns the distinct keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	if c == nil {
		return nil
	}
	keys := make([]K, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// MostCommon returns the k entries with the highest counts. Ties keep
// first-seen order. A negative k returns every entry.
func (c *Counter[K]) MostCommon(k int) []Entry[K] {
	if c == nil || k == 0 || len(c.entries) == 0 {
		return []Entry[K]{}
	}
	sorted := make([]Entry[K], len(c.entries))
	copy(sorted, c.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if k > 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}
