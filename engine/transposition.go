package engine

const clusterSize = 4

// evalCache memoizes evaluator scores by board hash. The evaluator is a pure
// function of the position, so a hit returns exactly what a fresh call would,
// short of a 64-bit hash collision.
type evalCache struct {
	entries      []cacheEntry
	clusterCount uint64
}

type cacheEntry struct {
	hash  uint64
	score float64
	used  bool
}

// newEvalCache sizes the table to hold at least n entries. n <= 0 disables
// caching.
func newEvalCache(n int) *evalCache {
	if n <= 0 {
		return nil
	}
	clusters := uint64(Max(n/clusterSize, 1))
	return &evalCache{
		entries:      make([]cacheEntry, clusters*clusterSize),
		clusterCount: clusters,
	}
}

func (c *evalCache) probe(hash uint64) (float64, bool) {
	if c == nil {
		return 0, false
	}
	base := int(hash%c.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		e := &c.entries[base+i]
		if e.used && e.hash == hash {
			return e.score, true
		}
	}
	return 0, false
}

func (c *evalCache) store(hash uint64, score float64) {
	if c == nil {
		return
	}
	base := int(hash%c.clusterCount) * clusterSize
	target := -1

	// Prefer updating an existing entry, then an empty slot.
	for i := 0; i < clusterSize && target < 0; i++ {
		if e := &c.entries[base+i]; e.used && e.hash == hash {
			target = base + i
		}
	}
	for i := 0; i < clusterSize && target < 0; i++ {
		if !c.entries[base+i].used {
			target = base + i
		}
	}
	// Otherwise replace a slot picked by the high hash bits.
	if target < 0 {
		target = base + int((hash>>32)%clusterSize)
	}
	c.entries[target] = cacheEntry{hash: hash, score: score, used: true}
}

func (c *evalCache) clear() {
	if c == nil {
		return
	}
	for i := range c.entries {
		c.entries[i] = cacheEntry{}
	}
}

func (c *evalCache) size() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
