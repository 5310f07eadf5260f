package sparse

import "sort"

// coverageIndex maps coverage pixels to block handles. A coverage
// pixel is present iff some fine pixel beneath it has been written;
// writing establishes existence and nothing retracts it.
type coverageIndex struct {
	handles map[uint64]blockHandle
}

func newCoverageIndex() *coverageIndex {
	return &coverageIndex{handles: make(map[uint64]blockHandle)}
}

// has reports whether the coverage pixel is indexed.
func (c *coverageIndex) has(covPixel uint64) bool {
	_, ok := c.handles[covPixel]
	return ok
}

// lookup returns the block handle for an indexed coverage pixel.
func (c *coverageIndex) lookup(covPixel uint64) (blockHandle, bool) {
	h, ok := c.handles[covPixel]
	return h, ok
}

// getOrCreate returns the block handle for covPixel, allocating a
// sentinel-filled block from store and registering it on first touch.
// This is the single growth point of the engine; every write path
// routes through it.
func (c *coverageIndex) getOrCreate(covPixel uint64, store *blockStore) blockHandle {
	if h, ok := c.handles[covPixel]; ok {
		return h
	}
	h := store.allocate()
	c.handles[covPixel] = h
	return h
}

// numCovered returns the count of indexed coverage pixels.
func (c *coverageIndex) numCovered() int {
	return len(c.handles)
}

// pixels returns the indexed coverage pixels in ascending order. The
// index itself is unordered; callers that enumerate want determinism.
func (c *coverageIndex) pixels() []uint64 {
	out := make([]uint64, 0, len(c.handles))
	for p := range c.handles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
