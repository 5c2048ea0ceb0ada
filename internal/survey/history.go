package survey

import "slices"

type visit struct {
	gen   uint64
	cells []bool
}

// history remembers every board state seen so far, bucketed by hash. A hash
// hit only counts when the stored cells are identical.
type history struct {
	buckets map[uint64][]visit
}

func newHistory() *history {
	return &history{buckets: map[uint64][]visit{}}
}

func (h *history) record(hash, gen uint64, cells []bool) {
	h.buckets[hash] = append(h.buckets[hash], visit{gen: gen, cells: cells})
}

// lookup returns the generation at which cells were first seen.
func (h *history) lookup(hash uint64, cells []bool) (uint64, bool) {
	for _, v := range h.buckets[hash] {
		if slices.Equal(v.cells, cells) {
			return v.gen, true
		}
	}
	return 0, false
}
