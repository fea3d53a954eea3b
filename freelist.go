package region

import (
	"math/bits"

	"github.com/pavanmanishd/boundary/internal/assert"
)

// numClasses is C from the spec: eight segregated free lists.
const numClasses = 8

// classFor returns the size class a chunk of word-size size belongs to,
// given the region's power p: the smallest i such that size < 2^((i+1)*p),
// or the last class if no such i exists below numClasses-1.
//
// size < 2^k iff bits.Len32(size) <= k, so the smallest qualifying i is
// ceil(bits.Len32(size)/p) - 1, clamped to the valid class range.
func classFor(size int32, power uint) int {
	if size <= 0 {
		return 0
	}
	bitLen := bits.Len32(uint32(size))
	i := (bitLen+int(power)-1)/int(power) - 1
	if i < 0 {
		i = 0
	}
	if i > numClasses-1 {
		i = numClasses - 1
	}
	return i
}

// insert threads the free chunk at h into its size class's list, ordered
// by non-decreasing size: h is placed before the first entry whose size is
// strictly greater than h's, so equal-sized chunks queue behind existing
// equals.
func (r *Region) insert(h Offset) {
	cls := classFor(r.size(h), r.power)
	hSize := r.size(h)

	pred := NilOffset
	cur := r.lists[cls]
	for cur != NilOffset && r.size(cur) <= hSize {
		pred = cur
		cur = r.fwd(cur)
	}

	r.setFwd(h, cur)
	r.setBwd(h, pred)
	if pred == NilOffset {
		r.lists[cls] = h
	} else {
		r.setFwd(pred, h)
	}
	if cur != NilOffset {
		r.setBwd(cur, h)
	}
}

// remove unlinks the free chunk at h from its size class's list. h's own
// class is derived from its current size, which must not have changed
// since it was inserted.
func (r *Region) remove(h Offset) {
	cls := classFor(r.size(h), r.power)
	pred := r.bwd(h)
	succ := r.fwd(h)

	if pred == NilOffset {
		assert.Assert(r.lists[cls] == h, "remove: head mismatch in class %d", cls)
		r.lists[cls] = succ
	} else {
		r.setFwd(pred, succ)
	}
	if succ != NilOffset {
		r.setBwd(succ, pred)
	}
}

// findBestFit walks free lists starting at class(S), returning the first
// chunk whose size is >= S. Because each class is ordered by non-decreasing
// size, that first hit is the smallest satisfying chunk in its class, which
// approximates a global best fit bounded by class granularity.
func (r *Region) findBestFit(s int32) Offset {
	start := classFor(s, r.power)
	for cls := start; cls < numClasses; cls++ {
		for cur := r.lists[cls]; cur != NilOffset; cur = r.fwd(cur) {
			if r.size(cur) >= s {
				return cur
			}
		}
	}
	return NilOffset
}
