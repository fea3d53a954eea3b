package region

import (
	"fmt"
	"unsafe"
)

// Region is the allocator state over a single caller-supplied byte buffer.
// It is not safe for concurrent use — see SafeRegion for a mutex-guarded
// wrapper.
type Region struct {
	words []int32 // word-addressed view over the caller's buffer
	power uint
	lists [numClasses]Offset

	// OnCorruption, if set, is invoked whenever Release or Resize detects
	// a corrupted or invalid chunk (header/footer mismatch, double free,
	// or a pointer that doesn't belong to this region) instead of the
	// default silent no-op. This is the pluggable escalation hook spec.md
	// §9 calls for; it never changes the no-op return value, only lets an
	// embedder observe the event.
	OnCorruption func(CorruptionReport)

	// keepAlive pins the caller's backing buffer reachable for as long as
	// this Region exists, since every pointer handed out by Allocate is an
	// unsafe.Pointer into memory this package does not itself own.
	keepAlive []byte
}

// CorruptionKind identifies which check failed in a corruption report.
type CorruptionKind int

const (
	// CorruptionHeaderFooterMismatch means a chunk's header and footer
	// words disagreed where they must always be equal.
	CorruptionHeaderFooterMismatch CorruptionKind = iota
	// CorruptionDoubleFree means Release or Resize observed a positive
	// (already-free) header where a taken chunk was expected.
	CorruptionDoubleFree
	// CorruptionInvalidPointer means the pointer did not resolve to any
	// chunk header within this region's buffer.
	CorruptionInvalidPointer
)

// CorruptionReport describes one failed validity check.
type CorruptionReport struct {
	Kind   CorruptionKind
	Offset Offset // NilOffset for CorruptionInvalidPointer
}

// New validates buf and power and initializes a Region spanning the whole
// buffer as one free chunk. buf must have length >= 16 and a multiple of 4;
// power must be in [1, 8]. The returned Region aliases buf directly — buf
// must not be read or written by the caller afterward except through the
// Region's own API, and must outlive the Region.
func New(buf []byte, power uint) (*Region, error) {
	if len(buf) < 16 {
		return nil, fmt.Errorf("region: buffer_bytes must be >= 16, got %d", len(buf))
	}
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("region: buffer_bytes must be a multiple of 4, got %d", len(buf))
	}
	if power < 1 || power > 8 {
		return nil, fmt.Errorf("region: power must be in [1, 8], got %d", power)
	}

	r := &Region{
		words:     bytesToWords(buf),
		power:     power,
		keepAlive: buf,
	}
	for i := range r.lists {
		r.lists[i] = NilOffset
	}

	size := int32(len(r.words)) - 2
	r.setSize(0, size)
	r.insert(0)

	return r, nil
}

// reportCorruption invokes OnCorruption if set; always a no side-effect on
// state beyond the callback itself.
func (r *Region) reportCorruption(kind CorruptionKind, off Offset) {
	if r.OnCorruption != nil {
		r.OnCorruption(CorruptionReport{Kind: kind, Offset: off})
	}
}

// validTaken recovers the chunk reference from ptr and verifies it is a
// live (taken) chunk with matching header/footer, per spec.md §7's
// corruption/double-free checks shared by Release and Resize. On any
// failure it reports the corruption (if a hook is set) and returns
// (NilOffset, false) without mutating state.
func (r *Region) validTaken(ptr unsafe.Pointer) (Offset, bool) {
	h, ok := r.chunkFromPointer(ptr)
	if !ok {
		r.reportCorruption(CorruptionInvalidPointer, NilOffset)
		return NilOffset, false
	}
	hv := r.words[h]
	if hv >= 0 {
		r.reportCorruption(CorruptionDoubleFree, h)
		return NilOffset, false
	}
	size := -hv
	footIdx := int(h) + 1 + int(size)
	if footIdx >= len(r.words) || r.words[footIdx] != hv {
		r.reportCorruption(CorruptionHeaderFooterMismatch, h)
		return NilOffset, false
	}
	return h, true
}
