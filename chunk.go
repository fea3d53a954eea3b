package region

// This file implements the chunk-primitives layer: header/footer read and
// write, the sign-as-status convention, and adjacency walks. Every chunk is
// a contiguous run of words:
//
//	word [h]        header : signed, abs value is size, sign is status
//	word [h+1]      payload word 0 (forward free-list link when free)
//	word [h+2]      payload word 1 (backward free-list link when free)
//	word [h+3..]    remaining payload words
//	word [h+1+size] footer : always equal to the header

// size returns the absolute size (payload word count) of the chunk at h.
func (r *Region) size(h Offset) int32 {
	v := r.words[h]
	if v < 0 {
		return -v
	}
	return v
}

// isFree reports whether the chunk at h is currently free (header > 0).
func (r *Region) isFree(h Offset) bool {
	return r.words[h] > 0
}

// footerIndex returns the word index of the footer paired with header h.
func (r *Region) footerIndex(h Offset) Offset {
	return h + 1 + Offset(r.size(h))
}

// setSize writes signedSize to both the header and the paired footer. The
// sign of signedSize encodes status: positive is free, negative is taken.
func (r *Region) setSize(h Offset, signedSize int32) {
	r.words[h] = signedSize
	abs := signedSize
	if abs < 0 {
		abs = -abs
	}
	r.words[h+1+Offset(abs)] = signedSize
}

// rightNeighbor returns the chunk starting immediately after h's footer, or
// NilOffset if that position is at or beyond the end of the buffer.
func (r *Region) rightNeighbor(h Offset) Offset {
	next := r.footerIndex(h) + 1
	if int(next) >= len(r.words) {
		return NilOffset
	}
	return next
}

// leftNeighbor reads the word immediately before h's header as the
// neighbor's footer and derives its header position from that footer's
// size. Returns NilOffset if h sits at the arena's first word.
func (r *Region) leftNeighbor(h Offset) Offset {
	if h == 0 {
		return NilOffset
	}
	prevFooter := h - 1
	sz := r.words[prevFooter]
	if sz < 0 {
		sz = -sz
	}
	left := h - 2 - Offset(sz)
	if left < 0 {
		return NilOffset
	}
	return left
}

// fwd and bwd read/write the free-list link words of a free chunk. They are
// only meaningful while the chunk is free; a taken chunk's link words are
// ordinary payload.
func (r *Region) fwd(h Offset) Offset { return Offset(r.words[h+1]) }
func (r *Region) bwd(h Offset) Offset { return Offset(r.words[h+2]) }
func (r *Region) setFwd(h, v Offset)  { r.words[h+1] = int32(v) }
func (r *Region) setBwd(h, v Offset)  { r.words[h+2] = int32(v) }
