package region

import "unsafe"

// copyWords moves n words from src to dst within the same backing buffer,
// correctly handling overlap (memmove semantics): copy back-to-front when
// the destination is ahead of the source, front-to-back otherwise.
func (r *Region) copyWords(dst, src Offset, n int32) {
	switch {
	case src == dst:
		return
	case src < dst:
		for i := n - 1; i >= 0; i-- {
			r.words[dst+Offset(i)] = r.words[src+Offset(i)]
		}
	default:
		for i := int32(0); i < n; i++ {
			r.words[dst+Offset(i)] = r.words[src+Offset(i)]
		}
	}
}

// Resize changes the payload of ptr to size bytes, preserving the first
// min(old, size) bytes of payload, and returns the (possibly new) pointer.
//
// resize(nil, size) behaves as Allocate(size). resize(ptr, 0) behaves as
// Release(ptr) and returns nil. An invalid ptr (failed the same
// header/footer and taken checks Release applies) returns nil and leaves
// state untouched. A failed growth leaves the original chunk untouched and
// returns nil — the original pointer is not released.
func (r *Region) Resize(ptr unsafe.Pointer, size int) unsafe.Pointer {
	if ptr == nil {
		return r.Allocate(size)
	}
	if size == 0 {
		r.Release(ptr)
		return nil
	}

	h, ok := r.validTaken(ptr)
	if !ok {
		return nil
	}

	want := wordsFor(size)
	have := r.size(h)

	// Case 1: shrink or equal — same pointer, no split of the unused tail.
	if have >= want {
		return ptr
	}

	// Case 2: coalesce-right in place.
	probeRight := r.probe(h, DirRight) - 2
	if probeRight >= want {
		merged := r.coalesce(h, DirRight)
		merged = r.allocateFromFreeChunk(merged, want, size, false)
		return r.payloadPointer(merged)
	}

	// Case 3: coalesce-around, with a copy (the merge may relocate the
	// chunk's header to a lower address than h, so the original payload
	// words — still physically untouched by coalesce — must be copied to
	// the new payload position).
	probeLeft := r.probe(h, DirLeft)
	total := probeRight + probeLeft - (have + 2)
	if total >= want {
		srcPayload := h + 1
		merged := r.coalesce(h, DirLeft|DirRight)
		// Copy before allocateFromFreeChunk writes any split/taken tags:
		// a leftward merge can relocate merged well before h, and the new
		// chunk's tags land at or after merged+1+want (want > have), but
		// never inside [merged+1, merged+have) — copying first keeps this
		// safe regardless of where those tags fall.
		r.copyWords(merged+1, srcPayload, have)
		merged = r.allocateFromFreeChunk(merged, want, size, false)
		return r.payloadPointer(merged)
	}

	// Case 4: relocate.
	newPtr := r.Allocate(size)
	if newPtr == nil {
		return nil
	}
	r.copyWords(r.wordIndexOf(newPtr), h+1, have)
	r.Release(ptr)
	return newPtr
}

// wordIndexOf returns the word index of a payload pointer previously
// returned by this region (used internally by Resize's relocate case,
// where the pointer is known-good and a full validity check is redundant).
func (r *Region) wordIndexOf(ptr unsafe.Pointer) Offset {
	h, _ := r.chunkFromPointer(ptr)
	return h + 1
}
