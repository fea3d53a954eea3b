package region

import (
	"runtime"
	"unsafe"
)

// allocateFromFreeChunk takes a free chunk at h (already unlinked from any
// free list, sized S or larger) and turns it into a taken chunk satisfying
// a request of s words / origBytes bytes. It splits off a free remainder
// when one would itself be a valid chunk, optionally zero-fills the
// payload, and finally flips the header/footer to taken. Shared by
// Allocate/ZeroAllocate (h fresh from findBestFit) and Resize's in-place
// cases (h fresh from coalesce).
func (r *Region) allocateFromFreeChunk(h Offset, s int32, origBytes int, zero bool) Offset {
	span := r.size(h) + 2
	remainder := span - s - 4 // span minus s's own tags minus the remainder's own tags
	if remainder >= 2 {
		r.setSize(h, s)
		newHeader := r.footerIndex(h) + 1
		r.setSize(newHeader, remainder)
		r.insert(newHeader)
	}

	if zero {
		n := (origBytes + 3) / 4
		for i := int32(0); i < int32(n); i++ {
			r.words[h+1+Offset(i)] = 0
		}
	}

	final := r.size(h)
	r.setSize(h, -final)
	return h
}

// Allocate reserves size bytes and returns a pointer to the first payload
// word, or nil (with no state change) if size is zero or negative, or if
// no free chunk is large enough.
func (r *Region) Allocate(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	s := wordsFor(size)
	h := r.findBestFit(s)
	if h == NilOffset {
		return nil
	}
	r.remove(h)
	h = r.allocateFromFreeChunk(h, s, size, false)
	ptr := r.payloadPointer(h)
	runtime.KeepAlive(r.keepAlive)
	return ptr
}

// ZeroAllocate reserves nmemb*size bytes, zero-filled, and returns a
// pointer to the first payload word, or nil (with no state change) if the
// product is zero, negative, or overflows, or if no free chunk is large
// enough (calloc-style).
func (r *Region) ZeroAllocate(nmemb, size int) unsafe.Pointer {
	if nmemb < 0 || size < 0 {
		return nil
	}
	total := nmemb * size
	if size != 0 && total/size != nmemb {
		return nil // overflow
	}
	if total == 0 {
		return nil
	}
	s := wordsFor(total)
	h := r.findBestFit(s)
	if h == NilOffset {
		return nil
	}
	r.remove(h)
	h = r.allocateFromFreeChunk(h, s, total, true)
	ptr := r.payloadPointer(h)
	runtime.KeepAlive(r.keepAlive)
	return ptr
}
