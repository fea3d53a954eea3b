package region

import "unsafe"

// Release returns the chunk backing ptr to the free-list set. A nil ptr is
// a no-op. If ptr does not resolve to a live, uncorrupted chunk of this
// region (double free, or header/footer mismatch), Release reports the
// corruption via OnCorruption (if set) and otherwise does nothing — this
// is a deliberate design choice, not a bug: see spec.md §7.
func (r *Region) Release(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	h, ok := r.validTaken(ptr)
	if !ok {
		return
	}

	r.setSize(h, r.size(h)) // flips sign: size() is already the abs value
	merged := r.coalesce(h, DirLeft|DirRight)
	r.insert(merged)
}
