package region

import (
	"sync"
	"unsafe"
)

// SafeRegion is a mutex-protected wrapper around Region for callers that
// share one buffer across goroutines. Every method serializes on the same
// lock, so throughput under contention is no better than a single-threaded
// Region plus lock overhead — use it only when sharing is unavoidable.
type SafeRegion struct {
	mu sync.Mutex
	r  *Region
}

// NewSafe builds a SafeRegion over buf the same way New does, wrapping the
// result in a mutex.
func NewSafe(buf []byte, power uint) (*SafeRegion, error) {
	r, err := New(buf, power)
	if err != nil {
		return nil, err
	}
	return &SafeRegion{r: r}, nil
}

// Allocate thread-safely allocates size bytes.
func (s *SafeRegion) Allocate(size int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Allocate(size)
}

// ZeroAllocate thread-safely allocates nmemb*size zero-filled bytes.
func (s *SafeRegion) ZeroAllocate(nmemb, size int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.ZeroAllocate(nmemb, size)
}

// Resize thread-safely resizes the chunk backing ptr.
func (s *SafeRegion) Resize(ptr unsafe.Pointer, size int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Resize(ptr, size)
}

// Release thread-safely frees the chunk backing ptr.
func (s *SafeRegion) Release(ptr unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Release(ptr)
}

// SetOnCorruption installs or clears the corruption hook under the lock.
func (s *SafeRegion) SetOnCorruption(fn func(CorruptionReport)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.OnCorruption = fn
}
