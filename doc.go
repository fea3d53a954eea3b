// Package region implements a boundary-tag heap allocator over a single
// caller-supplied byte buffer.
//
// # Overview
//
// A region is a fixed-size arena carved out once (typically at boot, in a
// bare-metal or embedded context) and handed to New. From then on the
// region services allocate/free/resize traffic entirely in-band: every
// chunk carries a header and footer word recording its size and its
// taken/free status in the sign of that word, and free chunks are threaded
// into one of eight size-class free lists for a best-fit search. This is
// useful for:
//
//   - Bare-metal and embedded targets with no OS heap
//   - Fixed memory budgets where fragmentation must be bounded and visible
//   - Deterministic allocator behavior independent of the Go runtime's GC
//
// # Basic Usage
//
//	buf := make([]byte, 4096)
//	r, err := region.New(buf, 2) // power=2 gives class bounds 4,16,64,...
//	if err != nil {
//		panic(err)
//	}
//
//	p := r.Allocate(128)
//	z := r.ZeroAllocate(16, 8)
//	p = r.Resize(p, 256)
//	r.Release(p)
//
// # Thread Safety
//
// Region is not safe for concurrent use: the core performs no locking and
// callers sharing one region across goroutines must serialize externally.
// For concurrent access, wrap a Region in a SafeRegion:
//
//	safe, err := region.NewSafe(buf, 2)
//	if err != nil {
//		panic(err)
//	}
//	p := safe.Allocate(64)
//
// # Memory Layout
//
// The region never grows or remaps its backing buffer; it only manages
// layout within it. Allocation and release run in amortized-constant to
// linear-in-class-length time (eight size classes, each walked in
// non-decreasing size order), and no per-allocation metadata is kept
// beyond the two boundary-tag words every chunk already carries.
//
// # Important Notes
//
//   - Allocated memory is only valid while the backing buffer is reachable
//   - There is no individual arena growth — capacity is fixed at New
//   - Memory is zeroed only via ZeroAllocate
//   - The region never logs or retries; failures are nil pointers or no-ops
//
// # Metrics
//
// Metrics returns a snapshot of region-wide usage:
//
//	m := r.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("words in use: %d\n", m.WordsInUse)
package region
