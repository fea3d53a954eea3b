package region

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func allocFiveEightByteChunks(t *testing.T, r *Region) []unsafe.Pointer {
	t.Helper()
	ptrs := make([]unsafe.Pointer, 5)
	for i := range ptrs {
		ptrs[i] = r.Allocate(8)
		require.NotNil(t, ptrs[i], "allocation %d failed", i)
	}
	return ptrs
}

// Scenario 6: resize with right-coalesce, pointer stays put.
func TestResizeScenarioRightCoalesce(t *testing.T) {
	buf := make([]byte, 20*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptrs := allocFiveEightByteChunks(t, r)
	r.Release(ptrs[0])
	r.Release(ptrs[4])
	r.Release(ptrs[1])
	r.Release(ptrs[3])

	resized := r.Resize(ptrs[2], 12)
	require.Equal(t, ptrs[2], resized, "pointer should be unchanged")
	require.EqualValues(t, -3, r.words[8])
	require.EqualValues(t, -3, r.words[12])
}

// Scenario 7: resize with relocate, returning the chunk-0 slot's pointer.
func TestResizeScenarioRelocate(t *testing.T) {
	buf := make([]byte, 20*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptrs := allocFiveEightByteChunks(t, r)
	r.Release(ptrs[0])
	r.Release(ptrs[1])
	r.Release(ptrs[2])

	resized := r.Resize(ptrs[4], 12)
	require.Equal(t, ptrs[0], resized, "relocated pointer should land in the chunk-0 slot")
	require.EqualValues(t, -3, r.words[0])
	require.EqualValues(t, -3, r.words[4])
}

func TestResizeNilActsAsAllocate(t *testing.T) {
	buf := make([]byte, 64*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptr := r.Resize(nil, 10)
	require.NotNil(t, ptr)
}

func TestResizeZeroActsAsRelease(t *testing.T) {
	buf := make([]byte, 64*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptr := r.Allocate(10)
	require.Nil(t, r.Resize(ptr, 0))

	m := r.Metrics()
	require.Equal(t, 0, m.NumTakenChunks)
}

func TestResizeShrinkKeepsPointer(t *testing.T) {
	buf := make([]byte, 64*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptr := r.Allocate(40)
	shrunk := r.Resize(ptr, 4)
	require.Equal(t, ptr, shrunk)
}

func TestResizeInvalidPointerReturnsNil(t *testing.T) {
	buf := make([]byte, 64*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	other := make([]byte, 64)
	require.Nil(t, r.Resize(unsafe.Pointer(&other[0]), 10))
}

// Resize preservation law: resize(p, n') preserves the first
// min(old_size, n') payload bytes, across every case (in-place,
// right-coalesce, coalesce-around, and relocate).
func TestResizePreservesPayload(t *testing.T) {
	pattern := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i + 1)
		}
		return b
	}

	cases := []struct {
		name    string
		arena   int
		initial int
		grownTo int
	}{
		{"shrink", 256, 40, 20},
		{"right coalesce", 20 * 4, 8, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, tc.arena)
			r, err := New(buf, 2)
			require.NoError(t, err)

			ptr := r.Allocate(tc.initial)
			require.NotNil(t, ptr)
			data := pattern(tc.initial)
			dst := unsafe.Slice((*byte)(ptr), tc.initial)
			copy(dst, data)

			resized := r.Resize(ptr, tc.grownTo)
			require.NotNil(t, resized)

			keep := tc.initial
			if tc.grownTo < keep {
				keep = tc.grownTo
			}
			got := unsafe.Slice((*byte)(resized), keep)
			require.Equal(t, data[:keep], got)
		})
	}
}

// Relocate needs a chunk with no adjacent free space but free capacity
// elsewhere in the arena, so it is exercised separately from the table
// above using the same layout as TestResizeScenarioRelocate.
func TestResizeRelocatePreservesPayload(t *testing.T) {
	buf := make([]byte, 20*4)
	r, err := New(buf, 2)
	require.NoError(t, err)

	ptrs := allocFiveEightByteChunks(t, r)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	copy(unsafe.Slice((*byte)(ptrs[4]), 8), data)

	r.Release(ptrs[0])
	r.Release(ptrs[1])
	r.Release(ptrs[2])

	resized := r.Resize(ptrs[4], 12)
	require.NotNil(t, resized)
	require.Equal(t, data, unsafe.Slice((*byte)(resized), 8))
}
