package region

// Direction is a bitset of {Left, Right} selecting which neighbors a
// coalesce or probe operation considers.
type Direction int

const (
	DirRight Direction = 1 << iota
	DirLeft
)

// join merges adjacent free chunks left and right into one, reclaiming the
// header/footer pair at their shared boundary as payload space. The merged
// chunk inherits left's position and is returned still marked free.
func (r *Region) join(left, right Offset) Offset {
	merged := r.size(left) + r.size(right) + 2
	r.setSize(left, merged)
	return left
}

// coalesce merges the free chunk at h with its adjacent free neighbors in
// direction set dirs, unlinking each absorbed neighbor from its free list
// first. RIGHT is walked to exhaustion before LEFT begins, matching the
// order the probe below must mirror. The chunk at h itself is not assumed
// to be in any free list and is not inserted into one by this function —
// callers (Release, Resize) do that themselves once the final size and
// status are settled.
func (r *Region) coalesce(h Offset, dirs Direction) Offset {
	cur := h
	if dirs&DirRight != 0 {
		for {
			rn := r.rightNeighbor(cur)
			if rn == NilOffset || !r.isFree(rn) {
				break
			}
			r.remove(rn)
			cur = r.join(cur, rn)
		}
	}
	if dirs&DirLeft != 0 {
		for {
			ln := r.leftNeighbor(cur)
			if ln == NilOffset || !r.isFree(ln) {
				break
			}
			r.remove(ln)
			cur = r.join(ln, cur)
		}
	}
	return cur
}

// probe measures, without mutating anything, the total span (in words,
// including every header/footer pair involved) that a coalesce(h, dirs)
// would produce. It visits exactly the chunks the destructive coalesce
// would visit, using the same termination conditions.
func (r *Region) probe(h Offset, dirs Direction) int32 {
	total := r.size(h) + 2
	if dirs&DirRight != 0 {
		cur := h
		for {
			rn := r.rightNeighbor(cur)
			if rn == NilOffset || !r.isFree(rn) {
				break
			}
			total += r.size(rn) + 2
			cur = rn
		}
	}
	if dirs&DirLeft != 0 {
		cur := h
		for {
			ln := r.leftNeighbor(cur)
			if ln == NilOffset || !r.isFree(ln) {
				break
			}
			total += r.size(ln) + 2
			cur = ln
		}
	}
	return total
}
