// Package sequence implements the Ordered Job Sequence: a mutable, index-ordered
// linked view over a subset of jobs, backed by one shared pre-allocated arena.
//
// 🚀 Why an arena?
//
//	The exact tardiness solver splits, probes and restores sub-sequences at
//	every level of a deep recursion. Allocating nodes per call would dominate
//	the run time, so a Pool allocates exactly n link cells once per solve and
//	every Sequence is a tiny header (head, tail, length, ΣP) over that pool.
//	"next" is stored as an arena index, never a pointer.
//
// Invariants (checked by Verify / Pool.Verify in tests):
//
//	(a) cell indices strictly increase from head to tail;
//	(b) Len and TotalP equal the sums over the linked cells;
//	(c) a cell is reachable from at most one live Sequence; ownership moves
//	    on SplitBefore / Concat / RemoveFirst, cells are never copied.
//
// Operations:
//
//	Append(i)      O(1)       attach cell i at the tail
//	SortedInsert   O(length)  restore an element removed by a probe
//	ExtractMax     O(length)  remove the leftmost max-processing-time cell
//	SplitBefore(i) O(length)  keep < i, hand ≥ i to a new view
//	Concat         O(1)       undo a SplitBefore
//	RemoveFirst    O(1)
//	ShiftFrom      O(1)       move right's head to this tail (advance a split)
//
// Probe wraps ExtractMax + SplitBefore … Concat + SortedInsert as a scoped,
// guaranteed-undo operation: callers `defer probe.Close()` so any exit path,
// including errors and cancellation, hands the caller back its sequence in
// the exact membership and order it passed in.
//
// A Pool and its Sequences are not safe for concurrent use.
package sequence
