package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// nilCell terminates a chain and marks empty head/tail.
const nilCell int32 = -1

// Pool is the shared arena: one link cell per job, allocated once.
// Cell i carries job i's processing time and the index of its successor.
type Pool struct {
	p    []int64
	next []int32
}

// NewPool allocates an arena for len(p) jobs; p[i] is job i's processing time.
// All cells start unlinked. p is copied.
//
// Complexity: O(n).
func NewPool(p []int64) *Pool {
	pl := &Pool{
		p:    append([]int64(nil), p...),
		next: make([]int32, len(p)),
	}
	for i := range pl.next {
		pl.next[i] = nilCell
	}

	return pl
}

// Size returns the number of cells.
func (pl *Pool) Size() int { return len(pl.p) }

// P returns the processing time carried by cell i.
func (pl *Pool) P(i int) int64 { return pl.p[i] }

// Empty returns a new, empty view over the pool.
func (pl *Pool) Empty() *Sequence {
	return &Sequence{pool: pl, head: nilCell, tail: nilCell}
}

// Full returns a view linking every cell in index order. The caller must
// not hold other live views over the pool.
//
// Complexity: O(n).
func (pl *Pool) Full() *Sequence {
	s := pl.Empty()
	for i := range pl.p {
		s.link(int32(i))
	}

	return s
}

// Verify checks invariants (a)–(c) over a set of live views: each view is
// well-formed and no cell is reachable from two of them.
//
// Complexity: O(n + Σ len).
func (pl *Pool) Verify(seqs ...*Sequence) error {
	owner := make([]int, len(pl.p))
	for i := range owner {
		owner[i] = -1
	}
	for si, s := range seqs {
		if s.pool != pl {
			return fmt.Errorf("view %d: %w", si, ErrForeignPool)
		}
		if err := s.Verify(); err != nil {
			return fmt.Errorf("view %d: %w", si, err)
		}
		for c := s.head; c != nilCell; c = pl.next[c] {
			if owner[c] >= 0 {
				return fmt.Errorf("cell %d linked in views %d and %d: %w", c, owner[c], si, ErrCorrupt)
			}
			owner[c] = si
		}
	}

	return nil
}

// Sequence is a view over a Pool: a singly-linked chain of cells in strictly
// increasing index order plus cached length and total processing time.
// The zero value is not usable; obtain views from a Pool.
type Sequence struct {
	pool   *Pool
	head   int32
	tail   int32
	length int
	totalP int64
}

// Len returns the number of linked cells.
func (s *Sequence) Len() int { return s.length }

// TotalP returns Σ P over the linked cells.
func (s *Sequence) TotalP() int64 { return s.totalP }

// Head returns the smallest index in the view, or -1 if empty.
func (s *Sequence) Head() int { return int(s.head) }

// Tail returns the largest index in the view, or -1 if empty.
func (s *Sequence) Tail() int { return int(s.tail) }

// Pool returns the arena the view is drawn from.
func (s *Sequence) Pool() *Pool { return s.pool }

// link attaches cell i at the tail without checks.
func (s *Sequence) link(i int32) {
	s.pool.next[i] = nilCell
	if s.length == 0 {
		s.head = i
	} else {
		s.pool.next[s.tail] = i
	}
	s.tail = i
	s.length++
	s.totalP += s.pool.p[i]
}

// unlink removes x given its predecessor (nilCell when x is the head).
func (s *Sequence) unlink(prev, x int32) {
	next := s.pool.next
	if prev == nilCell {
		s.head = next[x]
	} else {
		next[prev] = next[x]
	}
	if x == s.tail {
		s.tail = prev
	}
	next[x] = nilCell
	s.length--
	s.totalP -= s.pool.p[x]
}

// popFront removes the head without checks.
func (s *Sequence) popFront() int32 {
	x := s.head
	s.unlink(nilCell, x)

	return x
}

// join moves all of other's cells to this tail without checks. other ends empty.
func (s *Sequence) join(other *Sequence) {
	if other.length == 0 {
		return
	}
	if s.length == 0 {
		s.head = other.head
	} else {
		s.pool.next[s.tail] = other.head
	}
	s.tail = other.tail
	s.length += other.length
	s.totalP += other.totalP
	other.head, other.tail, other.length, other.totalP = nilCell, nilCell, 0, 0
}

// insert links x at its ordered position; false if x is already present.
func (s *Sequence) insert(x int32) bool {
	next := s.pool.next
	if s.length == 0 || x > s.tail {
		s.link(x)
		return true
	}
	if x == s.head || x == s.tail {
		return false
	}
	if x < s.head {
		next[x] = s.head
		s.head = x
	} else {
		cur := s.head
		// x < tail guarantees the scan stops on a real successor.
		for next[cur] < x {
			cur = next[cur]
		}
		if next[cur] == x {
			return false
		}
		next[x] = next[cur]
		next[cur] = x
	}
	s.length++
	s.totalP += s.pool.p[x]

	return true
}

func (s *Sequence) inRange(index int) bool {
	return index >= 0 && index < len(s.pool.p)
}

// Append attaches cell index at the tail.
// Precondition: the cell is not linked in any view.
//
// Errors: ErrIndexOutOfRange, ErrOrder (index ≤ Tail()).
//
// Complexity: O(1).
func (s *Sequence) Append(index int) error {
	if !s.inRange(index) {
		return fmt.Errorf("append %d: %w", index, ErrIndexOutOfRange)
	}
	if s.length > 0 && int32(index) <= s.tail {
		return fmt.Errorf("append %d after %d: %w", index, s.tail, ErrOrder)
	}
	s.link(int32(index))

	return nil
}

// SortedInsert links cell index at the position that keeps the view ordered.
// Precondition: the cell is not linked in any other view.
//
// Errors: ErrIndexOutOfRange, ErrAlreadyLinked.
//
// Complexity: O(length).
func (s *Sequence) SortedInsert(index int) error {
	if !s.inRange(index) {
		return fmt.Errorf("insert %d: %w", index, ErrIndexOutOfRange)
	}
	if !s.insert(int32(index)) {
		return fmt.Errorf("insert %d: %w", index, ErrAlreadyLinked)
	}

	return nil
}

// ExtractMax removes and returns the first cell, in list order, holding the
// maximum processing time. Ties resolve to the leftmost (lowest index) cell.
//
// Errors: ErrEmptySequence.
//
// Complexity: O(length), single scan.
func (s *Sequence) ExtractMax() (int, error) {
	if s.length == 0 {
		return -1, ErrEmptySequence
	}
	var (
		next       = s.pool.next
		p          = s.pool.p
		prev       = nilCell
		best       = s.head
		beforeBest = nilCell
		cur        int32
	)
	for cur = s.head; cur != nilCell; cur = next[cur] {
		if p[cur] > p[best] {
			best, beforeBest = cur, prev
		}
		prev = cur
	}
	s.unlink(beforeBest, best)

	return int(best), nil
}

// SplitBefore keeps the elements < index in s and returns a new view that
// owns every element ≥ index.
//
// Complexity: O(length).
func (s *Sequence) SplitBefore(index int) *Sequence {
	var (
		right = s.pool.Empty()
		next  = s.pool.next
		p     = s.pool.p
		prev  = nilCell
		cur   = s.head
		lenL  int
		pL    int64
	)
	for cur != nilCell && int(cur) < index {
		lenL++
		pL += p[cur]
		prev = cur
		cur = next[cur]
	}
	if cur == nilCell {
		return right
	}

	right.head, right.tail = cur, s.tail
	right.length, right.totalP = s.length-lenL, s.totalP-pL
	if prev == nilCell {
		s.head, s.tail = nilCell, nilCell
	} else {
		next[prev] = nilCell
		s.tail = prev
	}
	s.length, s.totalP = lenL, pL

	return right
}

// Concat appends all of other's cells at the tail of s and leaves other
// empty. It undoes a SplitBefore.
//
// Errors: ErrForeignPool, ErrOrder (other.Head() ≤ s.Tail()).
//
// Complexity: O(1).
func (s *Sequence) Concat(other *Sequence) error {
	if other.pool != s.pool {
		return ErrForeignPool
	}
	if s.length > 0 && other.length > 0 && other.head <= s.tail {
		return fmt.Errorf("concat head %d after tail %d: %w", other.head, s.tail, ErrOrder)
	}
	s.join(other)

	return nil
}

// RemoveFirst unlinks and returns the head.
//
// Errors: ErrEmptySequence.
//
// Complexity: O(1).
func (s *Sequence) RemoveFirst() (int, error) {
	if s.length == 0 {
		return -1, ErrEmptySequence
	}

	return int(s.popFront()), nil
}

// ShiftFrom moves right's head to the tail of s: RemoveFirst followed by
// Append, the step that advances a split point by one element.
//
// Errors: ErrEmptySequence, ErrForeignPool, ErrOrder.
//
// Complexity: O(1).
func (s *Sequence) ShiftFrom(right *Sequence) error {
	if right.pool != s.pool {
		return ErrForeignPool
	}
	if right.length == 0 {
		return ErrEmptySequence
	}
	if s.length > 0 && right.head <= s.tail {
		return fmt.Errorf("shift %d after %d: %w", right.head, s.tail, ErrOrder)
	}
	s.link(right.popFront())

	return nil
}

// Each calls fn for every index in order until fn returns false.
func (s *Sequence) Each(fn func(index int) bool) {
	for c := s.head; c != nilCell; c = s.pool.next[c] {
		if !fn(int(c)) {
			return
		}
	}
}

// Indices returns the linked indices in order.
func (s *Sequence) Indices() []int {
	out := make([]int, 0, s.length)
	s.Each(func(i int) bool {
		out = append(out, i)
		return true
	})

	return out
}

// Equal reports whether both views hold the same indices in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.length != other.length || s.totalP != other.totalP {
		return false
	}
	a, b := s.head, other.head
	for a != nilCell && b != nilCell {
		if a != b {
			return false
		}
		a, b = s.pool.next[a], other.pool.next[b]
	}

	return a == b
}

// String renders the view as "[i j k]".
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	s.Each(func(i int) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
		return true
	})
	b.WriteByte(']')

	return b.String()
}

// Verify walks the chain and checks order and cached counters.
//
// Errors: ErrCorrupt.
//
// Complexity: O(length).
func (s *Sequence) Verify() error {
	var (
		next   = s.pool.next
		count  int
		totalP int64
		last   = nilCell
		c      int32
	)
	if (s.length == 0) != (s.head == nilCell) || (s.head == nilCell) != (s.tail == nilCell) {
		return fmt.Errorf("empty-state mismatch (len=%d head=%d tail=%d): %w", s.length, s.head, s.tail, ErrCorrupt)
	}
	for c = s.head; c != nilCell; c = next[c] {
		if count > len(s.pool.p) {
			return fmt.Errorf("cycle detected: %w", ErrCorrupt)
		}
		if last != nilCell && c <= last {
			return fmt.Errorf("order broken at %d after %d: %w", c, last, ErrCorrupt)
		}
		count++
		totalP += s.pool.p[c]
		last = c
	}
	if last != s.tail {
		return fmt.Errorf("tail %d, chain ends at %d: %w", s.tail, last, ErrCorrupt)
	}
	if count != s.length || totalP != s.totalP {
		return fmt.Errorf("cached len=%d ΣP=%d, linked len=%d ΣP=%d: %w", s.length, s.totalP, count, totalP, ErrCorrupt)
	}

	return nil
}
