package sequence

// Probe is a scoped split of a sequence around its leftmost max-P element k.
//
// While open, the probed sequence is the Left view (elements < k, growing by
// one on every Advance) and Right holds the remainder; k itself is detached.
// Close concatenates Right back and re-inserts k, restoring the caller's
// sequence to the membership and order it had before Open.
//
//	pr, err := seq.Open()
//	if err != nil { ... }
//	defer pr.Close()
//	for {
//		... evaluate pr.Left(), pr.K(), pr.Right() ...
//		if !pr.Advance() { break }
//	}
type Probe struct {
	seq    *Sequence
	right  *Sequence
	k      int
	width  int
	closed bool
}

// Open extracts the leftmost max-P element k and splits the remainder before
// k. Width is the Right length at that moment: the number of Advance steps
// available, so split offsets run over 0..Width.
//
// Errors: ErrEmptySequence.
//
// Complexity: O(length).
func (s *Sequence) Open() (*Probe, error) {
	k, err := s.ExtractMax()
	if err != nil {
		return nil, err
	}
	right := s.SplitBefore(k)

	return &Probe{seq: s, right: right, k: k, width: right.Len()}, nil
}

// K returns the detached max-P element.
func (pr *Probe) K() int { return pr.k }

// Left returns the elements scheduled before K at the current offset.
func (pr *Probe) Left() *Sequence { return pr.seq }

// Right returns the elements scheduled after K at the current offset.
func (pr *Probe) Right() *Sequence { return pr.right }

// Width returns Right's length at Open.
func (pr *Probe) Width() int { return pr.width }

// Advance moves Right's head to Left's tail; false when Right is empty.
//
// Complexity: O(1).
func (pr *Probe) Advance() bool {
	if pr.closed || pr.right.length == 0 {
		return false
	}
	pr.seq.link(pr.right.popFront())

	return true
}

// Close restores the probed sequence. It is idempotent.
//
// Complexity: O(length) for the re-insertion of K.
func (pr *Probe) Close() {
	if pr.closed {
		return
	}
	pr.closed = true
	pr.seq.join(pr.right)
	pr.seq.insert(int32(pr.k))
}
