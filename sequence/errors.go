package sequence

import "errors"

var (
	// ErrEmptySequence indicates an operation that needs at least one element
	// (ExtractMax, RemoveFirst, Open) was applied to an empty sequence.
	ErrEmptySequence = errors.New("sequence: empty sequence")

	// ErrIndexOutOfRange indicates a cell index outside [0, pool size).
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrOrder indicates an Append or Concat that would break the
	// strictly increasing index order.
	ErrOrder = errors.New("sequence: operation breaks index order")

	// ErrAlreadyLinked indicates SortedInsert of an index already in the sequence.
	ErrAlreadyLinked = errors.New("sequence: index already linked")

	// ErrForeignPool indicates two views drawn from different pools were combined.
	ErrForeignPool = errors.New("sequence: views belong to different pools")

	// ErrCorrupt is returned by Verify when cached counters, order or
	// ownership disagree with the linked cells.
	ErrCorrupt = errors.New("sequence: invariant violated")
)
