package memo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend is returned by New and ParseBackend for an unrecognized backend.
	ErrUnknownBackend = errors.New("memo: unknown backend")

	// ErrTooLarge is returned by New when DenseBackend is asked for more
	// than MaxDenseJobs jobs.
	ErrTooLarge = errors.New("memo: instance too large for backend")
)

// MaxDenseJobs bounds DenseBackend: its n·n·(n+1) slot array is allocated
// up front, about 8·n³ bytes (128 MiB at n = 256).
const MaxDenseJobs = 256

// Key identifies one solver state.
type Key struct {
	I, J int32 // head and tail job index of the subsequence
	K    int32 // filter job, −1 when none
	T    int64 // anchor time
}

// Less orders keys lexicographically by (I, J, K, T).
func (k Key) Less(o Key) bool {
	switch {
	case k.I != o.I:
		return k.I < o.I
	case k.J != o.J:
		return k.J < o.J
	case k.K != o.K:
		return k.K < o.K
	default:
		return k.T < o.T
	}
}

// Table is a memo store for entries of type E.
type Table[E any] interface {
	// Get returns the entry stored under k.
	Get(k Key) (E, bool)
	// Set stores e under k, replacing any previous entry.
	Set(k Key, e E)
	// Len returns the number of stored entries.
	Len() int
}

// Backend selects a Table implementation.
type Backend int

const (
	// HashBackend stores every state in one Go map.
	HashBackend Backend = iota
	// DenseBackend indexes (I, J, K) into a flat array of per-triple maps,
	// allocated when the table is built. Limited to MaxDenseJobs jobs.
	DenseBackend
	// TreeBackend keeps states in an ordered red-black tree.
	TreeBackend
)

// String returns the flag spelling of b.
func (b Backend) String() string {
	switch b {
	case HashBackend:
		return "hash"
	case DenseBackend:
		return "dense"
	case TreeBackend:
		return "tree"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps "hash", "dense" or "tree" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "hash", "":
		return HashBackend, nil
	case "dense":
		return DenseBackend, nil
	case "tree":
		return TreeBackend, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownBackend)
	}
}

// New returns an empty table for an instance of n jobs.
//
// Errors: ErrUnknownBackend, ErrTooLarge (DenseBackend, n > MaxDenseJobs).
func New[E any](b Backend, n int) (Table[E], error) {
	switch b {
	case HashBackend:
		return newHash[E](), nil
	case DenseBackend:
		if n > MaxDenseJobs {
			return nil, fmt.Errorf("%v: %d jobs > %d: %w", b, n, MaxDenseJobs, ErrTooLarge)
		}
		return newDense[E](n), nil
	case TreeBackend:
		return newTree[E](), nil
	default:
		return nil, fmt.Errorf("%v: %w", b, ErrUnknownBackend)
	}
}

// Ordered is implemented by tables that can list their keys in Key.Less order.
type Ordered interface {
	Keys() []Key
}
