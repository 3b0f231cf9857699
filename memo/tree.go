package memo

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// treeTable keeps states ordered by Key.Less in a red-black tree.
type treeTable[E any] struct {
	t *redblacktree.Tree
}

func compareKeys(a, b interface{}) int {
	ka, kb := a.(Key), b.(Key)
	switch {
	case ka == kb:
		return 0
	case ka.Less(kb):
		return -1
	default:
		return 1
	}
}

func newTree[E any]() *treeTable[E] {
	return &treeTable[E]{t: redblacktree.NewWith(compareKeys)}
}

func (tt *treeTable[E]) Get(k Key) (E, bool) {
	var zero E
	v, ok := tt.t.Get(k)
	if !ok {
		return zero, false
	}

	return v.(E), true
}

func (tt *treeTable[E]) Set(k Key, e E) { tt.t.Put(k, e) }

func (tt *treeTable[E]) Len() int { return tt.t.Size() }

// Keys returns the stored keys in ascending order.
func (tt *treeTable[E]) Keys() []Key {
	raw := tt.t.Keys()
	out := make([]Key, len(raw))
	for i, k := range raw {
		out[i] = k.(Key)
	}

	return out
}
