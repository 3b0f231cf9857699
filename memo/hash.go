package memo

type hashTable[E any] struct {
	m map[Key]E
}

func newHash[E any]() *hashTable[E] {
	return &hashTable[E]{m: make(map[Key]E)}
}

func (h *hashTable[E]) Get(k Key) (E, bool) {
	e, ok := h.m[k]

	return e, ok
}

func (h *hashTable[E]) Set(k Key, e E) { h.m[k] = e }

func (h *hashTable[E]) Len() int { return len(h.m) }
