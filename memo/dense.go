package memo

// denseTable mirrors a three-dimensional array indexed by head, tail and
// filter job, each cell a map from anchor time to entry. Cells are
// allocated on first Set.
type denseTable[E any] struct {
	n     int
	cells []map[int64]E
	size  int
}

func newDense[E any](n int) *denseTable[E] {
	if n < 0 {
		n = 0
	}

	return &denseTable[E]{n: n, cells: make([]map[int64]E, n*n*(n+1))}
}

// slot returns the flat index of (I, J, K); K is shifted by one so −1 maps to 0.
func (d *denseTable[E]) slot(k Key) (int, bool) {
	i, j, f := int(k.I), int(k.J), int(k.K)+1
	if i < 0 || i >= d.n || j < 0 || j >= d.n || f < 0 || f > d.n {
		return 0, false
	}

	return (i*d.n+j)*(d.n+1) + f, true
}

func (d *denseTable[E]) Get(k Key) (E, bool) {
	var zero E
	idx, ok := d.slot(k)
	if !ok || d.cells[idx] == nil {
		return zero, false
	}
	e, ok := d.cells[idx][k.T]

	return e, ok
}

// Set ignores keys outside the n×n×(n+1) box.
func (d *denseTable[E]) Set(k Key, e E) {
	idx, ok := d.slot(k)
	if !ok {
		return
	}
	cell := d.cells[idx]
	if cell == nil {
		cell = make(map[int64]E)
		d.cells[idx] = cell
	}
	if _, dup := cell[k.T]; !dup {
		d.size++
	}
	cell[k.T] = e
}

func (d *denseTable[E]) Len() int { return d.size }
