// Branch-and-Bound (exact search over schedule prefixes).
//
// BranchAndBound grows schedules one job at a time by depth-first search in
// due-date order and keeps the best complete schedule found so far.
//
//  1. The incumbent is seeded by the modified-due-date heuristic, so pruning
//     starts from a feasible upper bound.
//  2. Lower bound at a prefix completing at C:
//     LB = tardiness so far + Σ_{j unscheduled} max(0, C + p_j − d_j).
//     Every unscheduled job finishes no earlier than C + p_j, so LB ≤ any
//     completion. Prune whenever LB ≥ incumbent.
//  3. Adjacent-pair dominance: appending j right after i is skipped when
//     swapping the pair strictly lowers their combined tardiness. An optimal
//     schedule never admits such a swap, so at least one survives.
//  4. Context checks every 4096 nodes; Options.NodeLimit > 0 caps nodes.
//
// Complexity: exponential worst case; O(n) per node.

package tardiness

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsched/job"
)

// bbEngine holds the search state of one BranchAndBound run.
type bbEngine struct {
	ctx       context.Context
	n         int
	p, d      []int64
	nodeLimit int64
	nodes     int64
	maxDepth  int

	visited []bool
	path    []int

	bestPerm []int
	bestCost int64

	err error
}

func (e *bbEngine) tardy(i int, c int64) int64 {
	if c > e.d[i] {
		return c - e.d[i]
	}

	return 0
}

// step counts a node and reports whether the search must stop.
func (e *bbEngine) step() bool {
	e.nodes++
	if e.nodeLimit > 0 && e.nodes > e.nodeLimit {
		e.err = fmt.Errorf("%d nodes: %w", e.nodeLimit, ErrNodeLimit)
		return true
	}
	if e.nodes&4095 == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = fmt.Errorf("%w: %w", ErrCanceled, err)
			return true
		}
	}

	return false
}

// lowerBound is the admissible bound of a prefix ending at c.
func (e *bbEngine) lowerBound(c, sofar int64) int64 {
	lb := sofar
	for j := 0; j < e.n; j++ {
		if !e.visited[j] {
			lb += e.tardy(j, c+e.p[j])
		}
	}

	return lb
}

// dominated reports whether placing i at start s then j is strictly worse
// than j then i.
func (e *bbEngine) dominated(i, j int, s int64) bool {
	ij := e.tardy(i, s+e.p[i]) + e.tardy(j, s+e.p[i]+e.p[j])
	ji := e.tardy(j, s+e.p[j]) + e.tardy(i, s+e.p[j]+e.p[i])

	return ji < ij
}

func (e *bbEngine) dfs(depth int, c, sofar int64) {
	if e.step() {
		return
	}
	if depth > e.maxDepth {
		e.maxDepth = depth
	}
	if depth == e.n {
		if sofar < e.bestCost {
			copy(e.bestPerm, e.path)
			e.bestCost = sofar
		}
		return
	}
	if e.lowerBound(c, sofar) >= e.bestCost {
		return
	}

	for j := 0; j < e.n; j++ {
		if e.visited[j] {
			continue
		}
		if depth > 0 {
			i := e.path[depth-1]
			if e.dominated(i, j, c-e.p[i]) {
				continue
			}
		}
		cj := c + e.p[j]
		e.visited[j] = true
		e.path[depth] = j
		e.dfs(depth+1, cj, sofar+e.tardy(j, cj))
		e.visited[j] = false
		if e.err != nil {
			return
		}
	}
}

// BranchAndBound returns an optimal schedule by prefix search.
//
// Errors: ErrCanceled, ErrNodeLimit (the result then carries the incumbent).
func BranchAndBound(ctx context.Context, inst *job.Instance, opts Options) (Result, error) {
	s := inst.SortByDueDate()
	e := bbEngine{
		ctx:       ctx,
		n:         len(s.Jobs),
		p:         s.Processing(),
		d:         s.DueDates(),
		nodeLimit: opts.NodeLimit,
	}
	e.visited = make([]bool, e.n)
	e.path = make([]int, e.n)
	e.bestPerm, e.bestCost = greedyMDD(s.Jobs)

	e.dfs(0, 0, 0)

	res := Result{
		Algo:      AlgoBranchAndBound,
		Tardiness: e.bestCost,
		Sequence:  e.bestPerm,
		Order:     s.ToInput(e.bestPerm),
		Stats:     Stats{Calls: e.nodes, MaxDepth: e.maxDepth},
	}

	return res, e.err
}
