package job

import (
	"fmt"
	"sort"
)

// Job is a single unit of work on the machine.
type Job struct {
	// P is the processing time; always > 0 in a valid instance.
	P int64
	// D is the due date. Negative values are allowed (always tardy).
	D int64
}

// Tardiness returns max(0, completion − D) for a job finishing at completion.
func (j Job) Tardiness(completion int64) int64 {
	if completion > j.D {
		return completion - j.D
	}

	return 0
}

// Instance is an ordered list of jobs as read from input.
// The slice is owned by the Instance; accessors hand out copies.
type Instance struct {
	jobs []Job
}

// NewInstance validates jobs and returns an Instance owning a copy of them.
//
// Errors: ErrInvalidJob (wrapped with the offending position).
//
// Complexity: O(n).
func NewInstance(jobs []Job) (*Instance, error) {
	inst := &Instance{jobs: append([]Job(nil), jobs...)}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// Validate checks every job has a positive processing time.
func (inst *Instance) Validate() error {
	var i int
	for i = range inst.jobs {
		if inst.jobs[i].P <= 0 {
			return fmt.Errorf("job %d: p=%d: %w", i, inst.jobs[i].P, ErrInvalidJob)
		}
	}

	return nil
}

// NumJobs returns n.
func (inst *Instance) NumJobs() int { return len(inst.jobs) }

// Jobs returns a copy of the (P, D) pairs in input order.
func (inst *Instance) Jobs() []Job { return append([]Job(nil), inst.jobs...) }

// Job returns the job at input position i.
func (inst *Instance) Job(i int) Job { return inst.jobs[i] }

// Copy returns a deep, independent clone. Every algorithm run works on its
// own copy, so sorting or scaling never leaks between runs.
func (inst *Instance) Copy() *Instance {
	return &Instance{jobs: append([]Job(nil), inst.jobs...)}
}

// TotalP returns Σ P over all jobs.
func (inst *Instance) TotalP() int64 {
	var sum int64
	for _, j := range inst.jobs {
		sum += j.P
	}

	return sum
}

// Sorted is the earliest-due-date view of an Instance.
//
// Jobs[i] is the i-th job by non-decreasing due date; ties keep input order.
// Order[i] is the input position of Jobs[i]. Solvers address jobs by their
// index into this view.
type Sorted struct {
	Jobs  []Job
	Order []int
}

// SortByDueDate builds the EDD view without touching the receiver.
//
// Complexity: O(n log n).
func (inst *Instance) SortByDueDate() Sorted {
	var (
		n     = len(inst.jobs)
		order = make([]int, n)
		jobs  = make([]Job, n)
		i     int
	)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return inst.jobs[order[a]].D < inst.jobs[order[b]].D
	})
	for i = 0; i < n; i++ {
		jobs[i] = inst.jobs[order[i]]
	}

	return Sorted{Jobs: jobs, Order: order}
}

// Processing returns the processing times of the view, index-aligned.
func (s Sorted) Processing() []int64 {
	p := make([]int64, len(s.Jobs))
	for i, j := range s.Jobs {
		p[i] = j.P
	}

	return p
}

// DueDates returns the due dates of the view, index-aligned.
func (s Sorted) DueDates() []int64 {
	d := make([]int64, len(s.Jobs))
	for i, j := range s.Jobs {
		d[i] = j.D
	}

	return d
}

// ToInput maps a permutation of view indices to input positions.
func (s Sorted) ToInput(seq []int) []int {
	out := make([]int, len(seq))
	for i, x := range seq {
		out[i] = s.Order[x]
	}

	return out
}
