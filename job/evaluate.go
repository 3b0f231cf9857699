package job

import "fmt"

// ValidatePermutation verifies perm is a bijection on [0, n).
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: perm[%d]=%d out of range [0,%d)", ErrInvalidPermutation, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate job %d", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// TotalTardiness processes jobs in the order given by perm (indices into
// jobs) starting at time 0 and returns Σ max(0, Cⱼ − dⱼ).
//
// Errors: ErrInvalidPermutation.
//
// Complexity: O(n).
func TotalTardiness(jobs []Job, perm []int) (int64, error) {
	if err := ValidatePermutation(perm, len(jobs)); err != nil {
		return 0, err
	}

	var t, total int64
	for _, x := range perm {
		t += jobs[x].P
		total += jobs[x].Tardiness(t)
	}

	return total, nil
}

// MaxTardiness returns the largest single-job tardiness when jobs are
// processed in slice order from time 0 (0 if every job is on time).
//
// Passed the EDD view, this is Lawler's Tmax: EDD minimizes the maximum
// tardiness, so Tmax ≤ ΣTⱼ of every schedule, the optimum included.
//
// Complexity: O(n).
func MaxTardiness(jobs []Job) int64 {
	var t, tmax int64
	for _, j := range jobs {
		t += j.P
		if tt := j.Tardiness(t); tt > tmax {
			tmax = tt
		}
	}

	return tmax
}

// InOrderTardiness returns Σ Tⱼ when jobs are processed in slice order.
func InOrderTardiness(jobs []Job) int64 {
	var t, total int64
	for _, j := range jobs {
		t += j.P
		total += j.Tardiness(t)
	}

	return total
}
