package bench

import (
	"math"
	"sort"
)

// FloatStats summarizes a sample.
type FloatStats struct {
	N    int
	Best float64
	Mean float64
	Std  float64 // sample standard deviation, 0 for N < 2
}

// CalcFloatStats returns the minimum, mean and sample deviation of values.
func CalcFloatStats(values []float64) FloatStats {
	s := FloatStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best, sum := values[0], 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += v
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best, s.Mean, s.Std = best, mean, math.Sqrt(variance)

	return s
}

// Summary aggregates the records of one algorithm.
type Summary struct {
	Algo      string
	Runs      int
	OK        int
	Failed    int // errors and timeouts
	Skipped   int
	Matched   int // ok runs equal to a known optimum
	Runtime   FloatStats
	Tardiness FloatStats
}

// Summarize groups records by algorithm, sorted by name. Runtime and
// tardiness statistics cover ok runs only.
func Summarize(records []Record) []Summary {
	type acc struct {
		s       Summary
		runtime []float64
		tard    []float64
	}
	by := make(map[string]*acc)
	for _, r := range records {
		a := by[r.Algo]
		if a == nil {
			a = &acc{s: Summary{Algo: r.Algo}}
			by[r.Algo] = a
		}
		a.s.Runs++
		switch r.Status {
		case StatusOK:
			a.s.OK++
			a.runtime = append(a.runtime, float64(r.Runtime.Microseconds())/1000.0)
			a.tard = append(a.tard, float64(r.Tardiness))
			if r.Matches != nil && *r.Matches {
				a.s.Matched++
			}
		case StatusSkipped:
			a.s.Skipped++
		default:
			a.s.Failed++
		}
	}

	out := make([]Summary, 0, len(by))
	for _, a := range by {
		a.s.Runtime = CalcFloatStats(a.runtime)
		a.s.Tardiness = CalcFloatStats(a.tard)
		out = append(out, a.s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Algo < out[j].Algo })

	return out
}
