package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvsched/sequence"
)

func benchPool(n int) *sequence.Pool {
	p := make([]int64, n)
	for i := range p {
		p[i] = int64((i*7919)%97 + 1)
	}

	return sequence.NewPool(p)
}

// BenchmarkProbe_FullSweep opens a probe, advances through every split and closes it.
func BenchmarkProbe_FullSweep(b *testing.B) {
	s := benchPool(256).Full()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pr, err := s.Open()
		if err != nil {
			b.Fatal(err)
		}
		for pr.Advance() {
		}
		pr.Close()
	}
}

// BenchmarkSplitConcat measures the split/undo pair at the midpoint.
func BenchmarkSplitConcat(b *testing.B) {
	s := benchPool(1024).Full()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := s.SplitBefore(512)
		if err := s.Concat(r); err != nil {
			b.Fatal(err)
		}
	}
}
