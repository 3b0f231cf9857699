package tardiness_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvsched/memo"
	"github.com/katalvlaran/lvsched/tardiness"
)

func benchmarkExact(b *testing.B, n int, backend memo.Backend, prune bool) {
	inst := lcgInstance(b, 2024, n, 100)
	opts := tardiness.DefaultOptions()
	opts.Backend = backend
	opts.Prune = prune
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tardiness.NewExact(inst, opts).Solve(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExact_n20_Hash(b *testing.B)    { benchmarkExact(b, 20, memo.HashBackend, true) }
func BenchmarkExact_n20_Dense(b *testing.B)   { benchmarkExact(b, 20, memo.DenseBackend, true) }
func BenchmarkExact_n20_Tree(b *testing.B)    { benchmarkExact(b, 20, memo.TreeBackend, true) }
func BenchmarkExact_n20_NoPrune(b *testing.B) { benchmarkExact(b, 20, memo.HashBackend, false) }

func BenchmarkSequence_n20(b *testing.B) {
	inst := lcgInstance(b, 2024, 20, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tardiness.NewReconstructor(inst, tardiness.DefaultOptions()).Sequence(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApprox_n30(b *testing.B) {
	inst := lcgInstance(b, 2024, 30, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tardiness.NewApprox(inst, 0.3, tardiness.DefaultOptions()).Solve(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBranchAndBound_n10(b *testing.B) {
	inst := lcgInstance(b, 2024, 10, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tardiness.BranchAndBound(context.Background(), inst, tardiness.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
