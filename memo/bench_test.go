package memo_test

import (
	"testing"

	"github.com/katalvlaran/lvsched/memo"
)

// benchKeys produces the access pattern of a mid-sized solve: few triples,
// many anchor times each.
func benchKeys(n int) []memo.Key {
	keys := make([]memo.Key, 0, 4096)
	for i := 0; len(keys) < cap(keys); i++ {
		keys = append(keys, memo.Key{
			I: int32(i % n),
			J: int32((i * 3) % n),
			K: int32(i%(n+1)) - 1,
			T: int64((i * 131) % 997),
		})
	}

	return keys
}

func benchmarkBackend(b *testing.B, backend memo.Backend) {
	const n = 32
	keys := benchKeys(n)
	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		tab, err := memo.New[int64](backend, n)
		if err != nil {
			b.Fatal(err)
		}
		for i, k := range keys {
			if _, ok := tab.Get(k); !ok {
				tab.Set(k, int64(i))
			}
		}
	}
}

func BenchmarkHash(b *testing.B)  { benchmarkBackend(b, memo.HashBackend) }
func BenchmarkDense(b *testing.B) { benchmarkBackend(b, memo.DenseBackend) }
func BenchmarkTree(b *testing.B)  { benchmarkBackend(b, memo.TreeBackend) }
