package lists_test

import (
	"testing"

	"github.com/hasbyte1/go-collection-views/lists"
)

// makeInts creates an ArrayList of size n for benchmarks.
func makeInts(n int) *lists.ArrayList[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return lists.Wrap(items)
}

func BenchmarkArrayListIterate(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := l.Iterator()
		for it.HasNext() {
			it.Next()
		}
	}
}

func BenchmarkTransformGet(b *testing.B) {
	view := lists.Transform(makeInts(10_000), func(n int) int { return n * 2 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.Get(i % 10_000)
	}
}

func BenchmarkPartitionGet(b *testing.B) {
	chunks, _ := lists.Partition(makeInts(10_000), 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chunks.Get(i % 100)
	}
}

func BenchmarkHashCode(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lists.HashCode[int](l, func(n int) uint32 { return uint32(n) })
	}
}

func BenchmarkEqual(b *testing.B) {
	x := makeInts(10_000)
	y := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lists.Equal[int](x, y, eqInt)
	}
}
