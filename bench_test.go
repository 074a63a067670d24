package hashtab

import (
	"strconv"
	"testing"
)

func benchmarkAdd(b *testing.B, n int) {
	for i := 0; i < b.N; i++ {
		tab := NewTable[*int](intType())
		for k := 0; k < n; k++ {
			tab.Add(ptr(k))
		}
	}
}

func benchmarkFind(b *testing.B, n int) {
	tab := NewTable[*int](intType())
	for k := 0; k < n; k++ {
		tab.Add(ptr(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.Find(i % n)
	}
}

func benchmarkScan(b *testing.B, n int) {
	tab := NewTable[*int](intType())
	for k := 0; k < n; k++ {
		tab.Add(ptr(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cursor uint64
		for {
			cursor = tab.Scan(cursor, func(elem **int) {}, 0)
			if cursor == 0 {
				break
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	sizes := []int{16, 128, 1024, 1024 * 8, 1024 * 64}
	for _, n := range sizes {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			benchmarkAdd(b, n)
		})
	}
}

func BenchmarkFind(b *testing.B) {
	sizes := []int{16, 128, 1024, 1024 * 8, 1024 * 64}
	for _, n := range sizes {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			benchmarkFind(b, n)
		})
	}
}

func BenchmarkScan(b *testing.B) {
	sizes := []int{128, 1024 * 8, 1024 * 64}
	for _, n := range sizes {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			benchmarkScan(b, n)
		})
	}
}

func BenchmarkRuntimeMapAdd(b *testing.B) {
	sizes := []int{16, 128, 1024, 1024 * 8, 1024 * 64}
	for _, n := range sizes {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := make(map[int]int, n)
				for k := 0; k < n; k++ {
					m[k] = k
				}
			}
		})
	}
}
