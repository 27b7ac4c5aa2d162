package circbuffer

import (
	"fmt"
	"testing"
)

// BenchmarkPush measures push throughput for both policies at several
// capacities. RingBuffer pushes exercise the overwrite path once the buffer
// has filled.
func BenchmarkPush(b *testing.B) {
	for _, capacity := range []int{16, 1024} {
		b.Run(fmt.Sprintf("Overwrite_%d", capacity), func(b *testing.B) {
			buf := New[int](capacity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Push(i)
			}
		})

		b.Run(fmt.Sprintf("Bounded_%d", capacity), func(b *testing.B) {
			buf := NewBounded[int](capacity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := buf.Push(i); err != nil {
					buf.Pop()
					_ = buf.Push(i)
				}
			}
		})
	}
}

func BenchmarkPushPop(b *testing.B) {
	buf := New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(i)
		if i%2 == 0 {
			buf.Pop()
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	buf := New[int](1024)
	for i := 0; i < 2048; i++ {
		buf.Push(i)
	}

	b.Run("Iterator", func(b *testing.B) {
		b.ResetTimer()
		var sink int
		for i := 0; i < b.N; i++ {
			it := buf.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				sink += v
			}
		}
		_ = sink
	})

	b.Run("Range", func(b *testing.B) {
		b.ResetTimer()
		var sink int
		for i := 0; i < b.N; i++ {
			buf.Range(func(v int) bool {
				sink += v
				return true
			})
		}
		_ = sink
	})

	b.Run("Values", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = buf.Values()
		}
	})
}

func BenchmarkGet(b *testing.B) {
	buf := New[int](1024)
	for i := 0; i < 2048; i++ {
		buf.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Get(i % 1024)
	}
}
