package syncbuffer

import (
	"fmt"
	"testing"

	"github.com/jonaspleyer/circ-buffer/metric"
)

// BenchmarkBufferWrite benchmarks Write across policies and capacities.
func BenchmarkBufferWrite(b *testing.B) {
	for _, capacity := range []int{100, 1000} {
		for _, policy := range []OverflowPolicy{DropOldest, DropNewest} {
			name := fmt.Sprintf("%d_%s", capacity, policy)
			b.Run(name, func(b *testing.B) {
				buf, err := New[int](capacity, WithOverflowPolicy[int](policy))
				if err != nil {
					b.Fatal(err)
				}
				defer buf.Close()

				b.ResetTimer()
				b.RunParallel(func(pb *testing.PB) {
					i := 0
					for pb.Next() {
						_ = buf.Write(i)
						i++
					}
				})
			})
		}
	}
}

// BenchmarkBufferRead benchmarks Read with a producer keeping the buffer fed.
func BenchmarkBufferRead(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Close()

	for i := 0; i < 1000; i++ {
		_ = buf.Write(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := buf.Read(); !ok {
			b.StopTimer()
			for j := 0; j < 1000; j++ {
				_ = buf.Write(j)
			}
			b.StartTimer()
		}
	}
}

// BenchmarkBufferReadBatch benchmarks batched draining.
func BenchmarkBufferReadBatch(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 100; j++ {
			_ = buf.Write(j)
		}
		b.StartTimer()
		buf.ReadBatch(100)
	}
}

// BenchmarkBufferWriteWithMetrics measures the overhead of Prometheus export.
func BenchmarkBufferWriteWithMetrics(b *testing.B) {
	registry := metric.NewRegistry()
	buf, err := New[int](1000, WithMetrics[int](registry, "bench"))
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Write(i)
	}
}
