// Package syncbuffer provides thread-safe circular buffers with configurable
// overflow policies, built-in statistics, and optional Prometheus metrics.
//
// # Overview
//
// The core circbuffer package is deliberately unsynchronized; syncbuffer is
// the sanctioned way to share a fixed-capacity buffer between goroutines. It
// wraps the core ring in a mutex and adds the concerns that only matter once
// producers and consumers run concurrently: what to do on overflow, how to
// wait for space, and how to observe the buffer in production.
//
// # Quick Start
//
//	buf, err := syncbuffer.New[int](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer buf.Close()
//
//	err = buf.Write(42)
//	value, ok := buf.Read()
//
// With overflow policy and metrics:
//
//	buf, err := syncbuffer.New[[]byte](5000,
//		syncbuffer.WithOverflowPolicy[[]byte](syncbuffer.DropOldest),
//		syncbuffer.WithMetrics[[]byte](registry, "network_input"),
//	)
//
// From configuration:
//
//	cfg, err := syncbuffer.ParseConfig([]byte("capacity: 500\npolicy: block"))
//	buf, err := syncbuffer.NewFromConfig[*Event](cfg, nil)
//
// # Overflow Policies
//
// Three behaviors are available when the buffer is full:
//
//   - DropOldest: remove the oldest item to make room (default)
//   - DropNewest: drop the incoming item
//   - Block: Write waits until a reader frees space
//
// With the Block policy, WriteWithContext and WriteWithTimeout bound the
// wait:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	err := buf.WriteWithContext(ctx, event)
//
// Items removed by the DropOldest and DropNewest policies (and by Clear) are
// reported to the WithDropCallback callback, which runs outside the buffer's
// lock.
//
// # Observability
//
// Every buffer carries a Statistics tracker: atomic counters for writes,
// reads, peeks, overflows, and drops, plus derived values such as throughput
// and drop rate. Statistics need no configuration and no external
// infrastructure.
//
// Prometheus export is layered on top via WithMetrics and the metric
// subpackage's Registry. Both trackers record independently: Statistics stay
// available for tests and debugging even in deployments without a metrics
// pipeline, while the Prometheus side feeds dashboards and alerting. The
// per-operation cost of the second tracker is a few atomic operations.
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple producers and
// consumers. Internal state is guarded by a sync.RWMutex; the Block policy
// waits on condition variables; Statistics counters are lock-free.
package syncbuffer
