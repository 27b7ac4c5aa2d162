// Package circbuffer provides fixed-capacity circular buffers with a choice of
// full-buffer policy, for single-owner use without locks or allocation on the
// hot path.
//
// # Overview
//
// A circular buffer maps an ever-growing logical sequence of push and pop
// operations onto a backing array of N slots using modular index arithmetic.
// Capacity is fixed at construction: the backing storage is allocated exactly
// once and never grows, so every operation runs in constant time and performs
// no allocation. That makes the buffers suitable for hot paths, bounded
// history windows, and soft real-time work where allocator behavior matters.
//
// # Quick Start
//
// Overwrite-oldest buffer (pushes never fail):
//
//	buf := circbuffer.New[int](3)
//	buf.Push(1)
//	buf.Push(2)
//	buf.Push(3)
//	buf.Push(4) // overwrites 1; buffer now holds [2, 3, 4]
//
//	v, ok := buf.Pop() // v == 2, ok == true
//
// Bounded buffer (pushes are rejected when full):
//
//	buf := circbuffer.NewBounded[string](2)
//	_ = buf.Push("a")
//	_ = buf.Push("b")
//	err := buf.Push("c") // err == circbuffer.ErrFull, buffer unchanged
//
// # Full-Buffer Policies
//
// The two policies are two distinct types rather than a runtime flag, so the
// failure behavior of Push is visible in the type signature at every call
// site:
//
//   - RingBuffer: Push never fails. When the buffer is full the oldest
//     element is overwritten and the logical start advances by one.
//   - BoundedBuffer: Push returns ErrFull when the buffer is full and leaves
//     the buffer untouched.
//
// Everything else - Pop, Front, Back, Get, Set, Len, Cap, Clear, iteration,
// and the JSON/YAML codecs - behaves identically on both types.
//
// # Logical Indexing
//
// Elements are addressed by logical position: index 0 is the oldest element
// currently held, index Len()-1 the newest. The mapping to a physical slot,
// (head + i) mod Cap(), is internal and never observable; Get and Set
// bounds-check against Len(), so slots outside the live range cannot be read
// or written. Pop and Clear zero the slots they vacate so the buffer does not
// retain references to values the caller has removed.
//
// # Capacity Zero
//
// A buffer with capacity 0 is valid but degenerate: it is simultaneously
// empty and full, RingBuffer.Push discards its argument, BoundedBuffer.Push
// returns ErrFull, and every accessor reports emptiness. The zero value of
// either type is such a buffer. Negative capacities panic.
//
// # Serialization
//
// Both types implement json.Marshaler/Unmarshaler and the yaml.v3 marshaling
// interfaces. A buffer encodes as a plain sequence of its live elements,
// oldest first - never the backing array, head position, or retired slots -
// so the wire form of a buffer holding [2, 3, 4] is simply [2,3,4] no matter
// how its storage happens to be rotated. Decoding clears the buffer and
// pushes the decoded elements in order; see UnmarshalJSON on each type for
// how sequences longer than the capacity are handled.
//
// # Concurrency
//
// The buffers in this package are deliberately unsynchronized: they assume a
// single logical owner, and the caller must not mutate a buffer while an
// Iterator obtained from it is in use (the same contract as ranging over a
// slice). For sharing a buffer across goroutines, use the syncbuffer
// subpackage, which wraps the same core in a mutex and adds overflow
// policies, statistics, and optional Prometheus metrics.
package circbuffer
