package circbuffer

// RingBuffer is a fixed-capacity circular buffer that overwrites its oldest
// element when full. Push never fails, which makes RingBuffer the right
// choice for keeping the most recent N values of a stream: samples, log
// lines, history windows.
//
// The zero value is a valid buffer with capacity 0. RingBuffer is not safe
// for concurrent use; see the syncbuffer subpackage for a synchronized
// wrapper.
type RingBuffer[T any] struct {
	ring[T]
}

// New creates an empty RingBuffer holding at most capacity elements. The
// backing storage is allocated once, here, and never grows. A capacity of 0
// yields a degenerate buffer that discards every push; a negative capacity
// panics.
func New[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{ring: newRing[T](capacity)}
}

// Push appends v as the newest element. If the buffer is full the oldest
// element is overwritten and the logical start advances by one, so the
// buffer always retains the most recent Cap() pushes. On a zero-capacity
// buffer v is discarded.
func (b *RingBuffer[T]) Push(v T) {
	switch {
	case len(b.items) == 0:
		// Degenerate capacity: nothing can be stored.
	case b.length == len(b.items):
		b.overwrite(v)
	default:
		b.append(v)
	}
}
