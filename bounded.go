package circbuffer

// BoundedBuffer is a fixed-capacity circular buffer that rejects pushes when
// full. Push returns ErrFull instead of displacing data, which makes
// BoundedBuffer the right choice when every accepted element must survive
// until it is popped: work queues, unacknowledged messages, admission
// control.
//
// The zero value is a valid buffer with capacity 0. BoundedBuffer is not
// safe for concurrent use; see the syncbuffer subpackage for a synchronized
// wrapper.
type BoundedBuffer[T any] struct {
	ring[T]
}

// NewBounded creates an empty BoundedBuffer holding at most capacity
// elements. The backing storage is allocated once, here, and never grows. A
// capacity of 0 yields a degenerate buffer on which every Push returns
// ErrFull; a negative capacity panics.
func NewBounded[T any](capacity int) *BoundedBuffer[T] {
	return &BoundedBuffer[T]{ring: newRing[T](capacity)}
}

// Push appends v as the newest element. If the buffer already holds Cap()
// elements Push returns ErrFull and the buffer is left unchanged: no element
// is displaced, no state advances, and v is not stored.
func (b *BoundedBuffer[T]) Push(v T) error {
	if b.length == len(b.items) {
		return ErrFull
	}
	b.append(v)
	return nil
}
