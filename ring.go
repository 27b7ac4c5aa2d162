package circbuffer

import "errors"

// ErrFull is returned by BoundedBuffer.Push when the buffer already holds
// Cap() elements. The rejected push leaves the buffer completely unchanged.
var ErrFull = errors.New("buffer full")

// ring is the policy-free core shared by RingBuffer and BoundedBuffer. It
// owns the backing slice and the head/length bookkeeping; the occupied slots
// are (head+i) mod cap for i in 0..length, and the next write position is
// (head+length) mod cap. Liveness is tracked purely through head and length,
// never through sentinel values in T.
type ring[T any] struct {
	items  []T
	head   int
	length int
}

func newRing[T any](capacity int) ring[T] {
	if capacity < 0 {
		panic("circbuffer: negative capacity")
	}
	return ring[T]{items: make([]T, capacity)}
}

// append writes v at the next write position. Callers must have checked that
// the ring is not full.
func (r *ring[T]) append(v T) {
	r.items[(r.head+r.length)%len(r.items)] = v
	r.length++
}

// overwrite replaces the oldest element with v and advances the head.
// Callers must have checked that the ring is full and non-degenerate.
func (r *ring[T]) overwrite(v T) {
	r.items[r.head] = v
	r.head = (r.head + 1) % len(r.items)
}

// Pop removes and returns the oldest element. The second return value is
// false if the buffer is empty; emptiness is a normal state, not an error.
// The vacated slot is zeroed so the buffer drops its reference to the value.
func (r *ring[T]) Pop() (T, bool) {
	var zero T
	if r.length == 0 {
		return zero, false
	}
	v := r.items[r.head]
	r.items[r.head] = zero
	r.head = (r.head + 1) % len(r.items)
	r.length--
	return v, true
}

// Front returns the oldest element without removing it. The second return
// value is false if the buffer is empty.
func (r *ring[T]) Front() (T, bool) {
	if r.length == 0 {
		var zero T
		return zero, false
	}
	return r.items[r.head], true
}

// Back returns the newest element without removing it. The second return
// value is false if the buffer is empty.
func (r *ring[T]) Back() (T, bool) {
	if r.length == 0 {
		var zero T
		return zero, false
	}
	return r.items[(r.head+r.length-1)%len(r.items)], true
}

// Get returns the element at logical index i, where index 0 is the oldest
// element. The second return value is false if i is outside [0, Len()).
// Indices are checked against Len, not Cap: slots beyond the live range are
// not addressable.
func (r *ring[T]) Get(i int) (T, bool) {
	if i < 0 || i >= r.length {
		var zero T
		return zero, false
	}
	return r.items[(r.head+i)%len(r.items)], true
}

// Set replaces the element at logical index i and reports whether the index
// was within [0, Len()). This is the only mutating access by position; it
// never changes the buffer's length or order.
func (r *ring[T]) Set(i int, v T) bool {
	if i < 0 || i >= r.length {
		return false
	}
	r.items[(r.head+i)%len(r.items)] = v
	return true
}

// Len returns the number of elements currently held.
func (r *ring[T]) Len() int {
	return r.length
}

// Cap returns the fixed capacity chosen at construction.
func (r *ring[T]) Cap() int {
	return len(r.items)
}

// IsEmpty reports whether the buffer holds no elements.
func (r *ring[T]) IsEmpty() bool {
	return r.length == 0
}

// IsFull reports whether the buffer holds Cap() elements. A zero-capacity
// buffer is both empty and full.
func (r *ring[T]) IsFull() bool {
	return r.length == len(r.items)
}

// Clear removes all elements and resets the head to slot 0. The previously
// live slots are zeroed. Clearing an empty buffer is a no-op, so Clear is
// idempotent.
func (r *ring[T]) Clear() {
	var zero T
	for i := 0; i < r.length; i++ {
		r.items[(r.head+i)%len(r.items)] = zero
	}
	r.head = 0
	r.length = 0
}
