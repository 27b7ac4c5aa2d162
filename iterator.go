package circbuffer

// Iterator walks the live elements of a buffer from oldest to newest. It is
// restartable in the sense that a fresh Iterator can be obtained from Iter at
// any time; a single Iterator is single-pass. The buffer must not be mutated
// while an Iterator obtained from it is in use, the same contract as ranging
// over a slice.
type Iterator[T any] struct {
	items []T
	pos   int
	left  int
}

// Next returns the next element and advances the iterator. The second return
// value is false once all live elements have been yielded.
func (it *Iterator[T]) Next() (T, bool) {
	if it.left == 0 {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos = (it.pos + 1) % len(it.items)
	it.left--
	return v, true
}

// Iter returns an iterator over the live elements, oldest first. The
// iterator reads the backing storage lazily and allocates nothing.
func (r *ring[T]) Iter() Iterator[T] {
	return Iterator[T]{items: r.items, pos: r.head, left: r.length}
}

// Range calls fn for each live element from oldest to newest, stopping early
// if fn returns false. fn must not mutate the buffer.
func (r *ring[T]) Range(fn func(T) bool) {
	for i := 0; i < r.length; i++ {
		if !fn(r.items[(r.head+i)%len(r.items)]) {
			return
		}
	}
}

// Values returns a freshly allocated slice of the live elements, oldest
// first. The returned slice does not alias the buffer's storage. An empty
// buffer yields a nil slice.
func (r *ring[T]) Values() []T {
	if r.length == 0 {
		return nil
	}
	out := make([]T, r.length)
	for i := 0; i < r.length; i++ {
		out[i] = r.items[(r.head+i)%len(r.items)]
	}
	return out
}
