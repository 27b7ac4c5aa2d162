package syncbuffer

import (
	"context"
	"time"
)

// Buffer is the synchronized buffer contract satisfied by this package's
// implementation. It is parameterized by element type T.
type Buffer[T any] interface {
	// Write adds an item to the buffer. Behavior when the buffer is full
	// depends on the overflow policy.
	Write(item T) error

	// WriteWithContext is Write with a cancellation bound on the wait for
	// space under the Block policy. For other policies it is identical to
	// Write.
	WriteWithContext(ctx context.Context, item T) error

	// WriteWithTimeout is WriteWithContext with a deadline.
	WriteWithTimeout(item T, timeout time.Duration) error

	// Read retrieves and removes the oldest item.
	// Returns the zero value and false if the buffer is empty.
	Read() (T, bool)

	// ReadBatch retrieves and removes up to max items, oldest first.
	// The returned slice may be shorter than max.
	ReadBatch(max int) []T

	// Peek returns the oldest item without removing it.
	// Returns the zero value and false if the buffer is empty.
	Peek() (T, bool)

	// Snapshot returns a copy of the current contents, oldest first.
	Snapshot() []T

	// Size returns the current number of items in the buffer.
	Size() int

	// Capacity returns the maximum number of items the buffer can hold.
	Capacity() int

	// IsFull returns true if the buffer is at maximum capacity.
	IsFull() bool

	// IsEmpty returns true if the buffer contains no items.
	IsEmpty() bool

	// Clear removes all items from the buffer.
	Clear()

	// Stats returns buffer statistics (always collected).
	Stats() *Statistics

	// Close shuts down the buffer and wakes any blocked writers.
	Close() error
}

// OverflowPolicy defines how the buffer behaves when it reaches capacity.
type OverflowPolicy int

const (
	// DropOldest removes the oldest item to make room for new items.
	DropOldest OverflowPolicy = iota

	// DropNewest drops new items when the buffer is full.
	DropNewest

	// Block causes Write operations to wait until space is available.
	Block
)

// String returns a human-readable representation of the overflow policy.
func (p OverflowPolicy) String() string {
	switch p {
	case DropOldest:
		return "DropOldest"
	case DropNewest:
		return "DropNewest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DropCallback is called with each item dropped due to the overflow policy.
type DropCallback[T any] func(item T)

// New creates a synchronized buffer with the specified capacity and options.
// Statistics are always collected; Prometheus export is enabled via
// WithMetrics. Returns an error if metrics registration fails.
func New[T any](capacity int, options ...Option[T]) (Buffer[T], error) {
	opts := applyOptions(options...)
	return newSharedBuffer(capacity, opts)
}
