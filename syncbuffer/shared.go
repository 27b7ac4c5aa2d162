package syncbuffer

import (
	"context"
	"sync"
	"time"

	circbuffer "github.com/jonaspleyer/circ-buffer"
	"github.com/jonaspleyer/circ-buffer/errors"
)

// sharedBuffer synchronizes a core circbuffer ring behind a mutex and layers
// overflow policies, statistics, and optional Prometheus metrics on top. The
// core owns all index arithmetic; this type owns locking, waiting, and
// observability.
type sharedBuffer[T any] struct {
	mu      sync.RWMutex
	ring    *circbuffer.BoundedBuffer[T]
	stats   *Statistics
	metrics *bufferMetrics
	opts    *bufferOptions[T]

	// For Block policy
	notEmpty *sync.Cond
	notFull  *sync.Cond
	closed   bool
}

// newSharedBuffer creates a new synchronized buffer instance.
// Returns an error if metrics registration fails when requested.
func newSharedBuffer[T any](capacity int, opts *bufferOptions[T]) (*sharedBuffer[T], error) {
	if capacity <= 0 {
		// A zero-capacity shared buffer would wedge the Block policy, so
		// the minimum here is 1, unlike the degenerate core buffers.
		capacity = 1
	}

	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.metricsName != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsName)
		if err != nil {
			return nil, errors.WrapTransient(err, "SharedBuffer", "newSharedBuffer", "metrics registration")
		}
	}

	sb := &sharedBuffer[T]{
		ring:    circbuffer.NewBounded[T](capacity),
		stats:   NewStatistics(),
		metrics: metrics,
		opts:    opts,
	}

	sb.notEmpty = sync.NewCond(&sb.mu)
	sb.notFull = sync.NewCond(&sb.mu)

	return sb, nil
}

// Write adds an item to the buffer according to the overflow policy. Drop
// callbacks run after the lock is released so they may call back into the
// buffer.
func (sb *sharedBuffer[T]) Write(item T) error {
	dropped, hasDropped, err := sb.write(item)
	if hasDropped && sb.opts.dropCallback != nil {
		sb.opts.dropCallback(dropped)
	}
	return err
}

// write is the locked portion of Write. It returns the item displaced by the
// overflow policy, if any.
func (sb *sharedBuffer[T]) write(item T) (dropped T, hasDropped bool, err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.closed {
		return dropped, false, errors.WrapInvalid(errors.ErrAlreadyClosed, "SharedBuffer", "Write", "buffer closed")
	}

	if sb.ring.IsFull() {
		switch sb.opts.overflowPolicy {
		case DropOldest:
			dropped, _ = sb.ring.Pop()
			hasDropped = true

			sb.stats.Overflow()
			sb.stats.Drop()
			if sb.metrics != nil {
				sb.metrics.recordOverflow()
				sb.metrics.recordDrop()
			}

		case DropNewest:
			sb.stats.Overflow()
			sb.stats.Drop()
			if sb.metrics != nil {
				sb.metrics.recordOverflow()
				sb.metrics.recordDrop()
			}
			// The new item itself is the drop.
			return item, true, nil

		case Block:
			for sb.ring.IsFull() && !sb.closed {
				sb.notFull.Wait()
			}

			if sb.closed {
				return dropped, hasDropped, errors.WrapInvalid(errors.ErrAlreadyClosed, "SharedBuffer", "Write",
					"buffer closed during blocking wait")
			}
		}
	}

	if pushErr := sb.ring.Push(item); pushErr != nil {
		// Space was just ensured above, so a failed push means the
		// invariants are broken.
		return dropped, hasDropped, errors.WrapFatal(pushErr, "SharedBuffer", "Write", "push after space check")
	}

	sb.stats.Write()
	sb.stats.UpdateSize(int64(sb.ring.Len()))
	if sb.metrics != nil {
		sb.metrics.recordWrite(sb.ring.Len(), sb.ring.Cap())
	}

	sb.notEmpty.Signal()
	return dropped, hasDropped, nil
}

// Read retrieves and removes the oldest item from the buffer.
func (sb *sharedBuffer[T]) Read() (T, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	item, ok := sb.ring.Pop()
	if !ok {
		return item, false
	}

	sb.stats.Read()
	sb.stats.UpdateSize(int64(sb.ring.Len()))
	if sb.metrics != nil {
		sb.metrics.recordRead(sb.ring.Len(), sb.ring.Cap())
	}

	sb.notFull.Signal()
	return item, true
}

// ReadBatch retrieves and removes up to max items from the buffer.
func (sb *sharedBuffer[T]) ReadBatch(max int) []T {
	if max <= 0 {
		return nil
	}

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.ring.IsEmpty() {
		return nil
	}

	readCount := max
	if readCount > sb.ring.Len() {
		readCount = sb.ring.Len()
	}

	result := make([]T, 0, readCount)
	for i := 0; i < readCount; i++ {
		item, ok := sb.ring.Pop()
		if !ok {
			break
		}
		result = append(result, item)
		sb.stats.Read()
	}

	sb.stats.UpdateSize(int64(sb.ring.Len()))
	if sb.metrics != nil {
		sb.metrics.updateSize(sb.ring.Len(), sb.ring.Cap())
	}

	for range result {
		sb.notFull.Signal()
	}

	return result
}

// Peek retrieves the oldest item without removing it from the buffer.
func (sb *sharedBuffer[T]) Peek() (T, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	item, ok := sb.ring.Front()
	if !ok {
		return item, false
	}

	sb.stats.Peek()
	if sb.metrics != nil {
		sb.metrics.recordPeek()
	}

	return item, true
}

// Snapshot returns a copy of the current contents, oldest first.
func (sb *sharedBuffer[T]) Snapshot() []T {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.ring.Values()
}

// Size returns the current number of items in the buffer.
func (sb *sharedBuffer[T]) Size() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.ring.Len()
}

// Capacity returns the maximum number of items the buffer can hold.
func (sb *sharedBuffer[T]) Capacity() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.ring.Cap()
}

// IsFull returns true if the buffer is at maximum capacity.
func (sb *sharedBuffer[T]) IsFull() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.ring.IsFull()
}

// IsEmpty returns true if the buffer contains no items.
func (sb *sharedBuffer[T]) IsEmpty() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.ring.IsEmpty()
}

// Clear removes all items from the buffer. Drop callbacks for the removed
// items run after the lock is released.
func (sb *sharedBuffer[T]) Clear() {
	var dropped []T

	sb.mu.Lock()
	if sb.opts.dropCallback != nil {
		dropped = sb.ring.Values()
	}

	sb.ring.Clear()

	sb.stats.UpdateSize(0)
	if sb.metrics != nil {
		sb.metrics.updateSize(0, sb.ring.Cap())
	}

	sb.notFull.Broadcast()
	sb.mu.Unlock()

	for _, item := range dropped {
		sb.opts.dropCallback(item)
	}
}

// Stats returns buffer statistics (always collected).
func (sb *sharedBuffer[T]) Stats() *Statistics {
	return sb.stats
}

// Close shuts down the buffer and wakes all waiting goroutines. Further
// writes fail; reads drain the remaining contents.
func (sb *sharedBuffer[T]) Close() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.closed {
		return nil
	}
	sb.closed = true

	sb.notEmpty.Broadcast()
	sb.notFull.Broadcast()

	return nil
}

// WriteWithTimeout attempts a write with a timeout when using the Block
// policy. For other policies it behaves exactly like Write.
func (sb *sharedBuffer[T]) WriteWithTimeout(item T, timeout time.Duration) error {
	if sb.opts.overflowPolicy != Block {
		return sb.Write(item)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return sb.WriteWithContext(ctx, item)
}

// WriteWithContext attempts a write that honors context cancellation while
// waiting for space under the Block policy. For other policies it behaves
// exactly like Write.
func (sb *sharedBuffer[T]) WriteWithContext(ctx context.Context, item T) error {
	if sb.opts.overflowPolicy != Block {
		return sb.Write(item)
	}

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.closed {
		return errors.WrapInvalid(errors.ErrAlreadyClosed, "SharedBuffer", "WriteWithContext", "buffer closed")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// done lets the watcher goroutine exit as soon as this call returns.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			// The lock serializes this broadcast with the check-then-wait
			// below; broadcasting unlocked could fire between the context
			// check and Wait and the wakeup would be lost.
			sb.mu.Lock()
			sb.notFull.Broadcast()
			sb.mu.Unlock()
		case <-done:
		}
	}()

	for sb.ring.IsFull() && !sb.closed {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sb.notFull.Wait()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	if sb.closed {
		return errors.WrapInvalid(errors.ErrAlreadyClosed, "SharedBuffer", "WriteWithContext",
			"buffer closed during wait")
	}

	if err := sb.ring.Push(item); err != nil {
		return errors.WrapFatal(err, "SharedBuffer", "WriteWithContext", "push after space check")
	}

	sb.stats.Write()
	sb.stats.UpdateSize(int64(sb.ring.Len()))
	if sb.metrics != nil {
		sb.metrics.recordWrite(sb.ring.Len(), sb.ring.Cap())
	}

	sb.notEmpty.Signal()
	return nil
}
