package syncbuffer

import (
	"github.com/jonaspleyer/circ-buffer/metric"
)

// Option configures buffer behavior using the functional options pattern.
type Option[T any] func(*bufferOptions[T])

// bufferOptions holds internal configuration for buffer instances.
// Statistics are always collected and are not an option; Prometheus metrics
// are optional and enabled via WithMetrics.
type bufferOptions[T any] struct {
	overflowPolicy OverflowPolicy
	dropCallback   DropCallback[T]

	// metricsReg is optional - if provided, buffer stats are also exposed
	// as Prometheus metrics under metricsName.
	metricsReg  *metric.Registry
	metricsName string
}

// WithOverflowPolicy sets the overflow behavior for the buffer.
// Defaults to DropOldest if not specified.
func WithOverflowPolicy[T any](policy OverflowPolicy) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.overflowPolicy = policy
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics. The
// name identifies this buffer instance in metric labels. If registry is nil
// or name is empty, the option is ignored.
func WithMetrics[T any](registry *metric.Registry, name string) Option[T] {
	return func(opts *bufferOptions[T]) {
		if registry != nil && name != "" {
			opts.metricsReg = registry
			opts.metricsName = name
		}
	}
}

// WithDropCallback sets a callback invoked with each item dropped by the
// overflow policy or removed by Clear.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.dropCallback = callback
	}
}

// applyOptions applies functional options to create the final buffer
// configuration.
func applyOptions[T any](options ...Option[T]) *bufferOptions[T] {
	opts := &bufferOptions[T]{
		overflowPolicy: DropOldest,
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
