package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	testCases := []struct {
		class ErrorClass
		want  string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.class.String())
	}
}

func TestWrapFormatsContext(t *testing.T) {
	base := stderrors.New("boom")
	err := Wrap(base, "SharedBuffer", "Write", "enqueue")

	require.Error(t, err)
	assert.Equal(t, "SharedBuffer.Write: enqueue failed: boom", err.Error())
	assert.True(t, stderrors.Is(err, base))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "C", "M", "a"))
	assert.NoError(t, WrapTransient(nil, "C", "M", "a"))
	assert.NoError(t, WrapInvalid(nil, "C", "M", "a"))
	assert.NoError(t, WrapFatal(nil, "C", "M", "a"))
}

func TestClassifiedWrappers(t *testing.T) {
	base := stderrors.New("boom")

	testCases := []struct {
		name string
		wrap func(error, string, string, string) error
		want ErrorClass
	}{
		{"transient", WrapTransient, ErrorTransient},
		{"invalid", WrapInvalid, ErrorInvalid},
		{"fatal", WrapFatal, ErrorFatal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.wrap(base, "Registry", "Register", "metric registration")

			var ce *ClassifiedError
			require.True(t, stderrors.As(err, &ce))
			assert.Equal(t, tc.want, ce.Class)
			assert.Equal(t, "Registry", ce.Component)
			assert.Equal(t, "Register", ce.Operation)
			assert.True(t, stderrors.Is(err, base), "classified error must unwrap to the cause")
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(WrapTransient(stderrors.New("x"), "C", "M", "a")))
	assert.False(t, IsTransient(WrapInvalid(stderrors.New("x"), "C", "M", "a")))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(fmt.Errorf("wait: %w", context.Canceled)))
}

func TestIsInvalid(t *testing.T) {
	assert.False(t, IsInvalid(nil))
	assert.True(t, IsInvalid(WrapInvalid(stderrors.New("x"), "C", "M", "a")))
	assert.True(t, IsInvalid(ErrInvalidCapacity))
	assert.True(t, IsInvalid(fmt.Errorf("load: %w", ErrInvalidConfig)))
	assert.True(t, IsInvalid(ErrDuplicateMetric))
	assert.False(t, IsInvalid(stderrors.New("random")))
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.True(t, IsFatal(WrapFatal(stderrors.New("x"), "C", "M", "a")))
	assert.False(t, IsFatal(ErrAlreadyClosed))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrorInvalid, Classify(ErrInvalidPolicy))
	assert.Equal(t, ErrorFatal, Classify(WrapFatal(stderrors.New("x"), "C", "M", "a")))
	assert.Equal(t, ErrorTransient, Classify(stderrors.New("unknown")))
}
