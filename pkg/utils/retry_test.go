package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			wantCalls: 1,
		},
		{
			name:      "succeeds after temporary failures",
			failures:  []error{errTemporary, errTemporary},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			failures:  []error{errTemporary, errTemporary, errTemporary, errTemporary},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:      "permanent error is not retried",
			failures:  []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, errFatal)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("down")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
