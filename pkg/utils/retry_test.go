package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	testCases := []struct {
		name      string
		cfg       utils.RetryConfig
		results   []error
		stop      []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after temporary failures",
			results:   []error{errTemporary, errTemporary, nil},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			cfg:       utils.RetryConfig{MaxAttempts: 2},
			results:   []error{errTemporary, errTemporary, nil},
			wantCalls: 2,
			wantErr:   errTemporary,
		},
		{
			name:      "stop error is not retried",
			results:   []error{errFatal, nil},
			stop:      []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
		{
			name: "retryable predicate rejects error",
			cfg: utils.RetryConfig{Retryable: func(err error) bool {
				return !errors.Is(err, errFatal)
			}},
			results:   []error{errTemporary, errFatal, nil},
			wantCalls: 2,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.InitialDelay = time.Millisecond
			calls := 0
			err := utils.Retry(context.Background(), tc.cfg, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, tc.stop...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errTemporary := errors.New("temporary")

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{InitialDelay: time.Second, MaxAttempts: 5}, func() error {
		calls++
		cancel()
		return errTemporary
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTemporary)
}
