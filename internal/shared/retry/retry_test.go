package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), Config{Attempts: 3, Delay: time.Millisecond}, func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUpToBound(t *testing.T) {
	failure := errors.New("transient")
	calls := 0
	_, err := Do(context.Background(), Config{Attempts: 2, Delay: time.Millisecond}, func() (int, error) {
		calls++
		return 0, failure
	})
	require.ErrorIs(t, err, failure)
	assert.Equal(t, 2, calls)
}

func TestDo_RecoversOnSecondAttempt(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), Config{Attempts: 2, Delay: time.Millisecond}, func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Do(ctx, DefaultConfig(), func() (int, error) {
		return 0, errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
}
