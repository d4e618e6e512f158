package asyncerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-asyncerr/asyncerr"
)

// codeError is a typed failure used to exercise WithContext with E
// narrower than error.
type codeError struct {
	code int
}

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func succeedWith[T any](v T) asyncerr.Future[T] {
	return func(context.Context) (T, error) { return v, nil }
}

func failWith[T any](err error) asyncerr.Future[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

func TestWithContextSuccessPassthrough(t *testing.T) {
	t.Parallel()

	calls := 0
	f := asyncerr.WithContext(succeedWith(7), func(error) string {
		calls++
		return "must not run"
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Zero(t, calls, "context closure must never run on the success path")
}

func TestWithContextWrapsFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	calls := 0
	f := asyncerr.WithContext(failWith[int](cause), func(err error) string {
		calls++
		return fmt.Sprintf("step saw %v", err)
	})

	_, err := f.Await(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, calls, "context closure must run exactly once")

	var wrapped *asyncerr.Error[error]
	require.ErrorAs(t, err, &wrapped)

	annotation, ok := wrapped.Context()
	require.True(t, ok)
	require.Equal(t, "step saw boom", annotation)
	require.Equal(t, cause, wrapped.Inner())
	require.ErrorIs(t, err, cause)
}

func TestWithContextTypedInner(t *testing.T) {
	t.Parallel()

	f := asyncerr.WithContext(failWith[string](&codeError{code: 42}), func(e *codeError) string {
		return fmt.Sprintf("rejected with code %d", e.code)
	})

	_, err := f.Await(context.Background())

	var wrapped *asyncerr.Error[*codeError]
	require.ErrorAs(t, err, &wrapped)
	require.Equal(t, 42, wrapped.Inner().code)

	annotation, ok := wrapped.Context()
	require.True(t, ok)
	require.Equal(t, "rejected with code 42", annotation)
}

func TestWithContextNonMatchingFailurePassesThrough(t *testing.T) {
	t.Parallel()

	cause := errors.New("not a codeError")
	calls := 0
	f := asyncerr.WithContext(failWith[string](cause), func(*codeError) string {
		calls++
		return "must not run"
	})

	_, err := f.Await(context.Background())
	require.ErrorIs(t, err, cause)
	require.Zero(t, calls)

	var wrapped *asyncerr.Error[*codeError]
	require.False(t, errors.As(err, &wrapped), "non-matching failure must stay unwrapped")
}

func TestThenShortCircuitsOnFirstFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("first step down")
	secondRuns := 0
	secondDescribes := 0

	first := asyncerr.WithContext(failWith[int](cause), func(error) string { return "ctx1" })
	chain := asyncerr.Then(first, func(n int) asyncerr.Future[int] {
		secondRuns++
		return asyncerr.WithContext(succeedWith(n*2), func(error) string {
			secondDescribes++
			return "ctx2"
		})
	})

	_, err := chain.Await(context.Background())
	require.Zero(t, secondRuns, "second step must never start after a failure")
	require.Zero(t, secondDescribes)

	var wrapped *asyncerr.Error[error]
	require.ErrorAs(t, err, &wrapped)

	annotation, _ := wrapped.Context()
	require.Equal(t, "ctx1", annotation)
	require.ErrorIs(t, err, cause)
}

func TestThenSecondStepFailure(t *testing.T) {
	t.Parallel()

	step1 := func(n int) asyncerr.Future[int] {
		return succeedWith(n + 1)
	}
	step2 := func(n int) asyncerr.Future[int] {
		return func(context.Context) (int, error) {
			if n%2 != 0 {
				return 0, errors.New("Odd value at step2")
			}
			return n * 10, nil
		}
	}

	firstDescribes := 0
	chain := asyncerr.Then(
		asyncerr.WithContext(step1(2), func(error) string {
			firstDescribes++
			return "ctx1"
		}),
		func(n int) asyncerr.Future[int] {
			return asyncerr.WithContext(step2(n), func(error) string { return "ctx2" })
		},
	)

	_, err := chain.Await(context.Background())
	require.Zero(t, firstDescribes, "first step succeeded; its closure must not run")

	var wrapped *asyncerr.Error[error]
	require.ErrorAs(t, err, &wrapped)

	annotation, ok := wrapped.Context()
	require.True(t, ok)
	require.Equal(t, "ctx2", annotation)
	require.EqualError(t, wrapped.Inner(), "Odd value at step2")
}

func TestAwaitHonorsCancellation(t *testing.T) {
	t.Parallel()

	f := asyncerr.Future[int](func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Minute):
			return 1, nil
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := asyncerr.WithContext(f, func(error) string { return "interrupted" }).Await(ctx)
	require.ErrorIs(t, err, context.Canceled)

	var wrapped *asyncerr.Error[error]
	require.ErrorAs(t, err, &wrapped)

	annotation, _ := wrapped.Context()
	require.Equal(t, "interrupted", annotation)
}
