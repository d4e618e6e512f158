package asyncerr

import (
	"context"
	"errors"
)

// Future is a suspended asynchronous step producing a value or an error.
// Awaiting a Future means invoking it with a context; cancellation reaches
// the step through that context. The combinators below run their inputs at
// most once and add no suspension points of their own.
type Future[T any] func(ctx context.Context) (T, error)

// Await runs the step to completion.
func (f Future[T]) Await(ctx context.Context) (T, error) { return f(ctx) }

// WithContext decorates f so that a failing run carries a context string.
//
// The describe closure runs only on the failure path, exactly once, with
// the typed inner error extracted via errors.As; successes pass through
// untouched and describe never runs. Hooks registered for kind E are
// notified before the wrapped error is returned to the caller.
//
// A failure that does not match E — possible only when E is narrower than
// error — passes through unwrapped.
func WithContext[T any, E error](f Future[T], describe func(E) string) Future[T] {
	return func(ctx context.Context) (T, error) {
		v, err := f(ctx)
		if err == nil {
			return v, nil
		}

		var zero T

		var inner E
		if !errors.As(err, &inner) {
			return zero, err
		}

		wrapped := Wrap(inner, describe(inner))
		notify(wrapped)

		return zero, wrapped
	}
}

// Then sequences next after f.
//
// A failure from f is terminal: it is returned unchanged and next never
// runs. On success next receives the value and the future it builds is
// awaited directly, so errors from either step reach the caller exactly as
// produced — Then itself never wraps and never notifies hooks. Annotate
// each step with WithContext before chaining to give layers their own
// context.
func Then[T, U any](f Future[T], next func(T) Future[U]) Future[U] {
	return func(ctx context.Context) (U, error) {
		v, err := f(ctx)
		if err != nil {
			var zero U
			return zero, err
		}

		return next(v)(ctx)
	}
}
