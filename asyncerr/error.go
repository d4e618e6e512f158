package asyncerr

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/next-trace/scg-asyncerr/contract"
)

// Error is the canonical wrapper pairing an error of kind E with an
// optional, human-readable context string.
//
// The inner error is immutable after construction and the context is set
// at most once, at construction time. Annotating an already-wrapped error
// nests a new layer (Error[*Error[E]]) rather than merging strings, so
// every layer's exact annotation stays independently recoverable.
type Error[E error] struct {
	inner      E
	context    string
	hasContext bool
	notified   atomic.Bool
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error[error] = (*Error[error])(nil)

// New creates a wrapper without context.
func New[E error](inner E) *Error[E] {
	return &Error[E]{inner: inner}
}

// Wrap creates a wrapper carrying the given context string.
// The context is fixed for the life of the wrapper; to annotate again,
// wrap the wrapper itself.
func Wrap[E error](inner E, context string) *Error[E] {
	return &Error[E]{inner: inner, context: context, hasContext: true}
}

// ------ standard error interface

func (e *Error[E]) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Blank annotations render as if absent; Context still reports them.
	if e.hasContext && strings.TrimSpace(e.context) != "" {
		return fmt.Sprintf("%s: %v", e.context, error(e.inner))
	}

	return fmt.Sprintf("%v", error(e.inner))
}

func (e *Error[E]) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.inner
}

// ------ contract.Error getters

// Inner returns the wrapped error.
func (e *Error[E]) Inner() E { return e.inner }

// Context returns the annotation attached at this layer; ok is false when
// no annotation was ever attached.
func (e *Error[E]) Context() (string, bool) {
	if e == nil || !e.hasContext {
		return "", false
	}

	return e.context, true
}

// notifyOnce flips the notified flag, reporting whether this call won.
// Hook dispatch uses it to fire at most once per wrapper.
func (e *Error[E]) notifyOnce() bool {
	return e.notified.CompareAndSwap(false, true)
}
