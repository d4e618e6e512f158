// Package contract exposes the minimal interfaces used by other packages.
//
// Implementations must keep the inner error reachable through Inner and
// support errors.Unwrap for proper interoperability with standard error
// helpers.
package contract

// Error is the minimal, stable surface of a context-wrapped error that
// other packages can depend on.
//
// Implementations must:
//   - Report the annotation via Context with comma-ok semantics; false
//     means no annotation was ever attached at this layer.
//   - Keep the typed inner error reachable via Inner.
//   - Support errors.Is / errors.As via Unwrap.
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal.
type Error[E error] interface {
	error
	// Context returns the annotation attached at this layer, if any.
	Context() (string, bool)
	// Inner returns the wrapped error.
	Inner() E
	Unwrap() error
}
