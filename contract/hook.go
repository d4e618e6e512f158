package contract

// Hook is the observer capability for context-wrapped errors of kind E.
//
// OnError is called synchronously on the goroutine that produced the
// failure, before the wrapped error is returned to the caller, so
// implementations must be safe for concurrent use and must not block.
// The error is read-only observation; hooks never alter propagation.
type Hook[E error] interface {
	OnError(err Error[E])
}
