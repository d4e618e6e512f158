// Package asyncerr provides contextual error propagation for asynchronous
// computations.
//
// A step is any Future[T]: a suspended computation awaited with a context.
// WithContext decorates a step so its failures carry a lazily computed,
// human-readable annotation; Then sequences dependent steps, treating an
// earlier failure as terminal. Each annotation layer is preserved as its
// own wrapper, so nested errors render as a top-to-bottom list of
// annotations ending in the root cause.
//
// Key characteristics:
//   - Error[E] keeps the typed inner error reachable (Inner) and integrates
//     with the standard library's errors helpers (Is/As) via Unwrap
//   - context closures run only on the failure path, exactly once
//   - globally registered hooks observe every produced wrapper exactly
//     once, in registration order, with an optional timestamp in the
//     default log output
//
// The hook subsystem can be compiled out entirely with the scg_noerrhooks
// build tag, and wall-clock timestamp formatting with scg_noerrtimestamps;
// neither tag changes the types or behavior of the core combinators.
package asyncerr
