//go:build !scg_noerrhooks

package asyncerr

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/next-trace/scg-asyncerr/contract"
)

var timestampsEnabled atomic.Bool

// EnableHookTimestamps makes the default LogHook include a timestamp
// attribute in its output. The flag is global, not per-hook; correlating
// hook output with event times is its only purpose.
func EnableHookTimestamps() { timestampsEnabled.Store(true) }

// DisableHookTimestamps restores the default, timestamp-free hook output.
func DisableHookTimestamps() { timestampsEnabled.Store(false) }

// Registry state. Entries are created on first registration for an error
// kind and live for the rest of the process; there is no unregistration.
var (
	hooksMu sync.RWMutex
	hooks   map[reflect.Type][]any
)

// RegisterHook adds h to the ordered observer list for error kind E.
//
// Registration is append-only and global: every registered hook for E
// fires on every wrapper of kind E, in registration order, once per
// registration (no de-duplication). Safe for concurrent use.
func RegisterHook[E error](h contract.Hook[E]) {
	hooksMu.Lock()
	defer hooksMu.Unlock()

	if hooks == nil {
		hooks = make(map[reflect.Type][]any)
	}

	key := reflect.TypeFor[E]()
	hooks[key] = append(hooks[key], h)
}

// registeredHooks snapshots the observer list for E so no lock is held
// while hooks run.
func registeredHooks[E error]() []any {
	hooksMu.RLock()
	defer hooksMu.RUnlock()

	list := hooks[reflect.TypeFor[E]()]
	if len(list) == 0 {
		return nil
	}

	out := make([]any, len(list))
	copy(out, list)

	return out
}

// Notify dispatches err to every hook registered for kind E, in
// registration order, at most once per wrapper. WithContext calls it on
// the failure path; calling it again for the same wrapper is a no-op.
//
// A hook that panics is recovered and logged so the remaining hooks still
// run and the error value itself is never disturbed.
func Notify[E error](err *Error[E]) {
	if err == nil || !err.notifyOnce() {
		return
	}

	for _, h := range registeredHooks[E]() {
		dispatch(h.(contract.Hook[E]), err)
	}
}

func dispatch[E error](h contract.Hook[E], err *Error[E]) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("async error hook panicked", "panic", r)
		}
	}()

	h.OnError(err)
}

// notify is the internal seam used by WithContext; the scg_noerrhooks
// build replaces it with a no-op.
func notify[E error](err *Error[E]) { Notify(err) }

// LogHook is the default observer for error kind E: it logs the wrapper's
// context and inner error through Logger, adding a timestamp attribute
// when timestamps are enabled globally.
type LogHook[E error] struct {
	// Logger receives the diagnostic records; nil means slog.Default().
	Logger *slog.Logger
}

var _ contract.Hook[error] = (*LogHook[error])(nil)

func (h *LogHook[E]) OnError(err contract.Error[E]) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	annotation, ok := err.Context()
	if !ok {
		annotation = "<none>"
	}

	args := []any{
		slog.String("context", annotation),
		slog.String("inner", fmt.Sprintf("%v", error(err.Inner()))),
	}
	if timestampsEnabled.Load() {
		args = append(args, slog.String("at", hookTimestamp(time.Now())))
	}

	logger.Error("async error hook triggered", args...)
}
