package engine

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/eventloop"
	"github.com/dop251/goja_nodejs/require"
	"go.uber.org/zap"

	"github.com/pixibind/pixibind/errors"
)

// DefaultFetchTimeout bounds script downloads when no HTTP client is configured.
const DefaultFetchTimeout = 30 * time.Second

// Config configures the engine
type Config struct {
	// HTTPClient performs script downloads for LoadURL.
	// When nil, a default client bounded by FetchTimeout is used.
	HTTPClient *http.Client

	// FetchTimeout bounds downloads made with the default client.
	// Zero means DefaultFetchTimeout.
	FetchTimeout time.Duration

	// Console receives the foreign library's console output.
	// When nil, the package logger is used.
	Console *zap.Logger
}

// Engine hosts a JavaScript runtime on a single-threaded event loop.
//
// Refs and Funcs obtained from an Engine are confined to its loop; use Do
// to enter the loop from other goroutines. The Load methods and Close are
// safe to call from anywhere.
type Engine struct {
	loop   *eventloop.EventLoop
	vm     *goja.Runtime
	client *http.Client
	closed atomic.Bool
}

// New creates an engine and starts its event loop.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.FetchTimeout
		if timeout == 0 {
			timeout = DefaultFetchTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	consoleLog := cfg.Console
	if consoleLog == nil {
		consoleLog = Logger().Named("console")
	}

	registry := require.NewRegistry()
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(zapPrinter{consoleLog}))

	loop := eventloop.NewEventLoop(
		eventloop.WithRegistry(registry),
		eventloop.EnableConsole(true),
	)

	e := &Engine{
		loop:   loop,
		client: client,
	}

	// Capture the runtime before the loop goes concurrent. The pointer is
	// only dereferenced from loop jobs after this.
	loop.Run(func(vm *goja.Runtime) {
		e.vm = vm
	})
	loop.Start()

	Logger().Debug("engine started")
	return e, nil
}

// Close stops the event loop. Jobs already queued are allowed to finish;
// pending timers are discarded. Close is idempotent.
func (e *Engine) Close(ctx context.Context) error {
	if e.closed.Swap(true) {
		return nil
	}
	pending := e.loop.Stop()
	if pending > 0 {
		Logger().Debug("engine stopped with pending jobs", zap.Int("jobs", pending))
	}
	return nil
}

// Do runs fn on the event loop and waits for it to finish. It is the
// bridge from host goroutines into loop-confined code; every Ref and Func
// operation must happen inside fn or a foreign callback.
//
// If ctx expires first, Do returns the context error but fn still runs;
// loop jobs cannot be cancelled once queued. Calling Do from code already
// on the loop deadlocks the loop and is a caller error.
func (e *Engine) Do(ctx context.Context, fn func() error) error {
	if e.closed.Load() {
		return errors.Closed("engine")
	}

	done := make(chan error, 1)
	e.loop.RunOnLoop(func(*goja.Runtime) {
		done <- fn()
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Global resolves a global binding by name. The second result is false
// when the binding is absent, undefined or null.
func (e *Engine) Global(name string) (Ref, bool) {
	v := e.vm.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return Ref{}, false
	}
	return Ref{eng: e, val: v}, true
}

// NewObject creates an empty foreign object.
func (e *Engine) NewObject() Ref {
	return Ref{eng: e, val: e.vm.NewObject()}
}

// Value converts a host value to a foreign value. Numbers, strings,
// booleans, Refs, Funcs and the Undefined marker are supported; other
// values follow goja's default conversion.
func (e *Engine) Value(v any) Ref {
	return Ref{eng: e, val: e.toValue(v)}
}

func (e *Engine) toValue(v any) goja.Value {
	switch t := v.(type) {
	case nil:
		return goja.Null()
	case undefined:
		return goja.Undefined()
	case Ref:
		if t.val == nil {
			return goja.Undefined()
		}
		return t.val
	case *Func:
		return t.val
	default:
		return e.vm.ToValue(v)
	}
}

// zapPrinter routes the foreign console to a zap logger.
type zapPrinter struct {
	lg *zap.Logger
}

func (p zapPrinter) Log(s string)   { p.lg.Info(s) }
func (p zapPrinter) Warn(s string)  { p.lg.Warn(s) }
func (p zapPrinter) Error(s string) { p.lg.Error(s) }
