package engine

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// Func exposes a host closure as a foreign-callable function. The Func
// keeps the closure reachable for as long as foreign code may invoke it;
// the caller owns that lifetime and ends it with Release.
//
// A released Func stays safe: foreign invocations after Release log and
// return undefined instead of crashing the host.
type Func struct {
	eng      *Engine
	name     string
	val      goja.Value
	fn       func(args []Ref)
	released bool
}

// NewFunc wraps fn as a foreign function value. The name is used only in
// diagnostics. Like every loop-confined operation, NewFunc must run on
// the engine's loop.
func (e *Engine) NewFunc(name string, fn func(args []Ref)) *Func {
	f := &Func{
		eng:  e,
		name: name,
		fn:   fn,
	}
	f.val = e.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if f.released {
			Logger().Warn("released callback invoked", zap.String("func", f.name))
			return goja.Undefined()
		}
		args := make([]Ref, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = e.wrap(a)
		}
		f.fn(args)
		return goja.Undefined()
	})
	return f
}

// Ref returns the foreign function value backing f.
func (f *Func) Ref() Ref {
	return Ref{eng: f.eng, val: f.val}
}

// Name returns the diagnostic name given at creation.
func (f *Func) Name() string {
	return f.name
}

// Released reports whether Release has been called.
func (f *Func) Released() bool {
	return f.released
}

// Release drops the host closure. Foreign code may still hold the
// function value; invoking it afterwards is a logged no-op. Release after
// Release is a no-op.
func (f *Func) Release() {
	if f.released {
		return
	}
	f.released = true
	f.fn = nil
	Logger().Debug("callback released", zap.String("func", f.name))
}
