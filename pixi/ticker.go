package pixi

import (
	"go.uber.org/zap"

	"github.com/pixibind/pixibind/engine"
	"github.com/pixibind/pixibind/errors"
)

// TickFunc receives the frame delta the library computed: a scalar of 1.0
// at the target frame rate, scaled by the ticker's speed.
type TickFunc func(delta float64)

// Ticker wraps a foreign frame ticker.
type Ticker struct {
	ref engine.Ref
}

// SharedTicker returns the library's shared ticker singleton.
func (ns *Namespace) SharedTicker() (*Ticker, error) {
	ref, err := ns.Member("ticker.shared")
	if err != nil {
		return nil, err
	}
	return &Ticker{ref: ref}, nil
}

// Ref returns the underlying handle.
func (t *Ticker) Ref() engine.Ref {
	return t.ref
}

// TickerHandle ties one registered callback to its foreign shim. The
// caller owns it: Remove unregisters the callback, Release frees the shim
// once foreign code can no longer need it. Dropping the handle without
// Remove leaves the callback registered forever, which is the deliberate
// fire-until-teardown mode.
type TickerHandle struct {
	ticker  *Ticker
	shim    *engine.Func
	removed bool
}

// Add registers fn to run on every tick, in registration order relative
// to other callbacks. The delta passed to fn is shape-checked; a tick
// whose delta is not numeric is logged and skipped rather than delivered.
func (t *Ticker) Add(fn TickFunc) (*TickerHandle, error) {
	return t.add("add", fn, nil)
}

// AddOnce registers fn for exactly one tick. The library unregisters it
// after the first delivery; the returned handle still owns the shim and
// must be released once the caller is done with it.
func (t *Ticker) AddOnce(fn TickFunc) (*TickerHandle, error) {
	var h *TickerHandle
	h, err := t.add("addOnce", fn, func() { h.removed = true })
	return h, err
}

func (t *Ticker) add(method string, fn TickFunc, after func()) (*TickerHandle, error) {
	if fn == nil {
		return nil, errors.InvalidInput(errors.PhaseCallback, "nil tick function")
	}

	shim := t.ref.Engine().NewFunc(method, func(args []engine.Ref) {
		if len(args) == 0 {
			Logger().Warn("tick delivered without delta", zap.String("method", method))
			return
		}
		delta, err := args[0].Float()
		if err != nil {
			Logger().Warn("tick delta is not numeric, skipping", zap.Error(err))
			return
		}
		fn(delta)
		if after != nil {
			after()
		}
	})

	// The context argument is passed explicitly as undefined; remove must
	// later match it.
	if _, err := t.ref.CallMethod(method, shim, engine.Undefined); err != nil {
		shim.Release()
		return nil, err
	}
	return &TickerHandle{ticker: t, shim: shim}, nil
}

// Remove unregisters the callback. Removing an already-removed handle is
// a no-op; errors surface only when the foreign call itself fails.
func (t *Ticker) Remove(h *TickerHandle) error {
	if h == nil || h.removed {
		return nil
	}
	if _, err := t.ref.CallMethod("remove", h.shim, engine.Undefined); err != nil {
		return err
	}
	h.removed = true
	return nil
}

// Remove unregisters the handle from its ticker. Idempotent.
func (h *TickerHandle) Remove() error {
	return h.ticker.Remove(h)
}

// Removed reports whether the callback is no longer registered.
func (h *TickerHandle) Removed() bool {
	return h.removed
}

// Release frees the host closure behind the shim. Call it after Remove;
// a released but still-registered callback degrades to a logged no-op on
// every tick.
func (h *TickerHandle) Release() {
	h.shim.Release()
}

// Start begins frame delivery.
func (t *Ticker) Start() error {
	_, err := t.ref.CallMethod("start")
	return err
}

// Stop halts frame delivery without unregistering callbacks.
func (t *Ticker) Stop() error {
	_, err := t.ref.CallMethod("stop")
	return err
}

// Started reports whether the ticker is delivering frames.
func (t *Ticker) Started() (bool, error) {
	return t.ref.GetBool("started")
}

// Update advances the ticker by one synthetic frame at the target rate.
func (t *Ticker) Update() error {
	_, err := t.ref.CallMethod("update")
	return err
}

// UpdateAt advances the ticker to an explicit timestamp in milliseconds,
// the host-driven stepping mode.
func (t *Ticker) UpdateAt(ms float64) error {
	_, err := t.ref.CallMethod("update", ms)
	return err
}

// FPS reads the measured frames per second.
func (t *Ticker) FPS() (float64, error) {
	return t.ref.GetFloat("FPS")
}

// Speed reads the delta scaling factor.
func (t *Ticker) Speed() (float64, error) {
	return t.ref.GetFloat("speed")
}

// SetSpeed writes the delta scaling factor.
func (t *Ticker) SetSpeed(v float64) error {
	return t.ref.SetFloat("speed", v)
}

// DeltaTime reads the scalar delta of the most recent frame.
func (t *Ticker) DeltaTime() (float64, error) {
	return t.ref.GetFloat("deltaTime")
}
