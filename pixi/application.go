package pixi

import (
	"github.com/pixibind/pixibind/engine"
	"github.com/pixibind/pixibind/errors"
)

// Application wraps the library's application object: renderer, root
// container and ticker bundled behind one handle.
type Application struct {
	ref engine.Ref
}

// requiredAppMembers is the member contract the binding relies on; it is
// verified at construction so a contract mismatch fails loudly instead of
// misfiring later.
var requiredAppMembers = []string{"view", "stage", "screen", "ticker", "renderer"}

// NewApplication constructs an application with library defaults.
func (ns *Namespace) NewApplication() (*Application, error) {
	return ns.newApplication()
}

// NewApplicationWith constructs an application from recorded options.
func (ns *Namespace) NewApplicationWith(opts *ApplicationOptions) (*Application, error) {
	if opts == nil {
		return nil, errors.InvalidInput(errors.PhaseCall, "nil application options")
	}
	foreign, err := opts.build(ns.eng)
	if err != nil {
		return nil, err
	}
	return ns.newApplication(foreign)
}

func (ns *Namespace) newApplication(args ...any) (*Application, error) {
	ctor, err := ns.Constructor("Application")
	if err != nil {
		return nil, err
	}
	ref, err := ctor.New(args...)
	if err != nil {
		return nil, err
	}
	app := &Application{ref: ref}
	if err := app.verify(ns.name); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *Application) verify(namespace string) error {
	for _, m := range requiredAppMembers {
		v, err := a.ref.Get(m)
		if err != nil {
			return err
		}
		if v.IsUndefined() || v.IsNull() {
			return errors.SymbolMissing(namespace, "Application", m)
		}
	}
	return nil
}

// Ref returns the underlying handle.
func (a *Application) Ref() engine.Ref {
	return a.ref
}

// View returns the renderer's canvas element as an opaque handle, ready
// to hand to a host-side mount point.
func (a *Application) View() (engine.Ref, error) {
	return a.ref.GetRef("view")
}

// Stage returns the root container.
func (a *Application) Stage() (*Container, error) {
	ref, err := a.ref.GetRef("stage")
	if err != nil {
		return nil, err
	}
	return &Container{ref: ref}, nil
}

// Screen returns the rectangle the renderer covers.
func (a *Application) Screen() (*Rectangle, error) {
	ref, err := a.ref.GetRef("screen")
	if err != nil {
		return nil, err
	}
	return &Rectangle{ref: ref}, nil
}

// Ticker returns the application's frame ticker.
func (a *Application) Ticker() (*Ticker, error) {
	ref, err := a.ref.GetRef("ticker")
	if err != nil {
		return nil, err
	}
	return &Ticker{ref: ref}, nil
}

// Renderer returns the renderer as an opaque handle.
func (a *Application) Renderer() (engine.Ref, error) {
	return a.ref.GetRef("renderer")
}

// Render draws the stage once.
func (a *Application) Render() error {
	_, err := a.ref.CallMethod("render")
	return err
}

// Destroy tears the application down. With removeView the canvas is also
// detached from its mount point.
func (a *Application) Destroy(removeView bool) error {
	_, err := a.ref.CallMethod("destroy", removeView)
	return err
}
