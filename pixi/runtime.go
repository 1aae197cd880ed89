package pixi

import (
	"context"

	"github.com/pixibind/pixibind/engine"
	"github.com/pixibind/pixibind/errors"
)

// Option configures a Runtime.
type Option func(*config)

type config struct {
	engineCfg engine.Config
	namespace string
}

// WithEngineConfig supplies the engine configuration.
func WithEngineConfig(cfg engine.Config) Option {
	return func(c *config) { c.engineCfg = cfg }
}

// WithNamespace overrides the global name the library is resolved under.
func WithNamespace(name string) Option {
	return func(c *config) { c.namespace = name }
}

// Runtime is the binding's front door: it owns the engine, loads the
// library and hands loop-confined code a resolved Namespace.
type Runtime struct {
	eng  *engine.Engine
	name string

	// ns is resolved lazily on the loop; only loop jobs touch it.
	ns *Namespace
}

// New creates a runtime and starts its engine.
func New(ctx context.Context, opts ...Option) (*Runtime, error) {
	cfg := config{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	eng, err := engine.New(ctx, cfg.engineCfg)
	if err != nil {
		return nil, errors.Load("create engine", err)
	}

	return &Runtime{
		eng:  eng,
		name: cfg.namespace,
	}, nil
}

// Close stops the engine. Handles obtained from this runtime are stale
// afterwards.
func (r *Runtime) Close(ctx context.Context) error {
	return r.eng.Close(ctx)
}

// Engine returns the underlying engine for advanced use.
func (r *Runtime) Engine() *engine.Engine {
	return r.eng
}

// LoadURL fetches and evaluates the library from a URL.
func (r *Runtime) LoadURL(ctx context.Context, url string) *engine.Load {
	return r.eng.LoadURL(ctx, url)
}

// LoadFile evaluates the library from a local file.
func (r *Runtime) LoadFile(ctx context.Context, path string) *engine.Load {
	return r.eng.LoadFile(ctx, path)
}

// LoadSource evaluates inline library source.
func (r *Runtime) LoadSource(ctx context.Context, name, source string) *engine.Load {
	return r.eng.LoadSource(ctx, name, source)
}

// Do runs fn on the engine loop with the resolved namespace and waits for
// it. The namespace is resolved lazily on first use and fails with a
// symbol_missing error when the library is not loaded.
//
// Everything fn receives is confined to the loop; return errors rather
// than retaining values. Do must not be called from code already running
// on the loop.
func (r *Runtime) Do(ctx context.Context, fn func(*Namespace) error) error {
	return r.eng.Do(ctx, func() error {
		if r.ns == nil {
			ns, err := AttachTo(r.eng, r.name)
			if err != nil {
				return err
			}
			r.ns = ns
		}
		return fn(r.ns)
	})
}

// Version reports the loaded library's version string.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	var version string
	err := r.Do(ctx, func(ns *Namespace) error {
		var err error
		version, err = ns.Version()
		return err
	})
	return version, err
}
