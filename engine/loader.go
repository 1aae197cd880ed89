package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/pixibind/pixibind/errors"
)

// Load is the future for one script load. It resolves exactly once; a
// discarded Load keeps loading but its outcome is simply never observed,
// which is the only form of cancellation script injection supports.
type Load struct {
	name string
	done chan struct{}
	once sync.Once
	err  error
}

func newLoad(name string) *Load {
	return &Load{
		name: name,
		done: make(chan struct{}),
	}
}

func (l *Load) resolve(err error) {
	l.once.Do(func() {
		l.err = err
		close(l.done)
		if err != nil {
			Logger().Debug("load failed", zap.String("script", l.name), zap.Error(err))
		} else {
			Logger().Debug("load complete", zap.String("script", l.name))
		}
	})
}

// Name returns the script's URL, path or label.
func (l *Load) Name() string {
	return l.name
}

// Done is closed when the load has resolved.
func (l *Load) Done() <-chan struct{} {
	return l.done
}

// Err returns the load outcome. It is meaningful only after Done is
// closed; before that it reports nil.
func (l *Load) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}

// Wait blocks until the load resolves or ctx expires. A context error
// abandons the wait, not the load.
func (l *Load) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadURL fetches a script over HTTP and evaluates it on the loop. The
// returned future resolves exactly once: with nil after every global the
// script defines is visible, or with a load_failed error carrying the
// network, HTTP or foreign diagnostic.
func (e *Engine) LoadURL(ctx context.Context, url string) *Load {
	ld := newLoad(url)
	if e.closed.Load() {
		ld.resolve(errors.Closed("engine"))
		return ld
	}
	go func() {
		src, err := e.fetch(ctx, url)
		if err != nil {
			ld.resolve(err)
			return
		}
		e.evaluate(ld, url, src)
	}()
	return ld
}

// LoadFile reads a script from the filesystem and evaluates it on the loop.
func (e *Engine) LoadFile(ctx context.Context, path string) *Load {
	ld := newLoad(path)
	if e.closed.Load() {
		ld.resolve(errors.Closed("engine"))
		return ld
	}
	go func() {
		src, err := os.ReadFile(path)
		if err != nil {
			ld.resolve(errors.Load(fmt.Sprintf("read %s", path), err))
			return
		}
		e.evaluate(ld, path, string(src))
	}()
	return ld
}

// LoadSource evaluates inline script text on the loop. The name labels the
// script in diagnostics and stack traces.
func (e *Engine) LoadSource(ctx context.Context, name, source string) *Load {
	ld := newLoad(name)
	if e.closed.Load() {
		ld.resolve(errors.Closed("engine"))
		return ld
	}
	e.evaluate(ld, name, source)
	return ld
}

// evaluate compiles off-loop and runs the program as a single loop job, so
// a resolved future implies the script's globals are installed.
func (e *Engine) evaluate(ld *Load, name, source string) {
	prg, err := goja.Compile(name, source, false)
	if err != nil {
		ld.resolve(errors.Load(fmt.Sprintf("compile %s", name), err))
		return
	}
	e.loop.RunOnLoop(func(vm *goja.Runtime) {
		if _, err := vm.RunProgram(prg); err != nil {
			ld.resolve(errors.Load(fmt.Sprintf("evaluate %s", name), err))
			return
		}
		ld.resolve(nil)
	})
}

func (e *Engine) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Load(fmt.Sprintf("request %s", url), err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", errors.Load(fmt.Sprintf("fetch %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(errors.PhaseLoad, errors.KindLoadFailed).
			Detail("fetch %s: unexpected status %s", url, resp.Status).
			Build()
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Load(fmt.Sprintf("read %s", url), err)
	}
	return string(body), nil
}
