package pixi

import (
	"context"
	"testing"

	"github.com/pixibind/pixibind/errors"
	"github.com/pixibind/pixibind/pixistub"
)

// newBareRuntime creates a runtime without loading any library.
func newBareRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt, err := New(context.Background())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = rt.Close(context.Background())
	})
	return rt
}

// newTestRuntime creates a runtime with the stub library loaded.
func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt := newBareRuntime(t)
	err := rt.LoadSource(context.Background(), pixistub.ScriptName, pixistub.Source()).Wait(context.Background())
	if err != nil {
		t.Fatalf("stub load failed: %v", err)
	}
	return rt
}

func TestRuntime_DoBeforeLoad(t *testing.T) {
	rt := newBareRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		t.Error("fn should not run without a resolved namespace")
		return nil
	})
	if !errors.IsSymbolMissing(err) {
		t.Errorf("Do before load = %v, want symbol missing", err)
	}
}

func TestRuntime_DoAfterLoad(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		if ns.Name() != DefaultNamespace {
			t.Errorf("Name = %q, want %q", ns.Name(), DefaultNamespace)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestRuntime_Version(t *testing.T) {
	rt := newTestRuntime(t)

	v, err := rt.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != "4.8.1" {
		t.Errorf("Version = %q, want 4.8.1", v)
	}
}

func TestRuntime_CustomNamespace(t *testing.T) {
	rt, err := New(context.Background(), WithNamespace("PIXI_ALT"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = rt.Close(context.Background())
	})

	src := pixistub.Source() + "\nvar PIXI_ALT = PIXI;"
	if err := rt.LoadSource(context.Background(), "alt.js", src).Wait(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	v, err := rt.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != "4.8.1" {
		t.Errorf("Version = %q, want 4.8.1", v)
	}
}

func TestRuntime_DoAfterClose(t *testing.T) {
	rt := newTestRuntime(t)
	if err := rt.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	err := rt.Do(context.Background(), func(ns *Namespace) error { return nil })
	if err == nil {
		t.Fatal("Do after Close should fail")
	}
}
