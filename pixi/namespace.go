package pixi

import (
	"strings"

	"github.com/pixibind/pixibind/engine"
	"github.com/pixibind/pixibind/errors"
)

// DefaultNamespace is the global the library installs itself under.
const DefaultNamespace = "PIXI"

// Namespace is a resolved view of the library's global object. Member
// lookups are cached; the cache is an optimization only, a cached handle
// and a fresh lookup designate the same foreign object.
//
// A Namespace is confined to its engine's loop.
type Namespace struct {
	eng     *engine.Engine
	root    engine.Ref
	name    string
	members map[string]engine.Ref
}

// Attach resolves the default namespace global. It fails with a
// symbol_missing error when the library has not been loaded yet.
func Attach(e *engine.Engine) (*Namespace, error) {
	return AttachTo(e, DefaultNamespace)
}

// AttachTo resolves a library namespace under a custom global name.
func AttachTo(e *engine.Engine, name string) (*Namespace, error) {
	root, ok := e.Global(name)
	if !ok {
		return nil, errors.SymbolMissing(name)
	}
	return &Namespace{
		eng:     e,
		root:    root,
		name:    name,
		members: make(map[string]engine.Ref),
	}, nil
}

// Name returns the namespace's global name.
func (ns *Namespace) Name() string {
	return ns.name
}

// Root returns the namespace object itself.
func (ns *Namespace) Root() engine.Ref {
	return ns.root
}

// Engine returns the engine hosting the namespace.
func (ns *Namespace) Engine() *engine.Engine {
	return ns.eng
}

// Member resolves a dotted path below the namespace, caching the result.
// An absent or undefined segment anywhere along the path fails with a
// symbol_missing error naming the full path.
func (ns *Namespace) Member(path string) (engine.Ref, error) {
	if cached, ok := ns.members[path]; ok {
		return cached, nil
	}

	cur := ns.root
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		next, err := cur.Get(seg)
		if err != nil {
			return engine.Ref{}, err
		}
		if next.IsUndefined() || next.IsNull() {
			return engine.Ref{}, errors.SymbolMissing(append([]string{ns.name}, segments[:i+1]...)...)
		}
		cur = next
	}

	ns.members[path] = cur
	return cur, nil
}

// Constructor resolves a member and requires it to be callable.
func (ns *Namespace) Constructor(path string) (engine.Ref, error) {
	m, err := ns.Member(path)
	if err != nil {
		return engine.Ref{}, err
	}
	if !m.IsFunction() {
		return engine.Ref{}, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			Path(append([]string{ns.name}, strings.Split(path, ".")...)...).
			GoType("constructor").
			Detail("%s is not callable", path).
			Build()
	}
	return m, nil
}

// Version reads the library's version string, the supported way to detect
// a contract mismatch before using the binding.
func (ns *Namespace) Version() (string, error) {
	v, err := ns.root.Get("VERSION")
	if err != nil {
		return "", err
	}
	if v.IsUndefined() || v.IsNull() {
		return "", errors.SymbolMissing(ns.name, "VERSION")
	}
	return v.Str()
}
