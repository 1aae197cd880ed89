package engine

import (
	"reflect"

	"github.com/dop251/goja"

	"github.com/pixibind/pixibind/errors"
)

// undefined is the type of the Undefined marker.
type undefined struct{}

// Undefined is the explicit "no value" argument. Pass it where a foreign
// signature expects a positional argument the caller wants to omit.
var Undefined undefined

// Ref is a handle to one foreign value. The zero Ref is stale: every
// operation on it fails with a stale_reference error.
//
// Refs alias freely. Two Refs obtained for the same foreign object observe
// each other's writes; Same reports whether they do.
type Ref struct {
	eng *Engine
	val goja.Value
}

// IsZero reports whether r is the stale zero handle.
func (r Ref) IsZero() bool {
	return r.val == nil
}

// Engine returns the engine that owns r, or nil for the zero Ref.
func (r Ref) Engine() *Engine {
	return r.eng
}

// IsUndefined reports whether r holds the foreign undefined value.
func (r Ref) IsUndefined() bool {
	return r.val != nil && goja.IsUndefined(r.val)
}

// IsNull reports whether r holds the foreign null value.
func (r Ref) IsNull() bool {
	return r.val != nil && goja.IsNull(r.val)
}

// IsFunction reports whether r holds a callable value.
func (r Ref) IsFunction() bool {
	if r.val == nil {
		return false
	}
	_, ok := goja.AssertFunction(r.val)
	return ok
}

// Same reports whether r and o refer to the same foreign value. For
// objects this is reference identity, never structural comparison.
func (r Ref) Same(o Ref) bool {
	if r.val == nil || o.val == nil {
		return false
	}
	return r.val.SameAs(o.val)
}

func (r Ref) valid(phase errors.Phase, path ...string) error {
	if r.val == nil {
		return errors.StaleReference(phase, path)
	}
	return nil
}

func (r Ref) object(phase errors.Phase, path ...string) (*goja.Object, error) {
	if err := r.valid(phase, path...); err != nil {
		return nil, err
	}
	obj, ok := r.val.(*goja.Object)
	if !ok {
		return nil, errors.New(phase, errors.KindTypeMismatch).
			Path(path...).
			GoType("object").
			JSType(jsTypeOf(r.val)).
			Build()
	}
	return obj, nil
}

// Float converts r itself to a float64. Integral and fractional foreign
// numbers both convert; everything else is a type_mismatch.
func (r Ref) Float() (float64, error) {
	if err := r.valid(errors.PhaseProperty); err != nil {
		return 0, err
	}
	return exportFloat(r.val, nil)
}

// Bool converts r itself to a bool without coercion.
func (r Ref) Bool() (bool, error) {
	if err := r.valid(errors.PhaseProperty); err != nil {
		return false, err
	}
	return exportBool(r.val, nil)
}

// Str converts r itself to a string without coercion.
func (r Ref) Str() (string, error) {
	if err := r.valid(errors.PhaseProperty); err != nil {
		return "", err
	}
	return exportString(r.val, nil)
}

// Get reads the named property as a Ref. A missing property yields an
// undefined Ref, matching foreign semantics; it is not an error.
func (r Ref) Get(name string) (Ref, error) {
	obj, err := r.object(errors.PhaseProperty, name)
	if err != nil {
		return Ref{}, err
	}
	var v goja.Value
	if err := guard(errors.PhaseProperty, []string{name}, func() {
		v = obj.Get(name)
	}); err != nil {
		return Ref{}, err
	}
	if v == nil {
		v = goja.Undefined()
	}
	return Ref{eng: r.eng, val: v}, nil
}

// GetFloat reads the named property as a float64.
func (r Ref) GetFloat(name string) (float64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return exportFloat(v.val, []string{name})
}

// GetBool reads the named property as a bool.
func (r Ref) GetBool(name string) (bool, error) {
	v, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return exportBool(v.val, []string{name})
}

// GetString reads the named property as a string.
func (r Ref) GetString(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return exportString(v.val, []string{name})
}

// GetRef reads the named property as an object handle. Undefined and null
// properties fail with a type_mismatch naming the foreign type.
func (r Ref) GetRef(name string) (Ref, error) {
	v, err := r.Get(name)
	if err != nil {
		return Ref{}, err
	}
	if _, ok := v.val.(*goja.Object); !ok {
		return Ref{}, errors.New(errors.PhaseProperty, errors.KindTypeMismatch).
			Path(name).
			GoType("object").
			JSType(jsTypeOf(v.val)).
			Build()
	}
	return v, nil
}

// Set writes a foreign value to the named property.
func (r Ref) Set(name string, v Ref) error {
	if err := v.valid(errors.PhaseProperty, name); err != nil {
		return err
	}
	return r.setValue(name, v.val)
}

// SetFloat writes a number to the named property.
func (r Ref) SetFloat(name string, v float64) error {
	return r.setValue(name, v)
}

// SetBool writes a boolean to the named property.
func (r Ref) SetBool(name string, v bool) error {
	return r.setValue(name, v)
}

// SetString writes a string to the named property.
func (r Ref) SetString(name string, v string) error {
	return r.setValue(name, v)
}

func (r Ref) setValue(name string, v any) error {
	obj, err := r.object(errors.PhaseProperty, name)
	if err != nil {
		return err
	}
	if err := obj.Set(name, v); err != nil {
		return errors.Wrap(errors.PhaseProperty, errors.KindCallFailed, err, "set "+name)
	}
	return nil
}

// Has reports whether the foreign object carries name as an own property.
// An unset property and a property explicitly set to undefined differ here.
func (r Ref) Has(name string) (bool, error) {
	obj, err := r.object(errors.PhaseProperty, name)
	if err != nil {
		return false, err
	}
	var names []string
	if err := guard(errors.PhaseProperty, []string{name}, func() {
		names = obj.GetOwnPropertyNames()
	}); err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Keys returns the enumerable own property names of the foreign object.
func (r Ref) Keys() ([]string, error) {
	obj, err := r.object(errors.PhaseProperty)
	if err != nil {
		return nil, err
	}
	var keys []string
	if err := guard(errors.PhaseProperty, nil, func() {
		keys = obj.Keys()
	}); err != nil {
		return nil, err
	}
	return keys, nil
}

// CallMethod invokes the named member with r as the receiver. A member
// that is missing or not callable, and a member that throws, both fail
// with a call_failed error carrying the foreign diagnostic.
func (r Ref) CallMethod(name string, args ...any) (Ref, error) {
	obj, err := r.object(errors.PhaseCall, name)
	if err != nil {
		return Ref{}, err
	}
	var m goja.Value
	if err := guard(errors.PhaseCall, []string{name}, func() {
		m = obj.Get(name)
	}); err != nil {
		return Ref{}, err
	}
	fn, ok := goja.AssertFunction(m)
	if !ok {
		return Ref{}, errors.New(errors.PhaseCall, errors.KindCallFailed).
			Path(name).
			Detail("%s is not a function", name).
			JSType(jsTypeOf(m)).
			Build()
	}
	res, err := fn(obj, r.eng.toValues(args)...)
	if err != nil {
		return Ref{}, errors.CallFailed([]string{name}, err)
	}
	return r.eng.wrap(res), nil
}

// Invoke calls r itself as a function with an undefined receiver.
func (r Ref) Invoke(args ...any) (Ref, error) {
	if err := r.valid(errors.PhaseCall); err != nil {
		return Ref{}, err
	}
	fn, ok := goja.AssertFunction(r.val)
	if !ok {
		return Ref{}, errors.New(errors.PhaseCall, errors.KindCallFailed).
			Detail("value is not a function").
			JSType(jsTypeOf(r.val)).
			Build()
	}
	res, err := fn(goja.Undefined(), r.eng.toValues(args)...)
	if err != nil {
		return Ref{}, errors.CallFailed(nil, err)
	}
	return r.eng.wrap(res), nil
}

// New constructs a foreign object with r as the constructor.
func (r Ref) New(args ...any) (Ref, error) {
	if err := r.valid(errors.PhaseCall, "new"); err != nil {
		return Ref{}, err
	}
	obj, err := r.eng.vm.New(r.val, r.eng.toValues(args)...)
	if err != nil {
		return Ref{}, errors.CallFailed([]string{"new"}, err)
	}
	return Ref{eng: r.eng, val: obj}, nil
}

func (e *Engine) wrap(v goja.Value) Ref {
	if v == nil {
		v = goja.Undefined()
	}
	return Ref{eng: e, val: v}
}

func (e *Engine) toValues(args []any) []goja.Value {
	if len(args) == 0 {
		return nil
	}
	vals := make([]goja.Value, len(args))
	for i, a := range args {
		vals[i] = e.toValue(a)
	}
	return vals
}

// guard converts a foreign throw escaping as a panic into an error.
// Property access can run getters and proxy traps, which may raise.
func guard(phase errors.Phase, path []string, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch t := r.(type) {
		case *goja.Exception:
			err = errors.Wrap(phase, errors.KindCallFailed, t, "foreign code raised")
		case error:
			err = errors.Wrap(phase, errors.KindCallFailed, t, "foreign code raised")
		default:
			err = errors.New(phase, errors.KindCallFailed).Detail("foreign code raised: %v", t).Build()
		}
	}()
	fn()
	return nil
}

func exportFloat(v goja.Value, path []string) (float64, error) {
	if v != nil {
		switch n := v.Export().(type) {
		case int64:
			return float64(n), nil
		case float64:
			return n, nil
		}
	}
	return 0, errors.TypeMismatch(errors.PhaseProperty, path, "float64", jsTypeOf(v))
}

func exportBool(v goja.Value, path []string) (bool, error) {
	if v != nil {
		if b, ok := v.Export().(bool); ok {
			return b, nil
		}
	}
	return false, errors.TypeMismatch(errors.PhaseProperty, path, "bool", jsTypeOf(v))
}

func exportString(v goja.Value, path []string) (string, error) {
	if v != nil {
		if s, ok := v.Export().(string); ok {
			return s, nil
		}
	}
	return "", errors.TypeMismatch(errors.PhaseProperty, path, "string", jsTypeOf(v))
}

// jsTypeOf names a foreign value's type for diagnostics.
func jsTypeOf(v goja.Value) string {
	switch {
	case v == nil, goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}
	if _, ok := goja.AssertFunction(v); ok {
		return "function"
	}
	if _, ok := v.(*goja.Object); ok {
		return "object"
	}
	t := v.ExportType()
	if t == nil {
		return "undefined"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int64, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	}
	return t.String()
}
