// Package engine provides the low-level JavaScript runtime host.
//
// This package wraps goja and the goja_nodejs event loop to provide the
// primitives the typed binding layers are built from: script loading,
// foreign value handles, shape-checked conversions, method invocation,
// and host-to-foreign callback shims.
//
// # Architecture
//
// The engine package provides three main types:
//
//	Engine - Owns the goja runtime and its single-threaded event loop
//	Ref    - A handle to one foreign value with typed accessors
//	Func   - A host closure exposed as a foreign-callable function
//
// # Script Loading Flow
//
//  1. Engine.LoadURL/LoadFile/LoadSource return a *Load future immediately
//  2. Fetching (if any) happens off-loop; evaluation is a single loop job
//  3. The future resolves exactly once, after every global the script
//     defines has become visible
//
// # Loop Confinement
//
// The runtime is single-threaded. Every Ref and Func is confined to the
// engine's event loop: use Engine.Do to enter the loop from another
// goroutine, and never retain work outside it. The loader methods and
// Close are the only operations safe to call from anywhere. Do must not
// be called from code already running on the loop.
//
// # Conversions
//
// Typed accessors check the foreign value's shape and never coerce. A
// read of a string-valued property through GetFloat fails with a
// type_mismatch error naming both sides; it does not return NaN.
//
// Most users should use the pixi package for a typed API.
// This package is for advanced use cases requiring direct control.
package engine
