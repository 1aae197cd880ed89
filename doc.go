// Package pixibind provides typed Go bindings for a dynamically typed
// JavaScript 2D rendering library.
//
// The binding hosts the library in an embedded JavaScript engine and exposes
// its untyped surface through typed facades: constructors, properties and
// methods become Go methods with explicit error returns, and tick callbacks
// become Go functions. Nothing is rendered on the Go side; the library keeps
// full ownership of its objects.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	pixibind/            Root package with optional-argument helpers
//	├── pixi/            High-level API: runtime, namespace and typed facades
//	├── engine/          JavaScript engine hosting, handles and callbacks
//	├── errors/          Structured error types for foreign failures
//	├── pixistub/        Embedded renderless library miniature for tests
//	└── cmd/pixirun/     Scene runner CLI with an interactive TUI
//
// # Quick Start
//
// Load the library and build a scene:
//
//	rt, err := pixi.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	if err := rt.LoadURL(ctx, libraryURL).Wait(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	err = rt.Do(ctx, func(ns *pixi.Namespace) error {
//	    app, err := ns.NewApplication()
//	    if err != nil {
//	        return err
//	    }
//	    sprite, err := ns.SpriteFromImage("bunny.png")
//	    if err != nil {
//	        return err
//	    }
//	    stage, err := app.Stage()
//	    if err != nil {
//	        return err
//	    }
//	    return stage.AddChild(sprite)
//	})
//
// # Optional Arguments
//
// Foreign signatures take trailing optional arguments; the typed surface
// models them as pointers. The root package helpers build them inline:
//
//	sprite, err := ns.SpriteFromImageWith("bunny.png", nil, pixibind.Float64(1))
//
// A nil optional is passed as an explicit undefined, so the library applies
// its own default exactly as it would for an omitted argument.
//
// # Thread Safety
//
// Each runtime owns one engine loop, and every foreign value is confined to
// it. Runtime.Do is the bridge: it runs a function on the loop and waits.
// Handles may be carried between goroutines, but their methods must only be
// called inside Do or inside a callback. Load methods, Close and Do itself
// are safe from any goroutine.
package pixibind
