// Package pixi provides the high-level typed binding to the PIXI scene
// graph library.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := pixi.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	// Load the library; the future resolves exactly once
//	if err := rt.LoadURL(ctx, cdnURL).Wait(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Every binding operation happens on the engine loop
//	err = rt.Do(ctx, func(ns *pixi.Namespace) error {
//	    opts := pixi.NewApplicationOptions().
//	        SetWidth(800).
//	        SetHeight(600).
//	        SetBackgroundColor(0x1099bb)
//	    app, err := ns.NewApplicationWith(opts)
//	    if err != nil {
//	        return err
//	    }
//
//	    bunny, err := ns.SpriteFromImage("bunny.png")
//	    if err != nil {
//	        return err
//	    }
//	    stage, err := app.Stage()
//	    if err != nil {
//	        return err
//	    }
//	    return stage.AddChild(bunny)
//	})
//
// # Overloads
//
// The foreign library overloads by argument count; Go does not. Every
// arity is therefore a distinct operation: NewApplication and
// NewApplicationWith, SpriteFromImage and SpriteFromImageWith, Point.Set
// and Point.SetXY, Ticker.Update and Ticker.UpdateAt.
//
// # Optionals
//
// ApplicationOptions records only the fields its setters were called
// with; an unset field never appears on the foreign options object, which
// is how the library distinguishes "use the default" from "use zero".
// Optional trailing call arguments take *T, where nil passes an explicit
// undefined.
//
// # Callbacks
//
// Ticker.Add bridges a Go closure into the foreign ticker and returns a
// TickerHandle. The caller owns the handle: Remove unregisters it (and is
// idempotent), Release frees the shim afterwards. Releasing a handle that
// foreign code can still reach downgrades its invocations to logged
// no-ops.
//
// # Concurrency
//
// The foreign runtime is single threaded. Namespace, the facades and
// every value derived from them are confined to the engine loop; use
// Runtime.Do to enter it. Errors cross the boundary, values do not.
package pixi
