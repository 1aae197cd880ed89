package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pixibind/pixibind/engine"
	"github.com/pixibind/pixibind/pixi"
	"github.com/pixibind/pixibind/pixistub"
)

func main() {
	var (
		lib         = flag.String("lib", "stub", `Library to load: "stub", a file path or an http(s) URL`)
		image       = flag.String("image", "bunny.png", "Image for the demo sprite")
		width       = flag.Float64("width", 800, "Application width")
		height      = flag.Float64("height", 600, "Application height")
		background  = flag.Uint("bg", 0x1099bb, "Background color (RGB)")
		ticks       = flag.Int("ticks", 60, "Frames to step in headless mode")
		list        = flag.Bool("list", false, "List the namespace's members and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		profileMode = flag.String("profile", "", "Write a profile: cpu or mem")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		lg, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(lg.Named("engine"))
		pixi.SetLogger(lg.Named("pixi"))
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*lib, *image, *width, *height, uint32(*background)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*lib, *image, *width, *height, uint32(*background), *ticks, *list, *profileMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(lib, image string, width, height float64, background uint32, ticks int, listOnly bool, profileMode string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	ctx := context.Background()

	rt, err := pixi.New(ctx)
	if err != nil {
		return fmt.Errorf("create runtime: %w", err)
	}
	defer rt.Close(ctx)

	if err := loadLibrary(ctx, rt, lib); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	version, err := rt.Version(ctx)
	if err != nil {
		return fmt.Errorf("probe version: %w", err)
	}
	fmt.Printf("Library: %s (%s)\n", version, lib)

	if listOnly {
		return listMembers(ctx, rt)
	}

	fmt.Printf("Scene: %vx%v, background #%06x\n", width, height, background)

	var (
		ticker   *pixi.Ticker
		sprite   *pixi.Sprite
		handle   *pixi.TickerHandle
		rotation float64
		fps      float64
	)
	err = rt.Do(ctx, func(ns *pixi.Namespace) error {
		opts := pixi.NewApplicationOptions().
			SetWidth(width).
			SetHeight(height).
			SetBackgroundColor(background).
			SetAutoStart(false)
		app, err := ns.NewApplicationWith(opts)
		if err != nil {
			return err
		}

		if err := mountView(ns, app); err != nil {
			return err
		}

		if sprite, err = ns.SpriteFromImage(image); err != nil {
			return err
		}
		anchor, err := sprite.Anchor()
		if err != nil {
			return err
		}
		if err := anchor.Set(0.5); err != nil {
			return err
		}
		if err := sprite.SetX(width / 2); err != nil {
			return err
		}
		if err := sprite.SetY(height / 2); err != nil {
			return err
		}

		stage, err := app.Stage()
		if err != nil {
			return err
		}
		if err := stage.AddChild(sprite); err != nil {
			return err
		}

		if ticker, err = app.Ticker(); err != nil {
			return err
		}
		handle, err = ticker.Add(func(delta float64) {
			r, err := sprite.Rotation()
			if err != nil {
				return
			}
			sprite.SetRotation(r + 0.1*delta)
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	fmt.Printf("\nStepping %d frames...\n", ticks)
	frame := 1000.0 / 60.0
	for i := 0; i < ticks; i++ {
		err := rt.Do(ctx, func(*pixi.Namespace) error {
			return ticker.UpdateAt(float64(i) * frame)
		})
		if err != nil {
			return fmt.Errorf("step frame %d: %w", i, err)
		}
	}

	err = rt.Do(ctx, func(*pixi.Namespace) error {
		if err := handle.Remove(); err != nil {
			return err
		}
		handle.Release()
		var err error
		if rotation, err = sprite.Rotation(); err != nil {
			return err
		}
		fps, err = ticker.FPS()
		return err
	})
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	fmt.Printf("Final rotation: %.3f rad\n", rotation)
	fmt.Printf("Measured FPS: %.1f\n", fps)
	return nil
}

// loadLibrary picks the load entry point from the -lib value.
func loadLibrary(ctx context.Context, rt *pixi.Runtime, lib string) error {
	var ld *engine.Load
	switch {
	case lib == "stub":
		ld = rt.LoadSource(ctx, pixistub.ScriptName, pixistub.Source())
	case strings.HasPrefix(lib, "http://"), strings.HasPrefix(lib, "https://"):
		ld = rt.LoadURL(ctx, lib)
	default:
		ld = rt.LoadFile(ctx, lib)
	}
	return ld.Wait(ctx)
}

// mountView appends the application's canvas to document.body when the
// host environment provides one.
func mountView(ns *pixi.Namespace, app *pixi.Application) error {
	document, ok := ns.Engine().Global("document")
	if !ok {
		return nil
	}
	body, err := document.GetRef("body")
	if err != nil {
		return nil
	}
	view, err := app.View()
	if err != nil {
		return err
	}
	_, err = body.CallMethod("appendChild", view)
	return err
}

func listMembers(ctx context.Context, rt *pixi.Runtime) error {
	type member struct {
		name string
		kind string
	}
	var members []member
	err := rt.Do(ctx, func(ns *pixi.Namespace) error {
		keys, err := ns.Root().Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			v, err := ns.Root().Get(key)
			if err != nil {
				return err
			}
			kind := "value"
			if v.IsFunction() {
				kind = "constructor"
			}
			members = append(members, member{name: key, kind: kind})
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(members, func(i, j int) bool { return members[i].name < members[j].name })
	fmt.Printf("\nNamespace members:\n")
	for _, m := range members {
		fmt.Printf("  %-20s %s\n", m.name, m.kind)
	}
	return nil
}
