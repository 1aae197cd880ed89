package pixi

import (
	"github.com/pixibind/pixibind/engine"
)

// ApplicationOptions records construction options for an Application.
// Only fields whose setters were called are written to the foreign
// options object; an unset field stays absent there, letting the library
// apply its own default. Setting a field to its zero value and leaving it
// unset are therefore different things.
//
// Setters chain:
//
//	opts := pixi.NewApplicationOptions().
//	    SetWidth(800).
//	    SetHeight(600).
//	    SetBackgroundColor(0x1099bb)
type ApplicationOptions struct {
	width           *float64
	height          *float64
	backgroundColor *uint32
	antialias       *bool
	transparent     *bool
	resolution      *float64
	autoStart       *bool
	forceCanvas     *bool
}

// NewApplicationOptions creates an empty options record.
func NewApplicationOptions() *ApplicationOptions {
	return &ApplicationOptions{}
}

// SetWidth sets the renderer width in pixels.
func (o *ApplicationOptions) SetWidth(w float64) *ApplicationOptions {
	o.width = &w
	return o
}

// SetHeight sets the renderer height in pixels.
func (o *ApplicationOptions) SetHeight(h float64) *ApplicationOptions {
	o.height = &h
	return o
}

// SetBackgroundColor sets the clear color as 0xRRGGBB.
func (o *ApplicationOptions) SetBackgroundColor(c uint32) *ApplicationOptions {
	o.backgroundColor = &c
	return o
}

// SetAntialias requests an antialiased renderer.
func (o *ApplicationOptions) SetAntialias(v bool) *ApplicationOptions {
	o.antialias = &v
	return o
}

// SetTransparent requests a transparent view.
func (o *ApplicationOptions) SetTransparent(v bool) *ApplicationOptions {
	o.transparent = &v
	return o
}

// SetResolution sets the device pixel ratio of the renderer.
func (o *ApplicationOptions) SetResolution(r float64) *ApplicationOptions {
	o.resolution = &r
	return o
}

// SetAutoStart controls whether the application's ticker starts on
// construction.
func (o *ApplicationOptions) SetAutoStart(v bool) *ApplicationOptions {
	o.autoStart = &v
	return o
}

// SetForceCanvas forces the canvas renderer over WebGL.
func (o *ApplicationOptions) SetForceCanvas(v bool) *ApplicationOptions {
	o.forceCanvas = &v
	return o
}

// build materializes the recorded fields as a foreign options object.
func (o *ApplicationOptions) build(e *engine.Engine) (engine.Ref, error) {
	obj := e.NewObject()
	if o.width != nil {
		if err := obj.SetFloat("width", *o.width); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.height != nil {
		if err := obj.SetFloat("height", *o.height); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.backgroundColor != nil {
		if err := obj.SetFloat("backgroundColor", float64(*o.backgroundColor)); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.antialias != nil {
		if err := obj.SetBool("antialias", *o.antialias); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.transparent != nil {
		if err := obj.SetBool("transparent", *o.transparent); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.resolution != nil {
		if err := obj.SetFloat("resolution", *o.resolution); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.autoStart != nil {
		if err := obj.SetBool("autoStart", *o.autoStart); err != nil {
			return engine.Ref{}, err
		}
	}
	if o.forceCanvas != nil {
		if err := obj.SetBool("forceCanvas", *o.forceCanvas); err != nil {
			return engine.Ref{}, err
		}
	}
	return obj, nil
}
