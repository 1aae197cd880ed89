package pixi

import (
	"github.com/pixibind/pixibind/engine"
)

// Point wraps a foreign point, including the observable points used for
// anchors and positions.
type Point struct {
	ref engine.Ref
}

// NewPoint constructs a point at (x, y).
func (ns *Namespace) NewPoint(x, y float64) (*Point, error) {
	ctor, err := ns.Constructor("Point")
	if err != nil {
		return nil, err
	}
	ref, err := ctor.New(x, y)
	if err != nil {
		return nil, err
	}
	return &Point{ref: ref}, nil
}

// Ref returns the underlying handle.
func (p *Point) Ref() engine.Ref {
	return p.ref
}

// X reads the x coordinate.
func (p *Point) X() (float64, error) {
	return p.ref.GetFloat("x")
}

// Y reads the y coordinate.
func (p *Point) Y() (float64, error) {
	return p.ref.GetFloat("y")
}

// Set assigns v to both coordinates, the library's one-argument overload.
func (p *Point) Set(v float64) error {
	_, err := p.ref.CallMethod("set", v)
	return err
}

// SetXY assigns the coordinates independently.
func (p *Point) SetXY(x, y float64) error {
	_, err := p.ref.CallMethod("set", x, y)
	return err
}

// Rectangle wraps a foreign rectangle such as the application's screen.
type Rectangle struct {
	ref engine.Ref
}

// NewRectangle constructs a rectangle.
func (ns *Namespace) NewRectangle(x, y, width, height float64) (*Rectangle, error) {
	ctor, err := ns.Constructor("Rectangle")
	if err != nil {
		return nil, err
	}
	ref, err := ctor.New(x, y, width, height)
	if err != nil {
		return nil, err
	}
	return &Rectangle{ref: ref}, nil
}

// Ref returns the underlying handle.
func (r *Rectangle) Ref() engine.Ref {
	return r.ref
}

// X reads the left edge.
func (r *Rectangle) X() (float64, error) {
	return r.ref.GetFloat("x")
}

// Y reads the top edge.
func (r *Rectangle) Y() (float64, error) {
	return r.ref.GetFloat("y")
}

// Width reads the width.
func (r *Rectangle) Width() (float64, error) {
	return r.ref.GetFloat("width")
}

// Height reads the height.
func (r *Rectangle) Height() (float64, error) {
	return r.ref.GetFloat("height")
}
