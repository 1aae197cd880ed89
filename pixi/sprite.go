package pixi

import (
	"github.com/pixibind/pixibind/engine"
)

// Sprite wraps a foreign sprite.
type Sprite struct {
	ref engine.Ref
}

// SpriteFromImage creates a sprite from an image path or URL. Texture
// loading is deferred by the library; the sprite is usable immediately.
func (ns *Namespace) SpriteFromImage(path string) (*Sprite, error) {
	factory, err := ns.Member("Sprite")
	if err != nil {
		return nil, err
	}
	ref, err := factory.CallMethod("fromImage", path)
	if err != nil {
		return nil, err
	}
	return &Sprite{ref: ref}, nil
}

// SpriteFromImageWith is the full-arity image factory. Nil optionals pass
// an explicit undefined so the library applies its own defaults.
func (ns *Namespace) SpriteFromImageWith(path string, crossorigin *bool, scaleMode *float64) (*Sprite, error) {
	factory, err := ns.Member("Sprite")
	if err != nil {
		return nil, err
	}
	args := []any{path, engine.Undefined, engine.Undefined}
	if crossorigin != nil {
		args[1] = *crossorigin
	}
	if scaleMode != nil {
		args[2] = *scaleMode
	}
	ref, err := factory.CallMethod("fromImage", args...)
	if err != nil {
		return nil, err
	}
	return &Sprite{ref: ref}, nil
}

// Ref returns the underlying handle.
func (s *Sprite) Ref() engine.Ref {
	return s.ref
}

// X reads the horizontal position.
func (s *Sprite) X() (float64, error) {
	return s.ref.GetFloat("x")
}

// SetX writes the horizontal position.
func (s *Sprite) SetX(v float64) error {
	return s.ref.SetFloat("x", v)
}

// Y reads the vertical position.
func (s *Sprite) Y() (float64, error) {
	return s.ref.GetFloat("y")
}

// SetY writes the vertical position.
func (s *Sprite) SetY(v float64) error {
	return s.ref.SetFloat("y", v)
}

// Rotation reads the rotation in radians.
func (s *Sprite) Rotation() (float64, error) {
	return s.ref.GetFloat("rotation")
}

// SetRotation writes the rotation in radians.
func (s *Sprite) SetRotation(v float64) error {
	return s.ref.SetFloat("rotation", v)
}

// Visible reads the visibility flag.
func (s *Sprite) Visible() (bool, error) {
	return s.ref.GetBool("visible")
}

// SetVisible writes the visibility flag.
func (s *Sprite) SetVisible(v bool) error {
	return s.ref.SetBool("visible", v)
}

// Anchor returns the sprite's anchor point.
func (s *Sprite) Anchor() (*Point, error) {
	ref, err := s.ref.GetRef("anchor")
	if err != nil {
		return nil, err
	}
	return &Point{ref: ref}, nil
}

// Position returns the sprite's position point. Writes through it alias
// writes through SetX and SetY.
func (s *Sprite) Position() (*Point, error) {
	ref, err := s.ref.GetRef("position")
	if err != nil {
		return nil, err
	}
	return &Point{ref: ref}, nil
}

// Texture returns the sprite's texture as an opaque handle.
func (s *Sprite) Texture() (engine.Ref, error) {
	return s.ref.GetRef("texture")
}
