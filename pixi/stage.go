package pixi

import (
	"strconv"

	"github.com/pixibind/pixibind/engine"
)

// DisplayObject is any facade backed by a foreign display-list node.
type DisplayObject interface {
	Ref() engine.Ref
}

// Container wraps a foreign display-list container. Application.Stage
// returns the root container.
type Container struct {
	ref engine.Ref
}

// NewContainer constructs an empty container.
func (ns *Namespace) NewContainer() (*Container, error) {
	ctor, err := ns.Constructor("Container")
	if err != nil {
		return nil, err
	}
	ref, err := ctor.New()
	if err != nil {
		return nil, err
	}
	return &Container{ref: ref}, nil
}

// Ref returns the underlying handle.
func (c *Container) Ref() engine.Ref {
	return c.ref
}

// AddChild appends a display object to the container.
func (c *Container) AddChild(child DisplayObject) error {
	_, err := c.ref.CallMethod("addChild", child.Ref())
	return err
}

// RemoveChild detaches a display object from the container.
func (c *Container) RemoveChild(child DisplayObject) error {
	_, err := c.ref.CallMethod("removeChild", child.Ref())
	return err
}

// ChildCount reports the number of direct children.
func (c *Container) ChildCount() (int, error) {
	children, err := c.ref.GetRef("children")
	if err != nil {
		return 0, err
	}
	n, err := children.GetFloat("length")
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ChildAt returns the child at index i as an opaque handle.
func (c *Container) ChildAt(i int) (engine.Ref, error) {
	children, err := c.ref.GetRef("children")
	if err != nil {
		return engine.Ref{}, err
	}
	return children.GetRef(strconv.Itoa(i))
}

// Visible reads the container's visibility flag.
func (c *Container) Visible() (bool, error) {
	return c.ref.GetBool("visible")
}

// SetVisible writes the container's visibility flag.
func (c *Container) SetVisible(v bool) error {
	return c.ref.SetBool("visible", v)
}
