package pixi

import (
	"context"
	"testing"
)

func TestContainer_AddRemoveChild(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		stage, err := ns.NewContainer()
		if err != nil {
			return err
		}
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}

		if n, _ := stage.ChildCount(); n != 0 {
			t.Errorf("empty container child count = %d, want 0", n)
		}

		if err := stage.AddChild(sprite); err != nil {
			return err
		}
		if n, _ := stage.ChildCount(); n != 1 {
			t.Errorf("child count after add = %d, want 1", n)
		}

		child, err := stage.ChildAt(0)
		if err != nil {
			return err
		}
		if !child.Same(sprite.Ref()) {
			t.Error("ChildAt(0) should designate the added sprite")
		}

		if err := stage.RemoveChild(sprite); err != nil {
			return err
		}
		if n, _ := stage.ChildCount(); n != 0 {
			t.Errorf("child count after remove = %d, want 0", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestContainer_AddChildReparents(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		first, err := ns.NewContainer()
		if err != nil {
			return err
		}
		second, err := ns.NewContainer()
		if err != nil {
			return err
		}
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}

		if err := first.AddChild(sprite); err != nil {
			return err
		}
		if err := second.AddChild(sprite); err != nil {
			return err
		}

		if n, _ := first.ChildCount(); n != 0 {
			t.Errorf("first container child count = %d, want 0 after reparent", n)
		}
		if n, _ := second.ChildCount(); n != 1 {
			t.Errorf("second container child count = %d, want 1", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestContainer_Nesting(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		outer, err := ns.NewContainer()
		if err != nil {
			return err
		}
		inner, err := ns.NewContainer()
		if err != nil {
			return err
		}

		// Containers are display objects too.
		if err := outer.AddChild(inner); err != nil {
			return err
		}
		child, err := outer.ChildAt(0)
		if err != nil {
			return err
		}
		if !child.Same(inner.Ref()) {
			t.Error("nested container should be the first child")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestContainer_Visibility(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		c, err := ns.NewContainer()
		if err != nil {
			return err
		}
		if v, _ := c.Visible(); !v {
			t.Error("new container should be visible")
		}
		if err := c.SetVisible(false); err != nil {
			return err
		}
		if v, _ := c.Visible(); v {
			t.Error("visible = true after SetVisible(false)")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}
