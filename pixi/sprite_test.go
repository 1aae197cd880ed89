package pixi

import (
	"context"
	"testing"
)

func TestSpriteFromImage(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}

		texture, err := sprite.Texture()
		if err != nil {
			return err
		}
		if src, _ := texture.GetString("source"); src != "bunny.png" {
			t.Errorf("texture source = %q, want %q", src, "bunny.png")
		}

		if v, _ := sprite.Visible(); !v {
			t.Error("new sprite should be visible")
		}
		if x, _ := sprite.X(); x != 0 {
			t.Errorf("new sprite x = %v, want 0", x)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestSpriteFromImageWith(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		crossorigin := true
		scaleMode := 1.0
		sprite, err := ns.SpriteFromImageWith("bunny.png", &crossorigin, &scaleMode)
		if err != nil {
			return err
		}
		texture, err := sprite.Texture()
		if err != nil {
			return err
		}
		if co, _ := texture.GetBool("crossorigin"); !co {
			t.Error("crossorigin should be recorded on the texture")
		}
		if sm, _ := texture.GetFloat("scaleMode"); sm != 1.0 {
			t.Errorf("scaleMode = %v, want 1", sm)
		}

		// Nil optionals surface as undefined, so the keys never appear.
		plain, err := ns.SpriteFromImageWith("cloud.png", nil, nil)
		if err != nil {
			return err
		}
		texture, err = plain.Texture()
		if err != nil {
			return err
		}
		for _, key := range []string{"crossorigin", "scaleMode"} {
			has, err := texture.Has(key)
			if err != nil {
				return err
			}
			if has {
				t.Errorf("texture key %q should stay absent when the optional is nil", key)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestSprite_Transforms(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}

		if err := sprite.SetX(400); err != nil {
			return err
		}
		if err := sprite.SetY(300); err != nil {
			return err
		}
		if err := sprite.SetRotation(0.5); err != nil {
			return err
		}
		if err := sprite.SetVisible(false); err != nil {
			return err
		}

		if x, _ := sprite.X(); x != 400 {
			t.Errorf("x = %v, want 400", x)
		}
		if y, _ := sprite.Y(); y != 300 {
			t.Errorf("y = %v, want 300", y)
		}
		if r, _ := sprite.Rotation(); r != 0.5 {
			t.Errorf("rotation = %v, want 0.5", r)
		}
		if v, _ := sprite.Visible(); v {
			t.Error("visible = true, want false")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestSprite_Anchor(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}
		anchor, err := sprite.Anchor()
		if err != nil {
			return err
		}

		// The one-argument overload assigns both coordinates.
		if err := anchor.Set(0.5); err != nil {
			return err
		}
		if x, _ := anchor.X(); x != 0.5 {
			t.Errorf("anchor x = %v, want 0.5", x)
		}
		if y, _ := anchor.Y(); y != 0.5 {
			t.Errorf("anchor y = %v, want 0.5", y)
		}

		if err := anchor.SetXY(0.25, 0.75); err != nil {
			return err
		}
		if x, _ := anchor.X(); x != 0.25 {
			t.Errorf("anchor x = %v, want 0.25", x)
		}
		if y, _ := anchor.Y(); y != 0.75 {
			t.Errorf("anchor y = %v, want 0.75", y)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestSprite_PositionAliasesCoordinates(t *testing.T) {
	rt := newTestRuntime(t)

	err := rt.Do(context.Background(), func(ns *Namespace) error {
		sprite, err := ns.SpriteFromImage("bunny.png")
		if err != nil {
			return err
		}
		pos, err := sprite.Position()
		if err != nil {
			return err
		}

		if err := pos.SetXY(120, 80); err != nil {
			return err
		}
		if x, _ := sprite.X(); x != 120 {
			t.Errorf("x after position write = %v, want 120", x)
		}
		if y, _ := sprite.Y(); y != 80 {
			t.Errorf("y after position write = %v, want 80", y)
		}

		if err := sprite.SetX(7); err != nil {
			return err
		}
		if x, _ := pos.X(); x != 7 {
			t.Errorf("position x after SetX = %v, want 7", x)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}
