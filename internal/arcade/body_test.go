package arcade

import (
	"math"
	"testing"
	"time"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"apart horizontally", Box{0, 0, 10, 10}, Box{15, 0, 10, 10}, false},
		{"apart vertically", Box{0, 0, 10, 10}, Box{0, 15, 10, 10}, false},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 5, 5}, true},
		{"empty box", Box{5, 5, 0, 0}, Box{0, 0, 10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWorldInWorld(t *testing.T) {
	w := World{W: 640, H: 480}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"center", Box{300, 200, 40, 40}, true},
		{"on right edge", Box{640, 100, 40, 40}, true},
		{"past right edge", Box{641, 100, 40, 40}, false},
		{"above top", Box{100, -41, 40, 40}, false},
		{"touching top", Box{100, -40, 40, 40}, true},
		{"below bottom", Box{100, 481, 40, 40}, false},
		{"past left edge", Box{-41, 100, 40, 40}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.InWorld(tc.b); got != tc.expected {
				t.Errorf("InWorld(%+v) = %v, expected %v", tc.b, got, tc.expected)
			}
		})
	}
}

func TestBodyHitbox(t *testing.T) {
	b := NewBody(100, 220, 40, 40)
	b.SetHitbox(30, 30, 5, 5)

	hb := b.Hitbox()
	if hb != (Box{105, 225, 30, 30}) {
		t.Errorf("Hitbox() = %+v, expected inset 5", hb)
	}
	if b.Bounds() != (Box{100, 220, 40, 40}) {
		t.Errorf("Bounds() = %+v", b.Bounds())
	}
}

func TestBodyStep(t *testing.T) {
	b := NewBody(0, 0, 10, 10)
	b.Gravity.Y = 1000
	b.Vel.X = -400

	b.Step(100 * time.Millisecond)

	if math.Abs(b.Vel.Y-100) > 1e-9 {
		t.Errorf("Vel.Y = %f, expected 100", b.Vel.Y)
	}
	if math.Abs(b.Pos.Y-10) > 1e-9 {
		t.Errorf("Pos.Y = %f, expected 10", b.Pos.Y)
	}
	if math.Abs(b.Pos.X+40) > 1e-9 {
		t.Errorf("Pos.X = %f, expected -40", b.Pos.X)
	}
}

func TestBodyStepDisabled(t *testing.T) {
	b := NewBody(5, 5, 10, 10)
	b.Gravity.Y = 1000
	b.Vel.Y = 50
	b.Enabled = false

	b.Step(time.Second)

	if b.Pos != (Vec2{5, 5}) || b.Vel.Y != 50 {
		t.Errorf("disabled body moved: pos %+v vel %+v", b.Pos, b.Vel)
	}
}
