package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"shared_vertical_edge", Rect{0, 0, 16, 16}, Rect{16, 0, 16, 16}, false},
		{"shared_horizontal_edge", Rect{0, 0, 16, 16}, Rect{0, 16, 16, 16}, false},
		{"corner_touch", Rect{0, 0, 16, 16}, Rect{16, 16, 16, 16}, false},
		{"one_pixel_overlap", Rect{0, 0, 16, 16}, Rect{15, 0, 16, 16}, true},
		{"contained", Rect{0, 0, 32, 32}, Rect{8, 8, 4, 4}, true},
		{"identical", Rect{5, 5, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"apart", Rect{0, 0, 10, 10}, Rect{40, 40, 10, 10}, false},
		{"overlap_x_only", Rect{0, 0, 16, 16}, Rect{8, 30, 16, 16}, false},
		{"fractional", Rect{0, 0, 16, 16}, Rect{15.5, 15.5, 1, 1}, true},
		{"zero_size", Rect{8, 8, 0, 0}, Rect{0, 0, 16, 16}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.a, c.b); got != c.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, c.want)
			}
			if got := Overlaps(c.b, c.a); got != c.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOverlapsSymmetricGrid(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 16, H: 16}
	for x := -10.0; x <= 40; x += 2 {
		for y := -10.0; y <= 40; y += 2 {
			other := Rect{X: x, Y: y, W: 12, H: 8}
			if Overlaps(base, other) != Overlaps(other, base) {
				t.Fatalf("asymmetric at %+v", other)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{5, 0, -4, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestApplyGravity(t *testing.T) {
	if got := ApplyGravity(0, 0.5, 8); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
	if got := ApplyGravity(7.8, 0.5, 8); got != 8 {
		t.Errorf("got %v, want capped 8", got)
	}
	if got := ClampSpeed(-12, 6); got != -6 {
		t.Errorf("ClampSpeed = %v, want -6", got)
	}
}
