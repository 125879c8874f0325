package corridor

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTriangleMarker(t *testing.T) {
	// Horizontal path direction: tip ahead of the start, base corners
	// straddling it vertically.
	tri := triangleMarker(Pt(10, 10), Pt(20, 10), 5)

	if !pointsClose(tri[0], Pt(18, 10)) {
		t.Errorf("tip = %v, want (18,10)", tri[0])
	}
	if !pointsClose(tri[1], Pt(10, 14)) {
		t.Errorf("left corner = %v, want (10,14)", tri[1])
	}
	if !pointsClose(tri[2], Pt(10, 6)) {
		t.Errorf("right corner = %v, want (10,6)", tri[2])
	}
}

func TestTriangleMarkerDiagonal(t *testing.T) {
	tri := triangleMarker(Pt(0, 0), Pt(10, 10), 10)

	d := 1.6 * 10 / math.Sqrt2
	if !pointsClose(tri[0], Pt(d, d)) {
		t.Errorf("tip = %v, want (%v,%v)", tri[0], d, d)
	}
	// Base corners are perpendicular to the direction, 8 px out.
	s := 0.8 * 10 / math.Sqrt2
	if !pointsClose(tri[1], Pt(-s, s)) {
		t.Errorf("left corner = %v, want (%v,%v)", tri[1], -s, s)
	}
	if !pointsClose(tri[2], Pt(s, -s)) {
		t.Errorf("right corner = %v, want (%v,%v)", tri[2], s, -s)
	}
}

func TestTriangleMarkerCoincidentPoints(t *testing.T) {
	// No derivable direction: the marker points along the fallback axis
	// instead of collapsing.
	tri := triangleMarker(Pt(50, 50), Pt(50, 50), 5)

	if !pointsClose(tri[0], Pt(58, 50)) {
		t.Errorf("tip = %v, want (58,50)", tri[0])
	}
	if !pointsClose(tri[1], Pt(50, 54)) || !pointsClose(tri[2], Pt(50, 46)) {
		t.Errorf("corners = %v, %v", tri[1], tri[2])
	}
}

func TestEndCircleRadius(t *testing.T) {
	cases := []struct {
		radius int
		want   float64
	}{
		{1, 0}, // truncates to zero, circle omitted
		{5, 4},
		{10, 9},
		{20, 18},
	}
	for _, c := range cases {
		if got := endCircleRadius(c.radius); got != c.want {
			t.Errorf("endCircleRadius(%d) = %v, want %v", c.radius, got, c.want)
		}
	}
}

func TestDrawMarkers(t *testing.T) {
	c := NewCompositor()
	overlay := NewPixmap(100, 100)
	path := []Point{Pt(30, 50), Pt(70, 50)}
	style := DefaultStyle(10)

	if err := c.drawMarkers(overlay, path, style); err != nil {
		t.Fatalf("drawMarkers: %v", err)
	}

	// The triangle base edge passes through the start point.
	if overlay.GetPixel(30, 50).A == 0 {
		t.Error("triangle outline should cover the start point")
	}
	// The end circle outline sits 9 px from the end point.
	if overlay.GetPixel(70+9, 50).A == 0 {
		t.Error("circle outline should cover a point at its radius")
	}
	// The circle center is hollow.
	if overlay.GetPixel(70, 50).A != 0 {
		t.Error("circle interior should be empty")
	}
	// Far away stays empty.
	if overlay.GetPixel(5, 5).A != 0 {
		t.Error("far pixels should be untouched")
	}
}

func TestDrawMarkersZeroAlpha(t *testing.T) {
	c := NewCompositor()
	overlay := NewPixmap(100, 100)
	path := []Point{Pt(30, 50), Pt(70, 50)}
	style := DefaultStyle(10)
	style.MarkerAlpha = 0

	if err := c.drawMarkers(overlay, path, style); err != nil {
		t.Fatalf("drawMarkers: %v", err)
	}
	for _, b := range overlay.Data() {
		if b != 0 {
			t.Fatal("zero-alpha markers should leave the overlay untouched")
		}
	}
}
