package corridor

// Marker geometry is computed in native image-space coordinates; the shapes
// are small enough that supersampling buys nothing perceptible at the
// chosen stroke widths.

// markerAxisFallback is the direction used when the first two path points
// coincide and no direction can be derived.
var markerAxisFallback = Point{X: 1, Y: 0}

// triangleMarker returns the three corners of the start marker: an outlined
// triangle with its tip ahead of the first path point along the path
// direction and its base corners straddling the point perpendicularly.
func triangleMarker(first, second Point, radius int) [3]Point {
	r := float64(radius)

	u := second.Sub(first)
	if u.Length() < 1e-9 {
		u = markerAxisFallback
	} else {
		u = u.Normalize()
	}
	p := u.Perp()

	tip := first.Add(u.Mul(1.6 * r))
	left := first.Add(p.Mul(0.8 * r))
	right := first.Sub(p.Mul(0.8 * r))
	return [3]Point{tip, left, right}
}

// endCircleRadius returns the radius of the end marker circle.
func endCircleRadius(radius int) float64 {
	return float64(int(0.9 * float64(radius)))
}

// drawMarkers rasterizes the start triangle and end circle outlines into a
// native-resolution mask and source-over blends them onto the overlay with
// the marker opacity. Blending over means a zero-alpha marker contributes
// nothing and the opaque ring underneath is never thinned out.
func (c *Compositor) drawMarkers(overlay *Pixmap, path []Point, style Style) error {
	mask := NewMask(overlay.Width(), overlay.Height())
	width := float64(markerStrokeWidth(style.CorridorRadius))

	tri := triangleMarker(path[0], path[1], style.CorridorRadius)
	if err := c.renderer.StrokePolyline(mask, tri[:], width, true, 255); err != nil {
		return err
	}

	end := path[len(path)-1]
	if r := endCircleRadius(style.CorridorRadius); r > 0 {
		if err := c.renderer.StrokeCircle(mask, end, r, width, 255); err != nil {
			return err
		}
	}

	overlay.BlendMasked(EdgeColor, mask, style.MarkerAlpha)
	return nil
}
