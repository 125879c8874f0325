// Package stroke converts stroked polylines into filled outline loops.
//
// The expansion follows the tiny-skia/kurbo pattern: the outer offset path
// runs forward, the inner offset path is reversed, caps connect the endpoints
// and joins connect the segments. Unlike a general path stroker, the input
// here is always a flattened polyline and the output is a set of closed point
// loops ready for nonzero-winding scanline fill, so join and cap arcs are
// emitted directly as chords at the configured tolerance.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycles).
type Point struct {
	X, Y float64
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points as a vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the negated point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the angle of the vector in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapButt specifies a flat line cap.
	CapButt LineCap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter LineJoin = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Style defines the stroke geometry for expansion.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a solid 1-pixel stroke with butt caps and miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the style with the given width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithCap returns a copy of the style with the given cap.
func (s Style) WithCap(c LineCap) Style {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the style with the given join.
func (s Style) WithJoin(j LineJoin) Style {
	s.Join = j
	return s
}

// RoundStyle returns a stroke style with round caps and joins.
func RoundStyle(width float64) Style {
	return DefaultStyle().WithWidth(width).WithCap(CapRound).WithJoin(JoinRound)
}

// Expander converts stroked polylines into filled outline loops.
type Expander struct {
	style Style

	// Maximum chord error when flattening join and cap arcs.
	tolerance float64

	forward  []Point
	backward []Point

	lastTan  Point // unit tangent of the previous segment
	lastNorm Point // half-width normal of the previous segment
}

// NewExpander creates an expander with the given stroke style.
func NewExpander(style Style) *Expander {
	if style.Width <= 0 {
		style.Width = 1
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4.0
	}
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance sets the arc flattening tolerance.
func (e *Expander) SetTolerance(t float64) {
	if t > 0 {
		e.tolerance = t
	}
}

// Expand converts a polyline into closed outline loops. An open polyline
// produces a single loop (forward offsets, end cap, reversed backward
// offsets, start cap); a closed polyline produces two loops, one per side.
// Polylines with fewer than two distinct points produce no loops.
func (e *Expander) Expand(pts []Point, closed bool) [][]Point {
	pts = dropCoincident(pts)
	if closed && len(pts) > 2 && pts[len(pts)-1].Sub(pts[0]).Length() < 1e-9 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil
	}
	if closed && len(pts) < 3 {
		closed = false
	}

	e.forward = e.forward[:0]
	e.backward = e.backward[:0]

	h := 0.5 * e.style.Width

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		tan := p1.Sub(p0).Normalize()
		norm := tan.Perp().Scale(h)

		if i == 0 {
			e.forward = append(e.forward, p0.Sub(norm))
			e.backward = append(e.backward, p0.Add(norm))
		} else {
			e.join(p0, tan, norm)
		}

		e.forward = append(e.forward, p1.Sub(norm))
		e.backward = append(e.backward, p1.Add(norm))
		e.lastTan = tan
		e.lastNorm = norm
	}

	if closed {
		// Join the last segment back onto the first, then emit one loop
		// per side. The inner loop runs reversed so nonzero winding
		// keeps the band between the two loops filled and nothing else.
		first := pts[1].Sub(pts[0]).Normalize()
		e.join(pts[0], first, first.Perp().Scale(h))
		return [][]Point{
			append([]Point(nil), e.forward...),
			reversed(e.backward),
		}
	}

	loop := make([]Point, 0, len(e.forward)+len(e.backward)+8)
	loop = append(loop, e.forward...)
	loop = e.appendCap(loop, pts[n-1], e.lastNorm, e.lastTan)
	loop = append(loop, reversed(e.backward)...)
	first := pts[1].Sub(pts[0]).Normalize()
	loop = e.appendCap(loop, pts[0], first.Perp().Scale(h).Neg(), first.Neg())
	return [][]Point{loop}
}

// join connects the previous segment to the one starting at p with unit
// tangent tan and half-width normal norm.
func (e *Expander) join(p, tan, norm Point) {
	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	angle := math.Atan2(cross, dot)

	// Near-collinear segments need no join geometry, but both sides still
	// get a vertex to keep the offsets continuous.
	if dot > 0 && math.Abs(cross) < 2*e.tolerance/e.style.Width {
		e.forward = append(e.forward, p.Sub(norm))
		e.backward = append(e.backward, p.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinRound:
		if angle > 0 {
			e.forward = appendArc(e.forward, p, e.lastNorm.Neg(), angle, e.tolerance)
			e.backward = append(e.backward, p.Add(norm))
		} else {
			e.forward = append(e.forward, p.Sub(norm))
			e.backward = appendArc(e.backward, p, e.lastNorm, angle, e.tolerance)
		}
	case JoinMiter:
		e.miterJoin(p, tan, norm, angle)
	case JoinBevel:
		e.forward = append(e.forward, p.Sub(norm))
		e.backward = append(e.backward, p.Add(norm))
	}
}

// miterJoin adds a miter point on the outer side when within the miter
// limit, degrading to a bevel otherwise.
func (e *Expander) miterJoin(p, tan, norm Point, angle float64) {
	h := 0.5 * e.style.Width
	denom := e.lastTan.Cross(tan)
	if denom != 0 {
		var oPrev, oCur Point
		if angle > 0 {
			oPrev, oCur = e.lastNorm.Neg(), norm.Neg()
		} else {
			oPrev, oCur = e.lastNorm, norm
		}
		s := oCur.Sub(oPrev).Cross(tan) / denom
		m := p.Add(oPrev).Add(e.lastTan.Scale(s))
		if m.Sub(p).Length() <= e.style.MiterLimit*h {
			if angle > 0 {
				e.forward = append(e.forward, m)
			} else {
				e.backward = append(e.backward, m)
			}
		}
	}
	e.forward = append(e.forward, p.Sub(norm))
	e.backward = append(e.backward, p.Add(norm))
}

// appendCap closes the gap between the two offset sides at an endpoint.
// norm is the half-width normal on the side the outline is arriving from,
// tan the outward unit direction at the endpoint.
func (e *Expander) appendCap(loop []Point, end, norm, tan Point) []Point {
	switch e.style.Cap {
	case CapRound:
		loop = appendArc(loop, end, norm.Neg(), math.Pi, e.tolerance)
	case CapSquare:
		ext := tan.Scale(0.5 * e.style.Width)
		loop = append(loop,
			end.Sub(norm).Add(ext),
			end.Add(norm).Add(ext),
			end.Add(norm),
		)
	case CapButt:
		loop = append(loop, end.Add(norm))
	}
	return loop
}

// appendArc appends chord points approximating a circular arc around center,
// starting at center+start and sweeping by the given angle (radians, signed).
// The starting point itself is assumed to be already present in the loop.
func appendArc(loop []Point, center, start Point, sweep, tolerance float64) []Point {
	radius := start.Length()
	if radius < 1e-12 || sweep == 0 {
		return loop
	}

	// Chord error for an arc step a is r*(1 - cos(a/2)).
	maxStep := 2 * math.Acos(1-math.Min(tolerance/radius, 1))
	if maxStep < 1e-3 {
		maxStep = 1e-3
	}
	steps := int(math.Ceil(math.Abs(sweep) / maxStep))
	if steps < 1 {
		steps = 1
	}

	a0 := start.Angle()
	da := sweep / float64(steps)
	for i := 1; i <= steps; i++ {
		a := a0 + da*float64(i)
		loop = append(loop, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return loop
}

// dropCoincident removes consecutive duplicate points.
func dropCoincident(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
