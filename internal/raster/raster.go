// Package raster provides scanline rasterization of closed point loops
// into single-channel coverage masks.
package raster

import "math"

// Surface is the write target for rasterization. It is satisfied by any
// single-channel buffer that can set a horizontal run of values.
type Surface interface {
	Width() int
	Height() int
	// SetSpan sets mask values for x in [x0, x1) on row y.
	SetSpan(x0, x1, y int, value uint8)
}

// FillRule specifies how to determine which areas are inside a shape.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs scanline rasterization of outline loops.
// A Rasterizer is not safe for concurrent use; callers allocate one per
// rasterization pass.
type Rasterizer struct {
	aet   *ActiveEdgeTable
	edges []Edge
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{aet: NewActiveEdgeTable()}
}

// Fill rasterizes the union of the given closed loops onto dst, writing
// value over every covered pixel. Each loop is closed implicitly; loops are
// kept as independent edge sets so separate subpaths never grow connecting
// edges between them.
func (r *Rasterizer) Fill(dst Surface, loops [][]Point, rule FillRule, value uint8) {
	r.edges = r.edges[:0]

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64

	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		n := len(loop)
		for i := 0; i < n; i++ {
			p0 := loop[i]
			p1 := loop[(i+1)%n]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue // horizontal edges contribute no crossings
			}
			e := NewEdge(p0, p1)
			r.edges = append(r.edges, e)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
		}
	}

	if len(r.edges) == 0 {
		return
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > dst.Height() {
		y1 = dst.Height()
	}

	for y := y0; y < y1; y++ {
		r.scanline(dst, float64(y)+0.5, y, rule, value)
	}
}

// scanline processes a single scanline at sample height yc.
func (r *Rasterizer) scanline(dst Surface, yc float64, y int, rule FillRule, value uint8) {
	r.aet.Clear()
	for _, e := range r.edges {
		if e.y0 <= yc && yc < e.y1 {
			r.aet.AddAtY(e, yc)
		}
	}

	active := r.aet.Edges()
	if len(active) == 0 {
		return
	}
	r.aet.Sort()

	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, e := range active {
			if winding == 0 {
				x1 = e.x
			}
			winding += e.dir
			if winding == 0 {
				r.span(dst, x1, e.x, y, value)
			}
		}
		return
	}

	for i := 0; i+1 < len(active); i += 2 {
		r.span(dst, active[i].x, active[i+1].x, y, value)
	}
}

// span writes one horizontal run, clamped to the surface.
func (r *Rasterizer) span(dst Surface, xa, xb float64, y int, value uint8) {
	if xa > xb {
		xa, xb = xb, xa
	}
	x0 := int(math.Round(xa))
	x1 := int(math.Round(xb))
	if x0 < 0 {
		x0 = 0
	}
	if x1 > dst.Width() {
		x1 = dst.Width()
	}
	if x0 >= x1 {
		return
	}
	dst.SetSpan(x0, x1, y, value)
}
