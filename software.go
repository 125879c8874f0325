package corridor

import (
	"math"

	"github.com/corridorlab/corridor/internal/raster"
	"github.com/corridorlab/corridor/internal/stroke"
)

// SoftwareRenderer is the default CPU renderer. It expands strokes into
// outline loops with round joints and fills them with a nonzero-winding
// scanline pass. It holds no state and is safe for concurrent use.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Supports reports the software renderer's capabilities.
func (r *SoftwareRenderer) Supports(f Feature) bool {
	switch f {
	case FeatureRoundJoin, FeatureRoundCap:
		return true
	}
	return false
}

// StrokePolyline implements Renderer.
func (r *SoftwareRenderer) StrokePolyline(dst *Mask, pts []Point, width float64, closed bool, value uint8) error {
	if len(pts) < 2 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	exp := stroke.NewExpander(stroke.RoundStyle(width))
	loops := exp.Expand(toStrokePoints(pts), closed)
	fillLoops(dst, loops, value)
	return nil
}

// FillDisk implements Renderer.
func (r *SoftwareRenderer) FillDisk(dst *Mask, center Point, radius float64, value uint8) error {
	if radius <= 0 {
		return nil
	}
	loop := circleLoop(center, radius)
	newRasterizer().Fill(dst, [][]raster.Point{loop}, raster.FillRuleNonZero, value)
	return nil
}

// StrokeCircle implements Renderer.
func (r *SoftwareRenderer) StrokeCircle(dst *Mask, center Point, radius, width float64, value uint8) error {
	if radius <= 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	ring := circleLoop(center, radius)
	pts := make([]Point, len(ring))
	for i, p := range ring {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return r.StrokePolyline(dst, pts, width, true, value)
}

// circleLoop flattens a circle into a closed chord loop. The chord error is
// held under flattenTolerance.
func circleLoop(center Point, radius float64) []raster.Point {
	const flattenTolerance = 0.1

	step := 2 * math.Acos(1-math.Min(flattenTolerance/radius, 1))
	segments := int(math.Ceil(2 * math.Pi / math.Max(step, 1e-3)))
	if segments < 8 {
		segments = 8
	}

	loop := make([]raster.Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		loop[i] = raster.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return loop
}

// fillLoops rasterizes expanded outline loops into the mask.
func fillLoops(dst *Mask, loops [][]stroke.Point, value uint8) {
	if len(loops) == 0 {
		return
	}
	converted := make([][]raster.Point, len(loops))
	for i, loop := range loops {
		pts := make([]raster.Point, len(loop))
		for j, p := range loop {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		converted[i] = pts
	}
	newRasterizer().Fill(dst, converted, raster.FillRuleNonZero, value)
}

// newRasterizer allocates a scanline rasterizer for one pass.
func newRasterizer() *raster.Rasterizer {
	return raster.NewRasterizer()
}

// toStrokePoints converts public points to the stroke package's type.
func toStrokePoints(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}
