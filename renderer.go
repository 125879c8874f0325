package corridor

// Feature identifies an optional drawing capability of a Renderer.
// The compositor queries capabilities once at construction rather than
// probing per call.
type Feature int

const (
	// FeatureRoundJoin indicates the renderer strokes polylines with
	// rounded joints. Without it the compositor unions per-vertex disks
	// along the path to avoid gaps at segment joints.
	FeatureRoundJoin Feature = iota

	// FeatureRoundCap indicates the renderer strokes polylines with
	// rounded endpoints. The compositor always unions endpoint disks
	// regardless, so this is informational for custom pipelines.
	FeatureRoundCap
)

// Renderer rasterizes mask geometry. Implementations draw hard-edged
// coverage; anti-aliasing comes from the compositor's supersample-then-
// downsample pass. Implementations must be safe for concurrent use or
// cheap to construct per call; the software renderer is stateless.
type Renderer interface {
	// Supports reports whether the renderer implements the feature.
	Supports(f Feature) bool

	// StrokePolyline rasterizes a stroked polyline of the given width
	// into dst, setting covered pixels to value. closed strokes the
	// polyline as a closed loop.
	StrokePolyline(dst *Mask, pts []Point, width float64, closed bool, value uint8) error

	// FillDisk rasterizes a filled disk into dst.
	FillDisk(dst *Mask, center Point, radius float64, value uint8) error

	// StrokeCircle rasterizes a circle outline of the given stroke width
	// into dst.
	StrokeCircle(dst *Mask, center Point, radius, width float64, value uint8) error
}
