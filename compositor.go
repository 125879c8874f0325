package corridor

import (
	"image"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"
)

// DefaultScale is the default supersampling factor for mask rasterization.
const DefaultScale = 2

// Compositor produces corridor-highlighted composites. It is immutable
// after construction and safe for concurrent use; every call allocates its
// own buffers.
type Compositor struct {
	scale     int
	scaler    xdraw.Scaler
	renderer  Renderer
	roundJoin bool
}

// Option configures a Compositor during creation.
type Option func(*compositorOptions)

type compositorOptions struct {
	scale    int
	scaler   xdraw.Scaler
	renderer Renderer
}

// WithScale sets the supersampling factor for mask rasterization.
// Values below 2 are raised to 2: single-resolution rasterization leaves
// visibly jagged corridor and ring edges.
func WithScale(scale int) Option {
	return func(o *compositorOptions) {
		o.scale = scale
	}
}

// WithScaler sets the resampling kernel used to downsample supersampled
// masks to native resolution.
func WithScaler(s xdraw.Scaler) Option {
	return func(o *compositorOptions) {
		o.scaler = s
	}
}

// WithRenderer sets a custom mask renderer. Use this for dependency
// injection of alternative rasterization backends.
func WithRenderer(r Renderer) Option {
	return func(o *compositorOptions) {
		o.renderer = r
	}
}

// NewCompositor creates a Compositor. Renderer capabilities are queried
// once here; a renderer without round joint support makes the compositor
// union per-vertex disks along the path instead.
func NewCompositor(opts ...Option) *Compositor {
	options := compositorOptions{
		scale:  DefaultScale,
		scaler: DefaultScaler,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.scale < 2 {
		options.scale = 2
	}
	if options.renderer == nil {
		options.renderer = NewSoftwareRenderer()
	}

	roundJoin := options.renderer.Supports(FeatureRoundJoin)
	if !roundJoin {
		logger().Warn("renderer lacks round joints, using per-vertex disk fallback")
	}

	return &Compositor{
		scale:     options.scale,
		scaler:    options.scaler,
		renderer:  options.renderer,
		roundJoin: roundJoin,
	}
}

// Composite renders the corridor band over the base image and returns the
// composited RGBA image, always the same size as the input. The path must
// contain at least 2 points and the style radius must be positive; fade and
// marker fractions are clamped rather than rejected. No partial output is
// returned on error.
func (c *Compositor) Composite(img image.Image, path []Point, style Style) (*image.RGBA, error) {
	if len(path) < 2 {
		return nil, NewInputError(ErrTooFewPoints)
	}
	if style.CorridorRadius <= 0 {
		return nil, NewInputError(ErrBadRadius)
	}
	style = style.Clamp()

	base := FromImage(img)
	w, h := base.Width(), base.Height()
	if w <= 0 || h <= 0 {
		return nil, NewInputError(ErrEmptyImage)
	}

	start := time.Now()
	s := c.scale
	radius := float64(style.CorridorRadius)
	scaled := scalePath(path, float64(s))
	corridorWidth := 2 * radius * float64(s)

	// Corridor mask: thick stroke plus endpoint caps, supersampled then
	// downsampled into a soft alpha mask.
	hiMask := NewMask(w*s, h*s)
	if err := c.paintBand(hiMask, scaled, corridorWidth, 255); err != nil {
		return nil, renderErrorf("corridor mask: %w", err)
	}
	corridorMask := Downsample(hiMask, w, h, c.scaler)

	// Fade everything toward white, then restore the original pixels
	// inside the corridor proportionally to mask coverage.
	out := base.Clone()
	out.FadeToWhite(style.OutsideFade)
	out.RestoreMasked(base, corridorMask)

	// Ring mask: draw the wider band, then carve the corridor-width band
	// back out of it, leaving an annular boundary.
	ringWidth := corridorWidth + 2*float64(ringThickness(style.CorridorRadius)*s)
	hiRing := NewMask(w*s, h*s)
	if err := c.paintBand(hiRing, scaled, ringWidth, 255); err != nil {
		return nil, renderErrorf("ring mask: %w", err)
	}
	if err := c.paintBand(hiRing, scaled, corridorWidth, 0); err != nil {
		return nil, renderErrorf("ring carve: %w", err)
	}
	ringMask := Downsample(hiRing, w, h, c.scaler)

	// Overlay: opaque ring first, then markers blended over it.
	overlay := NewPixmap(w, h)
	overlay.PaintMasked(EdgeColor, ringMask)
	if err := c.drawMarkers(overlay, path, style); err != nil {
		return nil, renderErrorf("markers: %w", err)
	}

	out.Over(overlay)

	logger().Debug("composite finished",
		"width", w,
		"height", h,
		"points", len(path),
		"radius", style.CorridorRadius,
		"elapsed", time.Since(start))
	return out.ToImage(), nil
}

// CompositePNG decodes the base image from r, composites the corridor and
// returns the result as PNG bytes.
func (c *Compositor) CompositePNG(r io.Reader, path []Point, style Style) ([]byte, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	out, err := c.Composite(img, path, style)
	if err != nil {
		return nil, err
	}
	return EncodePNG(out)
}

// paintBand rasterizes the corridor band geometry at one stroke width:
// the stroked polyline unioned with endpoint disks, since not every
// rasterizer supports round line caps directly. Without round joint
// support, a disk is unioned at every vertex instead of only the endpoints.
func (c *Compositor) paintBand(dst *Mask, pts []Point, width float64, value uint8) error {
	if err := c.renderer.StrokePolyline(dst, pts, width, false, value); err != nil {
		return err
	}

	r := width / 2
	caps := []Point{pts[0], pts[len(pts)-1]}
	if !c.roundJoin {
		caps = pts
	}
	for _, p := range caps {
		if err := c.renderer.FillDisk(dst, p, r, value); err != nil {
			return err
		}
	}
	return nil
}

// scalePath scales path points by the supersampling factor.
func scalePath(path []Point, s float64) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = p.Mul(s)
	}
	return out
}
