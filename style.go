package corridor

// Default fractions applied when the caller does not specify them.
const (
	DefaultOutsideFade = 0.8
	DefaultMarkerAlpha = 0.7
)

// Style holds the numeric styling parameters for one composite call.
type Style struct {
	// CorridorRadius is the corridor half-width in pixels. Must be
	// positive; it is validated, not clamped.
	CorridorRadius int

	// OutsideFade is the blend fraction toward white applied outside the
	// corridor, clamped to [0, 1].
	OutsideFade float64

	// MarkerAlpha is the opacity of the start/end markers, clamped to
	// [0, 1]. It does not affect the boundary ring, which is opaque.
	MarkerAlpha float64
}

// DefaultStyle returns a Style with the given radius and default fade and
// marker opacity.
func DefaultStyle(radius int) Style {
	return Style{
		CorridorRadius: radius,
		OutsideFade:    DefaultOutsideFade,
		MarkerAlpha:    DefaultMarkerAlpha,
	}
}

// Clamp returns a copy with the fade and marker fractions clamped into
// [0, 1]. The radius is left as-is.
func (s Style) Clamp() Style {
	s.OutsideFade = clamp01(s.OutsideFade)
	s.MarkerAlpha = clamp01(s.MarkerAlpha)
	return s
}

// ringThickness returns the boundary ring thickness in native pixels for a
// corridor radius.
func ringThickness(radius int) int {
	t := int(0.5 * float64(radius))
	if t < 2 {
		t = 2
	}
	return t
}

// markerStrokeWidth returns the marker outline stroke width in native
// pixels for a corridor radius.
func markerStrokeWidth(radius int) int {
	w := int(0.6 * float64(radius))
	if w < 2 {
		w = 2
	}
	w /= 3
	if w < 1 {
		w = 1
	}
	return w
}
