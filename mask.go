package corridor

import "image"

// Mask is a single-channel coverage buffer used as a soft alpha mask.
// Values range from 0 (no coverage) to 255 (full coverage).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// SetSpan sets mask values for x in [x0, x1) on row y. The coordinates must
// already be clamped to the mask bounds; the rasterizer guarantees this.
func (m *Mask) SetSpan(x0, x1, y int, value uint8) {
	if y < 0 || y >= m.height {
		return
	}
	row := m.data[y*m.width : y*m.width+m.width]
	for x := x0; x < x1; x++ {
		row[x] = value
	}
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	m.Fill(0)
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Gray wraps the mask as an image.Gray sharing the same backing storage.
// The layouts are identical, so writes through either view are visible in
// both.
func (m *Mask) Gray() *image.Gray {
	return &image.Gray{
		Pix:    m.data,
		Stride: m.width,
		Rect:   m.Bounds(),
	}
}

// FromGray creates a mask from an image.Gray, sharing its backing storage
// when the stride allows it.
func FromGray(img *image.Gray) *Mask {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w && len(img.Pix) == w*h {
		return &Mask{width: w, height: h, data: img.Pix}
	}
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		copy(m.data[y*w:(y+1)*w], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return m
}
