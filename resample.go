package corridor

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultScaler is the resampling kernel used to bring supersampled masks
// back to native resolution. Catmull-Rom is smooth enough to keep the band
// edges soft without the cost of a wider Lanczos window.
var DefaultScaler xdraw.Scaler = xdraw.CatmullRom

// Downsample resizes a supersampled mask to the given native dimensions
// using the scaler. If the mask already has the target size it is returned
// unchanged.
func Downsample(m *Mask, width, height int, scaler xdraw.Scaler) *Mask {
	if m.Width() == width && m.Height() == height {
		return m
	}
	if scaler == nil {
		scaler = DefaultScaler
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Rect, m.Gray(), m.Bounds(), xdraw.Src, nil)
	return FromGray(dst)
}
