package corridor

// Compositing primitives for the corridor pipeline. All operations work on
// whole buffers in the byte domain with rounding, and expect same-size
// arguments; mismatched sizes are a programming error checked by the
// compositor before any stage runs.

// FadeToWhite blends every pixel toward white by fraction t in [0, 1],
// leaving alpha untouched. t=0 is a no-op, t=1 yields pure white.
func (p *Pixmap) FadeToWhite(t float64) {
	t = clamp01(t)
	if t == 0 {
		return
	}
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = lerp8(p.data[i+0], 255, t)
		p.data[i+1] = lerp8(p.data[i+1], 255, t)
		p.data[i+2] = lerp8(p.data[i+2], 255, t)
	}
}

// RestoreMasked blends src back into p proportionally to the mask value:
// where the mask is 255 the pixel becomes src, where 0 it is unchanged, and
// soft mask edges blend smoothly in between.
func (p *Pixmap) RestoreMasked(src *Pixmap, mask *Mask) {
	for j, m := range mask.data {
		if m == 0 {
			continue
		}
		i := j * 4
		if m == 255 {
			copy(p.data[i:i+3], src.data[i:i+3])
			continue
		}
		p.data[i+0] = mix8(p.data[i+0], src.data[i+0], m)
		p.data[i+1] = mix8(p.data[i+1], src.data[i+1], m)
		p.data[i+2] = mix8(p.data[i+2], src.data[i+2], m)
	}
}

// PaintMasked writes the color into p using the mask as the alpha channel:
// covered pixels become the color with alpha equal to the mask value.
// Existing pixels under nonzero coverage are replaced, not blended.
func (p *Pixmap) PaintMasked(c RGBA, mask *Mask) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	for j, m := range mask.data {
		if m == 0 {
			continue
		}
		i := j * 4
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = m
	}
}

// BlendMasked source-over composites the color onto p, with per-pixel
// source alpha equal to alpha scaled by the mask value. Unlike PaintMasked
// this never reduces existing coverage, so a translucent marker drawn over
// the opaque ring leaves the ring opaque.
func (p *Pixmap) BlendMasked(c RGBA, mask *Mask, alpha float64) {
	alpha = clamp01(alpha)
	if alpha == 0 {
		return
	}
	for j, m := range mask.data {
		if m == 0 {
			continue
		}
		i := j * 4
		sa := alpha * float64(m) / 255
		blendOver(p.data[i:i+4], c, sa)
	}
}

// Over source-over composites src onto p. Both buffers are
// non-premultiplied RGBA.
func (p *Pixmap) Over(src *Pixmap) {
	for i := 0; i < len(p.data); i += 4 {
		sa := float64(src.data[i+3]) / 255
		if sa == 0 {
			continue
		}
		if sa == 1 {
			copy(p.data[i:i+4], src.data[i:i+4])
			continue
		}
		c := RGBA{
			R: float64(src.data[i+0]) / 255,
			G: float64(src.data[i+1]) / 255,
			B: float64(src.data[i+2]) / 255,
		}
		blendOver(p.data[i:i+4], c, sa)
	}
}

// blendOver applies standard "over" alpha blending of a source color with
// alpha sa onto a single destination pixel.
func blendOver(dst []uint8, c RGBA, sa float64) {
	da := float64(dst[3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return
	}
	blend := func(s float64, d uint8) uint8 {
		v := (s*sa + float64(d)/255*da*(1-sa)) / outA
		return uint8(clamp255(v*255 + 0.5))
	}
	dst[0] = blend(c.R, dst[0])
	dst[1] = blend(c.G, dst[1])
	dst[2] = blend(c.B, dst[2])
	dst[3] = uint8(clamp255(outA*255 + 0.5))
}

// lerp8 interpolates between two bytes by fraction t.
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(clamp255(float64(a) + (float64(b)-float64(a))*t + 0.5))
}

// mix8 interpolates between two bytes by a byte fraction m/255.
func mix8(a, b, m uint8) uint8 {
	return uint8((int(a)*(255-int(m)) + int(b)*int(m) + 127) / 255)
}
