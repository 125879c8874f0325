package corridor

import "testing"

func uniformPixmap(w, h int, c RGBA) *Pixmap {
	p := NewPixmap(w, h)
	p.Clear(c)
	return p
}

func TestFadeToWhite(t *testing.T) {
	gray := RGBA{R: 120.0 / 255, G: 120.0 / 255, B: 120.0 / 255, A: 1}

	p := uniformPixmap(2, 2, gray)
	p.FadeToWhite(0)
	if p.Data()[0] != 120 {
		t.Errorf("t=0 should be a no-op, got %d", p.Data()[0])
	}

	p.FadeToWhite(1)
	d := p.Data()
	if d[0] != 255 || d[1] != 255 || d[2] != 255 {
		t.Errorf("t=1 pixel = %v, want pure white", d[:3])
	}
	if d[3] != 255 {
		t.Errorf("alpha = %d, should be untouched", d[3])
	}

	p = uniformPixmap(1, 1, gray)
	p.FadeToWhite(0.8)
	// 120 + (255-120)*0.8 = 228
	if p.Data()[0] != 228 {
		t.Errorf("t=0.8 pixel = %d, want 228", p.Data()[0])
	}

	p = uniformPixmap(1, 1, gray)
	p.FadeToWhite(2.5) // clamped to 1
	if p.Data()[0] != 255 {
		t.Errorf("t>1 pixel = %d, want 255", p.Data()[0])
	}
}

func TestRestoreMasked(t *testing.T) {
	src := uniformPixmap(3, 1, RGBA{R: 100.0 / 255, G: 100.0 / 255, B: 100.0 / 255, A: 1})
	dst := uniformPixmap(3, 1, White)

	mask := NewMask(3, 1)
	mask.Set(0, 0, 0)
	mask.Set(1, 0, 255)
	mask.Set(2, 0, 128)

	dst.RestoreMasked(src, mask)
	d := dst.Data()

	if d[0] != 255 {
		t.Errorf("mask 0: pixel = %d, want unchanged 255", d[0])
	}
	if d[4] != 100 {
		t.Errorf("mask 255: pixel = %d, want source 100", d[4])
	}
	// (255*127 + 100*128 + 127) / 255 = 177
	if d[8] != 177 {
		t.Errorf("mask 128: pixel = %d, want 177", d[8])
	}
}

func TestPaintMasked(t *testing.T) {
	p := uniformPixmap(2, 1, White)
	mask := NewMask(2, 1)
	mask.Set(1, 0, 200)

	p.PaintMasked(RGB(0, 0, 1), mask)
	d := p.Data()

	if d[3] != 255 || d[0] != 255 {
		t.Error("uncovered pixel should be unchanged")
	}
	if d[4] != 0 || d[5] != 0 || d[6] != 255 {
		t.Errorf("covered pixel = %v, want blue", d[4:7])
	}
	if d[7] != 200 {
		t.Errorf("covered alpha = %d, want the mask value", d[7])
	}
}

func TestBlendMaskedZeroAlpha(t *testing.T) {
	p := uniformPixmap(2, 1, RGB(1, 0, 0))
	before := append([]uint8(nil), p.Data()...)

	mask := NewMask(2, 1)
	mask.Fill(255)
	p.BlendMasked(RGB(0, 1, 0), mask, 0)

	for i, b := range before {
		if p.Data()[i] != b {
			t.Fatal("zero alpha blend should change nothing")
		}
	}
}

func TestBlendMaskedKeepsCoverage(t *testing.T) {
	// An opaque destination stays opaque under a translucent blend.
	p := uniformPixmap(1, 1, RGB(0.5, 0, 1))
	mask := NewMask(1, 1)
	mask.Fill(255)

	p.BlendMasked(White, mask, 0.5)
	d := p.Data()
	if d[3] != 255 {
		t.Errorf("alpha = %d, want 255", d[3])
	}
	// Halfway between the purple and white.
	if d[1] < 120 || d[1] > 135 {
		t.Errorf("green = %d, want about 128", d[1])
	}
	if d[2] != 255 {
		t.Errorf("blue = %d, want 255", d[2])
	}
}

func TestBlendMaskedScalesByMask(t *testing.T) {
	p := uniformPixmap(2, 1, RGBA{A: 0})
	mask := NewMask(2, 1)
	mask.Set(0, 0, 255)
	mask.Set(1, 0, 128)

	p.BlendMasked(RGB(1, 1, 1), mask, 1)
	d := p.Data()
	if d[3] != 255 {
		t.Errorf("full mask alpha = %d, want 255", d[3])
	}
	if d[7] < 126 || d[7] > 130 {
		t.Errorf("half mask alpha = %d, want about 128", d[7])
	}
}

func TestOver(t *testing.T) {
	dst := uniformPixmap(3, 1, RGBA{R: 0, G: 0, B: 0, A: 1})

	src := NewPixmap(3, 1)
	// pixel 0 transparent, pixel 1 opaque white, pixel 2 half white
	src.SetPixel(1, 0, White)
	src.SetPixel(2, 0, White.WithAlpha(128.0/255))

	dst.Over(src)
	d := dst.Data()

	if d[0] != 0 || d[3] != 255 {
		t.Error("transparent source should leave the destination unchanged")
	}
	if d[4] != 255 || d[7] != 255 {
		t.Error("opaque source should replace the destination")
	}
	if d[8] < 126 || d[8] > 130 {
		t.Errorf("half-alpha blend = %d, want about 128", d[8])
	}
	if d[11] != 255 {
		t.Errorf("blend over opaque: alpha = %d, want 255", d[11])
	}
}

func TestLerp8Mix8(t *testing.T) {
	if got := lerp8(100, 200, 0.5); got != 150 {
		t.Errorf("lerp8 = %d, want 150", got)
	}
	if got := lerp8(100, 200, 0); got != 100 {
		t.Errorf("lerp8 t=0 = %d, want 100", got)
	}
	if got := lerp8(100, 200, 1); got != 200 {
		t.Errorf("lerp8 t=1 = %d, want 200", got)
	}
	if got := mix8(10, 250, 0); got != 10 {
		t.Errorf("mix8 m=0 = %d, want 10", got)
	}
	if got := mix8(10, 250, 255); got != 250 {
		t.Errorf("mix8 m=255 = %d, want 250", got)
	}
	if got := mix8(0, 255, 128); got != 128 {
		t.Errorf("mix8 m=128 = %d, want 128", got)
	}
}
