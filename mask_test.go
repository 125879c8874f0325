package corridor

import (
	"image"
	"testing"
)

func TestMaskBasics(t *testing.T) {
	m := NewMask(8, 4)
	if m.Width() != 8 || m.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", m.Width(), m.Height())
	}
	if m.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("Bounds = %v", m.Bounds())
	}

	m.Set(3, 2, 200)
	if m.At(3, 2) != 200 {
		t.Errorf("At(3,2) = %d, want 200", m.At(3, 2))
	}
	if m.At(0, 0) != 0 {
		t.Errorf("At(0,0) = %d, want 0", m.At(0, 0))
	}

	// Out-of-bounds access is silent.
	m.Set(-1, 0, 99)
	m.Set(8, 0, 99)
	if m.At(-1, 0) != 0 || m.At(8, 0) != 0 || m.At(0, 4) != 0 {
		t.Error("out-of-bounds At should return 0")
	}
}

func TestMaskSetSpan(t *testing.T) {
	m := NewMask(8, 4)
	m.SetSpan(2, 6, 1, 255)

	for x := 0; x < 8; x++ {
		want := uint8(0)
		if x >= 2 && x < 6 {
			want = 255
		}
		if got := m.At(x, 1); got != want {
			t.Errorf("At(%d,1) = %d, want %d", x, got, want)
		}
	}
	if m.At(2, 0) != 0 || m.At(2, 2) != 0 {
		t.Error("span should only touch its row")
	}

	// Rows outside the mask are ignored.
	m.SetSpan(0, 8, -1, 255)
	m.SetSpan(0, 8, 4, 255)
}

func TestMaskFillClearClone(t *testing.T) {
	m := NewMask(4, 4)
	m.Fill(80)
	if m.At(0, 0) != 80 || m.At(3, 3) != 80 {
		t.Error("Fill should set every value")
	}

	c := m.Clone()
	m.Clear()
	if m.At(2, 2) != 0 {
		t.Error("Clear should zero the mask")
	}
	if c.At(2, 2) != 80 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestMaskGraySharesStorage(t *testing.T) {
	m := NewMask(4, 4)
	g := m.Gray()
	if g.Stride != 4 || g.Rect != m.Bounds() {
		t.Fatalf("gray view: stride %d rect %v", g.Stride, g.Rect)
	}

	g.Pix[g.PixOffset(1, 2)] = 77
	if m.At(1, 2) != 77 {
		t.Error("writes through the gray view should be visible in the mask")
	}
	m.Set(3, 0, 42)
	if g.Pix[g.PixOffset(3, 0)] != 42 {
		t.Error("writes through the mask should be visible in the gray view")
	}
}

func TestFromGraySharing(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 3))
	g.Pix[g.PixOffset(2, 1)] = 123

	m := FromGray(g)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	if m.At(2, 1) != 123 {
		t.Errorf("At(2,1) = %d, want 123", m.At(2, 1))
	}

	// Stride matches the width, so the storage is shared.
	g.Pix[g.PixOffset(0, 0)] = 9
	if m.At(0, 0) != 9 {
		t.Error("tight-stride gray should share storage")
	}
}

func TestFromGrayCopiesWideStride(t *testing.T) {
	wide := image.NewGray(image.Rect(0, 0, 8, 4))
	sub := wide.SubImage(image.Rect(1, 1, 5, 3)).(*image.Gray)
	sub.Pix[sub.PixOffset(2, 1)] = 55

	m := FromGray(sub)
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", m.Width(), m.Height())
	}
	if m.At(1, 0) != 55 {
		t.Errorf("At(1,0) = %d, want 55", m.At(1, 0))
	}
}
