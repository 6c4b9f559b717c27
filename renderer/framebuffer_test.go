package renderer

import (
	"testing"

	"github.com/ikskuh/weekend-raytracer/types"
)

func TestFramebufferAddressing(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if fb.Width() != 3 || fb.Height() != 2 {
		t.Fatalf("expected a 3x2 frame; got %dx%d", fb.Width(), fb.Height())
	}

	fb.Set(2, 1, types.RGB(1, 0, 0))
	fb.Set(0, 1, types.RGB(0, 1, 0))

	if got := fb.At(2, 1); got != types.RGB(1, 0, 0) {
		t.Fatalf("expected red at (2, 1); got %v", got)
	}
	if got := fb.At(0, 1); got != types.RGB(0, 1, 0) {
		t.Fatalf("expected green at (0, 1); got %v", got)
	}

	// Row major layout: (0, 1) starts the second row, (2, 1) ends it.
	if got := fb.pixels[3]; got != types.RGB(0, 1, 0) {
		t.Fatalf("expected green in slot 3; got %v", got)
	}
	if got := fb.pixels[5]; got != types.RGB(1, 0, 0) {
		t.Fatalf("expected red in the last slot; got %v", got)
	}

	for _, index := range []int{0, 1, 2, 4} {
		if got := fb.pixels[index]; got != types.Gray(0) {
			t.Fatalf("expected slot %d to stay black; got %v", index, got)
		}
	}
}

func TestFramebufferClearApply(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	fb.Clear(types.Gray(0.5))
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 2; x++ {
			if got := fb.At(x, y); got != types.Gray(0.5) {
				t.Fatalf("expected every pixel cleared to gray; got %v at (%d, %d)", got, x, y)
			}
		}
	}

	fb.Apply(func(c types.Color) types.Color {
		return c.Scale(2)
	})
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 2; x++ {
			if got := fb.At(x, y); got != types.Gray(1) {
				t.Fatalf("expected the op applied to every pixel; got %v at (%d, %d)", got, x, y)
			}
		}
	}
}
