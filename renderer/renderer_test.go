package renderer

import (
	"bytes"
	"testing"

	"github.com/chewxy/math32"

	"github.com/ikskuh/weekend-raytracer/scene"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.FrameW != 512 || opts.FrameH != 512 {
		t.Fatalf("expected a 512x512 default frame; got %dx%d", opts.FrameW, opts.FrameH)
	}
	if opts.MaxDepth != 10 {
		t.Fatalf("expected a depth budget of 10; got %d", opts.MaxDepth)
	}
	if opts.Gamma != 2.2 {
		t.Fatalf("expected gamma 2.2; got %f", opts.Gamma)
	}
}

func TestNewValidation(t *testing.T) {
	bare := scene.NewScene()

	withCamera := scene.NewScene()
	withCamera.SetCamera(scene.NewCamera())

	valid := Options{FrameW: 16, FrameH: 16, MaxDepth: 10, Gamma: 2.2}

	type spec struct {
		scene *scene.Scene
		opts  Options
		want  error
	}
	specs := []spec{
		{nil, valid, ErrSceneNotDefined},
		{bare, valid, ErrCameraNotDefined},
		{withCamera, Options{FrameW: 1, FrameH: 16, Gamma: 2.2}, ErrFrameTooSmall},
		{withCamera, Options{FrameW: 16, FrameH: 1, Gamma: 2.2}, ErrFrameTooSmall},
		{withCamera, Options{FrameW: 16, FrameH: 16, Gamma: 0}, ErrInvalidGamma},
		{withCamera, Options{FrameW: 16, FrameH: 16, Gamma: -1}, ErrInvalidGamma},
		{withCamera, valid, nil},
	}

	for index, s := range specs {
		r, err := New(s.scene, s.opts)
		if err != s.want {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.want, err)
		}
		if s.want == nil && r == nil {
			t.Fatalf("[spec %d] expected a renderer", index)
		}
	}
}

func TestRenderBuiltinScene(t *testing.T) {
	r, err := New(scene.NewCornellScene(), DefaultOptions())
	if err != nil {
		t.Fatalf("expected the renderer to build; got %v", err)
	}

	frame := r.Render()

	for y := uint32(0); y < frame.Height(); y++ {
		for x := uint32(0); x < frame.Width(); x++ {
			c := frame.At(x, y)
			for channel := 0; channel < 3; channel++ {
				if math32.IsNaN(c[channel]) || math32.IsInf(c[channel], 0) || c[channel] < 0 {
					t.Fatalf("expected finite non-negative channels; got %v at (%d, %d)", c, x, y)
				}
			}
		}
	}

	// The view center lands on the fully lit gray back wall.
	center := frame.At(256, 256)
	if center[0] != center[1] || center[1] != center[2] {
		t.Fatalf("expected a gray center pixel; got %v", center)
	}
	if center[0] < 0.9 || center[0] > 0.98 {
		t.Fatalf("expected the back wall around 0.94 after encoding; got %v", center)
	}

	// The left frame edge lands on the red wall. Its lighting sum exceeds
	// 1 and survives the encoding that way.
	left := frame.At(0, 256)
	if left[1] != 0 || left[2] != 0 {
		t.Fatalf("expected a pure red pixel at the left edge; got %v", left)
	}
	if left[0] <= 1 {
		t.Fatalf("expected an overbright red channel; got %v", left)
	}

	stats := r.Stats()
	if want := uint64(512 * 512); stats.PrimaryRays != want {
		t.Fatalf("expected %d primary rays; got %d", want, stats.PrimaryRays)
	}
	if stats.ShadowRays == 0 || stats.ReflectionRays == 0 {
		t.Fatalf("expected shadow and reflection rays in the stats; got %+v", stats)
	}
	if stats.RenderTime <= 0 {
		t.Fatalf("expected a positive render time; got %v", stats.RenderTime)
	}
}

func TestRenderDeterminism(t *testing.T) {
	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 64, 64

	r, err := New(scene.NewCornellScene(), opts)
	if err != nil {
		t.Fatalf("expected the renderer to build; got %v", err)
	}

	var first, second bytes.Buffer
	if err := r.Render().WritePPM(&first); err != nil {
		t.Fatalf("expected the write to succeed; got %v", err)
	}
	if err := r.Render().WritePPM(&second); err != nil {
		t.Fatalf("expected the write to succeed; got %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("expected repeated renders to produce identical frames")
	}
}
