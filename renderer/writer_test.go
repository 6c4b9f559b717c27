package renderer

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ikskuh/weekend-raytracer/types"
)

func TestWritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, types.Gray(0.5))
	fb.Set(1, 0, types.RGB(2, -1, 1))
	fb.Set(0, 1, types.RGB(1, 0, 0))
	// (1, 1) stays black.

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("expected the write to succeed; got %v", err)
	}

	want := append([]byte("P6 2 2 255\n"),
		127, 127, 127,
		255, 0, 255,
		255, 0, 0,
		0, 0, 0,
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("expected %v; got %v", want, buf.Bytes())
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(1, 0, types.RGB(1, 0.5, 0))

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("expected the encode to succeed; got %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("expected a decodable png; got %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("expected a 2x2 image; got %dx%d", bounds.Dx(), bounds.Dy())
	}

	got := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA)
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Fatalf("expected %+v at (1, 0); got %+v", want, got)
	}
}

func TestSaveFormats(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(types.Gray(1))

	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "frame.pgm")
	if err := fb.Save(ppmPath); err != nil {
		t.Fatalf("expected the ppm save to succeed; got %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("expected the ppm file to exist; got %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P6 2 2 255\n")) {
		t.Fatalf("expected a P6 header; got %q", data)
	}

	pngPath := filepath.Join(dir, "frame.PNG")
	if err := fb.Save(pngPath); err != nil {
		t.Fatalf("expected the png save to succeed; got %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("expected the png file to exist; got %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("expected a decodable png; got %v", err)
	}
}
