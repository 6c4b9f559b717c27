package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// clampByte quantizes one color channel to its 8 bit display value.
func clampByte(v float32) uint8 {
	scaled := 255 * v
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}

// WritePPM writes the frame as a binary PPM (P6) image. Channels are
// clamped to [0, 255] at quantization time.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "P6 %d %d 255\n", fb.width, fb.height)

	var px [3]byte
	for _, c := range fb.pixels {
		px[0] = clampByte(c[0])
		px[1] = clampByte(c[1])
		px[2] = clampByte(c[2])
		out.Write(px[:])
	}

	return out.Flush()
}

// WritePNG encodes the frame as a PNG image using the same quantization as
// the PPM writer.
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	img := image.NewNRGBA(image.Rect(0, 0, int(fb.width), int(fb.height)))
	for y := uint32(0); y < fb.height; y++ {
		for x := uint32(0); x < fb.width; x++ {
			c := fb.At(x, y)
			img.SetNRGBA(int(x), int(y), color.NRGBA{
				R: clampByte(c[0]),
				G: clampByte(c[1]),
				B: clampByte(c[2]),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}

// Save writes the frame to a file, picking the format from the extension. A
// .png extension selects PNG; everything else gets the binary PPM format.
func (fb *Framebuffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return fb.WritePNG(f)
	}
	return fb.WritePPM(f)
}
