package chipview

import (
	"errors"
	"fmt"
	"image"
)

// PixelSource is a monochrome framebuffer the display reads from once per
// frame. Emulator cores implement it; the screen package provides the
// classic 64x32 implementation.
type PixelSource interface {
	// Size returns the framebuffer dimensions in pixels.
	Size() (w, h int)
	// Pixel reports whether the pixel at (x, y) is lit.
	Pixel(x, y int) bool
}

var (
	// ErrFrameSize indicates non-positive frame dimensions.
	ErrFrameSize = errors.New("chipview: frame dimensions must be positive")

	// ErrSourceSize indicates a pixel source whose dimensions do not match
	// the frame it is converted into.
	ErrSourceSize = errors.New("chipview: source dimensions do not match frame")
)

// Frame is a CPU-side RGBA image buffer, 4 bytes per pixel in row-major
// order. Its byte layout is exactly what the GPU upload path expects, so
// Data can be uploaded without copying.
type Frame struct {
	width  int
	height int
	data   []uint8
}

// NewFrame creates a frame with the given dimensions. The pixel buffer is
// zeroed, which reads as transparent black until the first conversion.
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Data returns the underlying RGBA bytes. The slice is always exactly
// width*height*4 bytes and is reused across FillFrom calls.
func (f *Frame) Data() []uint8 { return f.data }

// FillFrom converts src into the frame's RGBA bytes. Lit pixels become
// opaque white, unlit pixels opaque black; the alpha byte is always 255.
// The whole buffer is rewritten, so stale pixels from earlier frames cannot
// survive.
func (f *Frame) FillFrom(src PixelSource) error {
	w, h := src.Size()
	if w != f.width || h != f.height {
		return fmt.Errorf("%w: source %dx%d, frame %dx%d",
			ErrSourceSize, w, h, f.width, f.height)
	}
	for y := 0; y < h; y++ {
		row := f.data[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			var v uint8
			if src.Pixel(x, y) {
				v = 255
			}
			px := row[x*4 : x*4+4 : x*4+4]
			px[0] = v
			px[1] = v
			px[2] = v
			px[3] = 255
		}
	}
	return nil
}

// Pixel returns the 4 RGBA bytes at (x, y). It panics if the coordinates
// are out of range, like indexing a slice.
func (f *Frame) Pixel(x, y int) [4]uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("chipview: pixel (%d, %d) out of %dx%d frame", x, y, f.width, f.height))
	}
	off := (y*f.width + x) * 4
	return [4]uint8{f.data[off], f.data[off+1], f.data[off+2], f.data[off+3]}
}

// ToImage copies the frame into a standard Go image. The returned image is
// independent of later frame updates.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}
