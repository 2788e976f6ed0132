// Package capture exports display frames to image files. Frames are
// upscaled with nearest-neighbor sampling so emulator pixels stay crisp at
// any magnification.
//
// Capture reads the CPU-side frame. The display tint is presentation state
// and is deliberately not baked into saved images.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"chipview"
)

// ErrUnsupportedFormat indicates a file extension with no known encoder.
var ErrUnsupportedFormat = errors.New("capture: unsupported image format")

// Image renders the frame into an image magnified by the given integer
// factor. Factors below 2 return the frame at native size.
func Image(f *chipview.Frame, scale int) *image.NRGBA {
	src := f.ToImage()
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteWebP encodes img as lossless WebP.
func WriteWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// Save writes the frame to path, choosing the encoder from the file
// extension (.png or .webp).
func Save(path string, f *chipview.Frame, scale int) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = WritePNG
	case ".webp":
		encode = WriteWebP
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: create %s: %w", path, err)
	}
	if err := encode(out, Image(f, scale)); err != nil {
		out.Close()
		return fmt.Errorf("capture: encode %s: %w", path, err)
	}
	return out.Close()
}
