// Package screen implements the classic 64x32 monochrome emulator screen,
// including XOR sprite drawing with collision detection.
package screen

const (
	// Width and Height are the standard screen dimensions.
	Width  = 64
	Height = 32

	// SpriteWidth is the fixed pixel width of a sprite row.
	SpriteWidth = 8
)

// Screen is a monochrome framebuffer. Sprites wrap around both edges when
// drawn, per the classic interpreter behavior. It satisfies the
// chipview.PixelSource interface.
//
// Screen is not safe for concurrent use; drive it from the emulator
// goroutine.
type Screen struct {
	width  int
	height int
	pixels []bool
}

// New returns a standard 64x32 screen with all pixels off.
func New() *Screen { return NewSize(Width, Height) }

// NewSize returns a screen with custom dimensions. Non-positive dimensions
// fall back to the standard size.
func NewSize(w, h int) *Screen {
	if w <= 0 || h <= 0 {
		w, h = Width, Height
	}
	return &Screen{
		width:  w,
		height: h,
		pixels: make([]bool, w*h),
	}
}

// Size returns the screen dimensions in pixels.
func (s *Screen) Size() (int, int) { return s.width, s.height }

// Pixel reports whether the pixel at (x, y) is lit. Out-of-range
// coordinates read as off.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.pixels[y*s.width+x]
}

// Set turns the pixel at (x, y) on or off. Out-of-range coordinates are
// ignored.
func (s *Screen) Set(x, y int, on bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = on
}

// Clear turns every pixel off.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = false
	}
}

// DrawSprite XORs the sprite rows onto the screen at (x, y), wrapping at
// both edges. Each byte is one 8-pixel row, most significant bit leftmost.
// It reports whether any lit pixel was turned off, the interpreter's
// collision flag.
func (s *Screen) DrawSprite(x, y int, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		py := wrap(y+row, s.height)
		for col := 0; col < SpriteWidth; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := wrap(x+col, s.width)
			i := py*s.width + px
			if s.pixels[i] {
				collision = true
			}
			s.pixels[i] = !s.pixels[i]
		}
	}
	return collision
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
