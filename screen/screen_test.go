package screen

import "testing"

func TestNewDefaults(t *testing.T) {
	s := New()
	w, h := s.Size()
	if w != Width || h != Height {
		t.Fatalf("expected %dx%d, got %dx%d", Width, Height, w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.Pixel(x, y) {
				t.Fatalf("expected pixel (%d, %d) off on a new screen", x, y)
			}
		}
	}
}

func TestNewSizeFallback(t *testing.T) {
	s := NewSize(0, -5)
	w, h := s.Size()
	if w != Width || h != Height {
		t.Errorf("expected fallback to %dx%d, got %dx%d", Width, Height, w, h)
	}
}

func TestSetAndPixel(t *testing.T) {
	s := New()
	s.Set(10, 20, true)
	if !s.Pixel(10, 20) {
		t.Error("expected pixel (10, 20) lit")
	}
	s.Set(10, 20, false)
	if s.Pixel(10, 20) {
		t.Error("expected pixel (10, 20) off")
	}

	// Out-of-range accesses must not panic and read as off.
	s.Set(-1, 0, true)
	s.Set(0, Height, true)
	if s.Pixel(-1, 0) || s.Pixel(0, Height) {
		t.Error("expected out-of-range pixels to read as off")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Set(0, 0, true)
	s.Set(63, 31, true)
	s.Clear()
	if s.Pixel(0, 0) || s.Pixel(63, 31) {
		t.Error("expected all pixels off after Clear")
	}
}

func TestDrawSprite(t *testing.T) {
	s := New()
	// 0xF0 lights the leftmost four pixels of the row.
	if collision := s.DrawSprite(0, 0, []byte{0xF0}); collision {
		t.Error("expected no collision on empty screen")
	}
	for x := 0; x < 4; x++ {
		if !s.Pixel(x, 0) {
			t.Errorf("expected pixel (%d, 0) lit", x)
		}
	}
	for x := 4; x < 8; x++ {
		if s.Pixel(x, 0) {
			t.Errorf("expected pixel (%d, 0) off", x)
		}
	}
}

func TestDrawSpriteCollision(t *testing.T) {
	s := New()
	sprite := []byte{0xFF, 0xFF}

	if collision := s.DrawSprite(8, 8, sprite); collision {
		t.Fatal("first draw must not collide")
	}
	// XOR of the same sprite erases it and reports the collision.
	if collision := s.DrawSprite(8, 8, sprite); !collision {
		t.Fatal("second draw must collide")
	}
	for y := 8; y < 10; y++ {
		for x := 8; x < 16; x++ {
			if s.Pixel(x, y) {
				t.Fatalf("expected pixel (%d, %d) erased by XOR", x, y)
			}
		}
	}
}

func TestDrawSpriteWraps(t *testing.T) {
	s := New()
	// Drawing at the right edge wraps the overflow to column 0.
	s.DrawSprite(Width-2, Height-1, []byte{0xFF, 0xFF})

	if !s.Pixel(Width-2, Height-1) || !s.Pixel(Width-1, Height-1) {
		t.Error("expected pixels at the right edge lit")
	}
	if !s.Pixel(0, Height-1) || !s.Pixel(5, Height-1) {
		t.Error("expected horizontal wrap to column 0")
	}
	if !s.Pixel(Width-2, 0) || !s.Pixel(0, 0) {
		t.Error("expected vertical wrap to row 0")
	}
}
