package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestTexturePoolCreate(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	id, err := pool.Create(DefaultTextureConfig(64, 32))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == InvalidTexture {
		t.Fatal("expected valid texture ID")
	}
	if pool.Len() != 1 {
		t.Errorf("expected 1 texture, got %d", pool.Len())
	}

	tex, cfg, err := pool.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if tex == nil {
		t.Error("expected non-nil hal texture")
	}

	want := TextureConfig{
		Width:  64,
		Height: 32,
		Label:  "display",
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  DefaultTextureUsage,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestTexturePoolCreateFillsDefaults(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	id, err := pool.Create(TextureConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, cfg, err := pool.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cfg.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("expected RGBA8Unorm default, got %v", cfg.Format)
	}
	if cfg.Usage != DefaultTextureUsage {
		t.Errorf("expected default usage, got %v", cfg.Usage)
	}
}

func TestTexturePoolCreateInvalidDimensions(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	tests := []struct {
		name string
		w, h uint32
	}{
		{"zero width", 0, 32},
		{"zero height", 64, 0},
		{"zero both", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pool.Create(DefaultTextureConfig(tt.w, tt.h))
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
	if pool.Len() != 0 {
		t.Errorf("expected empty pool after failed creates, got %d", pool.Len())
	}
}

func TestTexturePoolDistinctIDs(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	cfg := DefaultTextureConfig(64, 32)

	a, err := pool.Create(cfg)
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	b, err := pool.Create(cfg)
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if a == b {
		t.Errorf("identical configs must still yield distinct IDs, both got %d", a)
	}
	if pool.Len() != 2 {
		t.Errorf("expected 2 independent textures, got %d", pool.Len())
	}
}

func TestTexturePoolDestroy(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	id, err := pool.Create(DefaultTextureConfig(64, 32))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	pool.Destroy(id)
	if pool.Len() != 0 {
		t.Errorf("expected empty pool after Destroy, got %d", pool.Len())
	}
	if _, _, err := pool.Get(id); !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("expected ErrTextureNotFound after Destroy, got %v", err)
	}

	// Destroying again must be a no-op.
	pool.Destroy(id)
	pool.Destroy(InvalidTexture)
}

func TestTexturePoolStats(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	id, err := pool.Create(DefaultTextureConfig(64, 32))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stats := pool.Stats()
	if stats.Textures != 1 {
		t.Errorf("expected 1 texture, got %d", stats.Textures)
	}
	if want := uint64(64 * 32 * 4); stats.Bytes != want {
		t.Errorf("expected %d bytes, got %d", want, stats.Bytes)
	}

	pool.Destroy(id)
	stats = pool.Stats()
	if stats.Textures != 0 || stats.Bytes != 0 {
		t.Errorf("expected empty stats after Destroy, got %+v", stats)
	}
}

func TestTexturePoolDestroyAll(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	pool := NewTexturePool(device)
	for i := 0; i < 3; i++ {
		if _, err := pool.Create(DefaultTextureConfig(16, 16)); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}
	pool.DestroyAll()
	if pool.Len() != 0 {
		t.Errorf("expected empty pool after DestroyAll, got %d", pool.Len())
	}
}

func TestTexturePoolUninitialized(t *testing.T) {
	var pool *TexturePool
	if _, err := pool.Create(DefaultTextureConfig(8, 8)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized on nil pool, got %v", err)
	}
}
