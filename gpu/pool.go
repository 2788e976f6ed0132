package gpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TextureID identifies a texture in a TexturePool. IDs are opaque handles,
// never pointers: a stale ID fails lookup instead of dereferencing freed GPU
// state. The zero ID is never valid.
type TextureID uint64

// InvalidTexture is the zero TextureID. No pool operation ever returns it
// as a live handle.
const InvalidTexture TextureID = 0

// TexturePool is an arena of GPU textures keyed by TextureID. Every Create
// returns a fresh ID; IDs are never reused, so destroying one texture can
// never make another texture's handle ambiguous.
//
// TexturePool is safe for concurrent use.
type TexturePool struct {
	mu       sync.RWMutex
	device   hal.Device
	textures map[TextureID]*poolEntry
	bytes    uint64

	nextID atomic.Uint64
}

type poolEntry struct {
	handle hal.Texture
	config TextureConfig
}

// PoolStats reports live texture count and total tightly packed bytes.
type PoolStats struct {
	Textures int
	Bytes    uint64
}

// NewTexturePool creates an empty pool over the given device.
func NewTexturePool(device hal.Device) *TexturePool {
	return &TexturePool{
		device:   device,
		textures: make(map[TextureID]*poolEntry),
	}
}

// Create allocates a GPU texture for cfg and returns its handle. Zero-value
// Format and Usage fields fall back to RGBA8Unorm and DefaultTextureUsage.
// Each call returns an independent texture with a distinct ID, including
// repeated calls with an identical config.
func (p *TexturePool) Create(cfg TextureConfig) (TextureID, error) {
	if p == nil || p.device == nil {
		return InvalidTexture, ErrNotInitialized
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return InvalidTexture, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Format == 0 {
		cfg.Format = gputypes.TextureFormatRGBA8Unorm
	}
	if cfg.Usage == 0 {
		cfg.Usage = DefaultTextureUsage
	}

	tex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label: cfg.Label,
		Size: hal.Extent3D{
			Width:              cfg.Width,
			Height:             cfg.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        cfg.Format,
		Usage:         cfg.Usage,
	})
	if err != nil {
		return InvalidTexture, fmt.Errorf("gpu: create texture: %w", err)
	}

	// First Add returns 1, so 0 stays reserved as the invalid ID.
	id := TextureID(p.nextID.Add(1))

	p.mu.Lock()
	p.textures[id] = &poolEntry{handle: tex, config: cfg}
	p.bytes += cfg.ByteSize()
	p.mu.Unlock()

	slogger().Debug("gpu: texture created",
		"id", uint64(id), "width", cfg.Width, "height", cfg.Height, "label", cfg.Label)
	return id, nil
}

// Get returns the hal texture and config for id.
func (p *TexturePool) Get(id TextureID) (hal.Texture, TextureConfig, error) {
	p.mu.RLock()
	e, ok := p.textures[id]
	p.mu.RUnlock()
	if !ok {
		return nil, TextureConfig{}, fmt.Errorf("%w: id %d", ErrTextureNotFound, id)
	}
	return e.handle, e.config, nil
}

// Destroy releases the texture for id. Destroying an unknown or
// already-destroyed ID is a no-op.
func (p *TexturePool) Destroy(id TextureID) {
	p.mu.Lock()
	e, ok := p.textures[id]
	if ok {
		delete(p.textures, id)
		p.bytes -= e.config.ByteSize()
	}
	p.mu.Unlock()
	if !ok {
		return
	}
	p.device.DestroyTexture(e.handle)
	slogger().Debug("gpu: texture destroyed", "id", uint64(id))
}

// DestroyAll releases every texture in the pool.
func (p *TexturePool) DestroyAll() {
	p.mu.Lock()
	entries := p.textures
	p.textures = make(map[TextureID]*poolEntry)
	p.bytes = 0
	p.mu.Unlock()

	for _, e := range entries {
		p.device.DestroyTexture(e.handle)
	}
}

// Len returns the number of live textures.
func (p *TexturePool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.textures)
}

// Stats returns the pool's current resource usage.
func (p *TexturePool) Stats() PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PoolStats{Textures: len(p.textures), Bytes: p.bytes}
}
