package chipview

import (
	"fmt"

	"chipview/gpu"
)

// DrawCommand describes one textured quad for the GUI layer to draw. The
// texture referenced by Texture holds the current frame contents; Width and
// Height are the framebuffer dimensions multiplied by the display scale.
type DrawCommand struct {
	Texture gpu.TextureID
	Width   float32
	Height  float32
	Tint    [4]float32
}

// View owns the display state for one emulator screen: the CPU-side frame
// buffer, the GPU texture it is uploaded to, and the presentation parameters
// (scale and tint) the GUI layer applies when drawing.
//
// A View is built once per display session with NewView and refreshed once
// per emulator frame with Update. It is not safe for concurrent use; drive
// it from the frame loop goroutine. The texture's format and size are fixed
// for the view's lifetime, so a resized source needs a new View.
type View struct {
	backend *gpu.Backend

	frame   *Frame
	texture gpu.TextureID
	scale   float32
	tint    RGBA
}

// NewView allocates the frame buffer and GPU texture for src's dimensions.
// The texture is created exactly once here; Update only refreshes its
// contents.
func NewView(backend *gpu.Backend, src PixelSource, opts ...Option) (*View, error) {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if backend == nil || !backend.Ready() {
		return nil, gpu.ErrNotInitialized
	}

	w, h := src.Size()
	frame, err := NewFrame(w, h)
	if err != nil {
		return nil, err
	}

	cfg := gpu.DefaultTextureConfig(uint32(w), uint32(h)) //nolint:gosec // dimensions validated positive
	cfg.Label = o.label
	id, err := backend.Textures().Create(cfg)
	if err != nil {
		return nil, fmt.Errorf("chipview: create display texture: %w", err)
	}

	Logger().Debug("view created", "width", w, "height", h, "texture", uint64(id))
	return &View{
		backend: backend,
		frame:   frame,
		texture: id,
		scale:   o.scale,
		tint:    o.tint,
	}, nil
}

// Update converts src into the frame buffer and uploads the result to the
// view's texture. Call once per emulator frame. The upload is queued
// fire-and-forget; queue ordering guarantees it lands before any later draw
// that samples the texture.
func (v *View) Update(src PixelSource) error {
	if err := v.frame.FillFrom(src); err != nil {
		return err
	}
	err := v.backend.Uploader().Upload(v.texture, v.frame.Data(),
		uint32(v.frame.Width()), uint32(v.frame.Height())) //nolint:gosec // frame dimensions validated positive
	if err != nil {
		return fmt.Errorf("chipview: upload frame: %w", err)
	}
	return nil
}

// Draw returns the draw command for the current frame. The GUI layer is
// expected to draw a quad of the given size sampling the texture, modulated
// by the tint.
func (v *View) Draw() DrawCommand {
	return DrawCommand{
		Texture: v.texture,
		Width:   float32(v.frame.Width()) * v.scale,
		Height:  float32(v.frame.Height()) * v.scale,
		Tint:    v.tint.Array(),
	}
}

// Frame returns the CPU-side frame buffer, e.g. for capture.
func (v *View) Frame() *Frame { return v.frame }

// TextureID returns the handle of the view's display texture.
func (v *View) TextureID() gpu.TextureID { return v.texture }

// Scale returns the current display magnification.
func (v *View) Scale() float32 { return v.scale }

// SetScale updates the display magnification. Non-positive values are
// ignored.
func (v *View) SetScale(s float32) {
	if s > 0 {
		v.scale = s
	}
}

// Tint returns the current draw tint.
func (v *View) Tint() RGBA { return v.tint }

// SetTint updates the draw tint. The change is presentation-only and does
// not touch the texture contents.
func (v *View) SetTint(c RGBA) { v.tint = c }

// Close releases the view's GPU texture. The view must not be used after
// Close.
func (v *View) Close() {
	if v.texture != gpu.InvalidTexture {
		v.backend.Textures().Destroy(v.texture)
		v.texture = gpu.InvalidTexture
	}
}
