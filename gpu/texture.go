package gpu

import "github.com/gogpu/gputypes"

// DefaultTextureUsage marks a texture as a sampling source for the GUI layer
// and a copy destination for per-frame uploads.
const DefaultTextureUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// TextureConfig fully describes a display texture. Every field is fixed at
// creation; a texture never changes format, usage, or size afterwards, so
// resizing the display means creating a new texture.
//
// The descriptor built from a config is always 2D with one mip level and one
// sample. There is no field to say otherwise.
type TextureConfig struct {
	Width  uint32
	Height uint32
	Label  string
	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
}

// DefaultTextureConfig returns the standard display texture setup:
// RGBA8Unorm, sampled plus copy destination.
func DefaultTextureConfig(width, height uint32) TextureConfig {
	return TextureConfig{
		Width:  width,
		Height: height,
		Label:  "display",
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  DefaultTextureUsage,
	}
}

// ByteSize returns the tightly packed RGBA byte size of one full image.
func (c TextureConfig) ByteSize() uint64 {
	return uint64(c.Width) * uint64(c.Height) * 4
}
