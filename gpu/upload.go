package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyPitchAlignment is the row pitch granularity buffer-to-texture copies
// require. WebGPU and DX12 both mandate 256 bytes.
const copyPitchAlignment = 256

// Uploader refreshes texture contents from CPU frame data. Each upload fully
// overwrites the target image; there is no partial update or blending.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
	pool   *TexturePool
}

// NewUploader creates an uploader over the given device, queue, and pool.
func NewUploader(device hal.Device, queue hal.Queue, pool *TexturePool) *Uploader {
	return &Uploader{device: device, queue: queue, pool: pool}
}

// Upload copies data into the texture identified by id. data must be tightly
// packed RGBA rows matching the texture dimensions exactly. All validation
// happens before any GPU command is recorded; a failed upload submits
// nothing.
//
// The copy goes through a transient staging buffer that lives only for this
// call. Submission is fire-and-forget: queue ordering guarantees the copy
// completes before any later submission samples the texture, so the frame
// loop never blocks on the GPU here.
func (u *Uploader) Upload(id TextureID, data []byte, width, height uint32) error {
	if u == nil || u.device == nil {
		return ErrNotInitialized
	}
	tex, cfg, err := u.pool.Get(id)
	if err != nil {
		return err
	}
	if width != cfg.Width || height != cfg.Height {
		return fmt.Errorf("%w: data %dx%d, texture %dx%d",
			ErrSizeMismatch, width, height, cfg.Width, cfg.Height)
	}
	if uint64(len(data)) != cfg.ByteSize() {
		return fmt.Errorf("%w: %d bytes, texture needs %d",
			ErrSizeMismatch, len(data), cfg.ByteSize())
	}

	bytesPerRow := width * 4
	alignedBytesPerRow := alignRowPitch(bytesPerRow)
	src := data
	if alignedBytesPerRow != bytesPerRow {
		src = padRows(data, bytesPerRow, alignedBytesPerRow, height)
	}

	staging, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "upload_staging",
		Size:  uint64(len(src)),
		Usage: gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create staging buffer: %w", err)
	}
	defer u.device.DestroyBuffer(staging)

	u.queue.WriteBuffer(staging, 0, src)

	encoder, err := u.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "upload_encoder",
	})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame_upload"); err != nil {
		return fmt.Errorf("gpu: begin encoding: %w", err)
	}

	// Sampled textures sit in shader-read layout between frames; the copy
	// needs transfer-dst. Transition in, copy, transition back. This is a
	// no-op on backends without explicit layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageTextureBinding,
			NewUsage: gputypes.TextureUsageCopyDst,
		},
	}})

	encoder.CopyBufferToTexture(staging, tex, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  alignedBytesPerRow,
			RowsPerImage: height,
		},
		TextureBase: hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:        hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopyDst,
			NewUsage: gputypes.TextureUsageTextureBinding,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer u.device.FreeCommandBuffer(cmdBuf)

	// Submit without fence (fire and forget).
	if err := u.queue.Submit([]hal.CommandBuffer{cmdBuf}, nil, 0); err != nil {
		return fmt.Errorf("gpu: submit upload: %w", err)
	}

	slogger().Debug("gpu: frame uploaded",
		"id", uint64(id), "bytes", len(data), "bytesPerRow", alignedBytesPerRow)
	return nil
}

// alignRowPitch rounds bytesPerRow up to the copy pitch alignment.
func alignRowPitch(bytesPerRow uint32) uint32 {
	return (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
}

// padRows re-packs tight rows into rows of alignedBytesPerRow, leaving the
// padding bytes zero.
func padRows(data []byte, bytesPerRow, alignedBytesPerRow, rows uint32) []byte {
	padded := make([]byte, uint64(alignedBytesPerRow)*uint64(rows))
	for row := uint32(0); row < rows; row++ {
		srcOff := uint64(row) * uint64(bytesPerRow)
		dstOff := uint64(row) * uint64(alignedBytesPerRow)
		copy(padded[dstOff:dstOff+uint64(bytesPerRow)], data[srcOff:srcOff+uint64(bytesPerRow)])
	}
	return padded
}
