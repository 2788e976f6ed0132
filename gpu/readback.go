package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// readbackTimeout bounds the fence wait for texture readbacks.
const readbackTimeout = 5 * time.Second

// ReadTexture copies the texture identified by id back to the CPU and
// returns its tightly packed RGBA bytes. Unlike Upload this path is
// synchronous: it submits with a fence and waits for completion.
//
// The texture must have been created with CopySrc usage, which
// DefaultTextureUsage does not include.
func (u *Uploader) ReadTexture(id TextureID) ([]byte, error) {
	if u == nil || u.device == nil {
		return nil, ErrNotInitialized
	}
	tex, cfg, err := u.pool.Get(id)
	if err != nil {
		return nil, err
	}

	bytesPerRow := cfg.Width * 4
	alignedBytesPerRow := alignRowPitch(bytesPerRow)
	stagingSize := uint64(alignedBytesPerRow) * uint64(cfg.Height)

	staging, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "readback_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create readback buffer: %w", err)
	}
	defer u.device.DestroyBuffer(staging)

	encoder, err := u.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("texture_readback"); err != nil {
		return nil, fmt.Errorf("gpu: begin encoding: %w", err)
	}

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageTextureBinding,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  alignedBytesPerRow,
			RowsPerImage: cfg.Height,
		},
		TextureBase: hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:        hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageTextureBinding,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer u.device.FreeCommandBuffer(cmdBuf)

	fence, err := u.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("gpu: create fence: %w", err)
	}
	defer u.device.DestroyFence(fence)

	if err := u.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("gpu: submit readback: %w", err)
	}
	fenceOK, err := u.device.Wait(fence, 1, readbackTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("gpu: wait for readback: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := u.queue.ReadBuffer(staging, 0, readback); err != nil {
		return nil, fmt.Errorf("gpu: read staging buffer: %w", err)
	}

	if alignedBytesPerRow == bytesPerRow {
		return readback[:cfg.ByteSize()], nil
	}

	// Strip per-row padding from the aligned readback data.
	tight := make([]byte, cfg.ByteSize())
	for row := uint32(0); row < cfg.Height; row++ {
		srcOff := uint64(row) * uint64(alignedBytesPerRow)
		dstOff := uint64(row) * uint64(bytesPerRow)
		copy(tight[dstOff:dstOff+uint64(bytesPerRow)], readback[srcOff:srcOff+uint64(bytesPerRow)])
	}
	return tight, nil
}
