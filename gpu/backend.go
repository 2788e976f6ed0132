// Package gpu owns the GPU side of the display pipeline: device and queue
// setup, the texture arena, and the per-frame upload path.
package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Backend holds the GPU device, queue, and the shared resources built on
// them. One Backend serves the whole display session.
type Backend struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	adapterName string
	ownsDevice  bool

	textures *TexturePool
	uploader *Uploader
}

// New returns an uninitialized backend. Call Init before use, or use
// NewWithDevice to wrap a device you already own.
func New() *Backend { return &Backend{} }

// NewWithDevice wraps an existing device and queue. The caller keeps
// ownership; Close will not destroy them. Tests use this with the
// hal/noop backend.
func NewWithDevice(device hal.Device, queue hal.Queue) *Backend {
	b := &Backend{device: device, queue: queue}
	b.attach()
	return b
}

// Init selects a GPU backend, picks an adapter (discrete preferred, then
// integrated), and opens a device with default limits. Any failure here is
// fatal for the display subsystem and is returned to the caller.
func (b *Backend) Init() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("gpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("gpu: open device: %w", err)
	}

	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapterName = selected.Info.Name
	b.ownsDevice = true
	b.attach()

	slogger().Info("gpu: device opened", "adapter", b.adapterName)
	return nil
}

func (b *Backend) attach() {
	b.textures = NewTexturePool(b.device)
	b.uploader = NewUploader(b.device, b.queue, b.textures)
}

// Ready reports whether the backend has an open device.
func (b *Backend) Ready() bool { return b.device != nil }

// Device returns the hal device, or nil before Init.
func (b *Backend) Device() hal.Device { return b.device }

// Queue returns the hal queue, or nil before Init.
func (b *Backend) Queue() hal.Queue { return b.queue }

// Textures returns the backend's texture pool.
func (b *Backend) Textures() *TexturePool { return b.textures }

// Uploader returns the backend's frame uploader.
func (b *Backend) Uploader() *Uploader { return b.uploader }

// AdapterName returns the selected adapter's name, or "" when the device
// was injected with NewWithDevice.
func (b *Backend) AdapterName() string { return b.adapterName }

// Close releases all textures, then the device and instance if this backend
// opened them. Safe to call more than once.
func (b *Backend) Close() {
	if b.textures != nil {
		b.textures.DestroyAll()
	}
	if b.ownsDevice && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.device = nil
	b.queue = nil
	b.textures = nil
	b.uploader = nil
	b.ownsDevice = false
}
