// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/surfacefactory/backend"
	"github.com/gogpu/surfacefactory/backend/software"
	"github.com/gogpu/surfacefactory/internal/pixel"
)

// deviceLabel is the debug label attached to created WebGPU devices.
const deviceLabel = "surfacefactory-device"

// Device is a WebGPU-backed rendering device.
//
// A Device either owns its WebGPU resources (created through the backend) or
// borrows them from a host application's gpucontext.DeviceProvider, in which
// case Release leaves the underlying GPU objects alone.
//
// Bitmap decode runs on the CPU in both cases; decoded pixels are the
// upload source for the staged surfaces.
type Device struct {
	softwareFlag bool

	mu       sync.Mutex
	released bool
	isLost   bool
	lost     chan backend.DeviceLossReason

	// Owned resources (zero when borrowed from a provider).
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	info     *GPUInfo

	// Borrowed resources.
	provider     gpucontext.DeviceProvider
	sharedDevice gpucontext.Device
	sharedQueue  gpucontext.Queue
}

// newOwnedDevice creates a Device with its own instance, adapter, device and
// queue. When useSoftwareRenderer is set, adapter selection drops the
// high-performance preference so the implementation may pick a CPU-based
// adapter; the flag is preserved for loss recovery either way.
func newOwnedDevice(useSoftwareRenderer bool) (*Device, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterOpts := &gputypes.RequestAdapterOptions{}
	if !useSoftwareRenderer {
		adapterOpts.PowerPreference = gputypes.PowerPreferenceHighPerformance
	}
	adapterID, err := instance.RequestAdapter(adapterOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:            deviceLabel,
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}

	d := &Device{
		softwareFlag: useSoftwareRenderer,
		lost:         make(chan backend.DeviceLossReason, 1),
		instance:     instance,
		adapter:      adapterID,
		device:       deviceID,
		queue:        queueID,
	}
	d.info, _ = getGPUInfo(adapterID)
	return d, nil
}

// newSharedDevice creates a Device borrowing the GPU context from a host
// application.
func newSharedDevice(provider gpucontext.DeviceProvider, useSoftwareRenderer bool) (*Device, error) {
	dev := provider.Device()
	if dev == nil {
		return nil, ErrNoProviderDevice
	}
	return &Device{
		softwareFlag: useSoftwareRenderer,
		lost:         make(chan backend.DeviceLossReason, 1),
		provider:     provider,
		sharedDevice: dev,
		sharedQueue:  provider.Queue(),
	}, nil
}

// IsSoftware reports the renderer flag the device was created with.
func (d *Device) IsSoftware() bool { return d.softwareFlag }

// Info returns adapter information, or nil for borrowed devices.
func (d *Device) Info() *GPUInfo { return d.info }

// SharedDevice returns the borrowed gpucontext device, or nil when the
// device owns its resources.
func (d *Device) SharedDevice() gpucontext.Device { return d.sharedDevice }

// SharedQueue returns the borrowed gpucontext queue, or nil when the device
// owns its resources.
func (d *Device) SharedQueue() gpucontext.Queue { return d.sharedQueue }

// LostSignal returns the device-loss channel.
func (d *Device) LostSignal() <-chan backend.DeviceLossReason { return d.lost }

// MarkLost records a loss and delivers it once to LostSignal. Host
// applications sharing a device through a provider call this when their own
// loss detection fires, so factory-level recovery can run.
func (d *Device) MarkLost(reason backend.DeviceLossReason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isLost || d.released {
		return
	}
	d.isLost = true
	d.lost <- reason
}

// UploadPixels returns the surface contents as tightly packed premultiplied
// BGRA bytes, the layout queue texture writes against a BGRA8Unorm target
// expect. Hosts sharing the device through a provider use this as the
// staging source when they own the texture upload.
func UploadPixels(s backend.Surface) []byte {
	return pixel.RGBAToBGRA(s.Snapshot())
}

// LoadBitmapFromURI decodes the resource at uri on the CPU.
func (d *Device) LoadBitmapFromURI(ctx context.Context, uri string) (backend.Bitmap, error) {
	if err := d.usable(); err != nil {
		return nil, err
	}
	return software.LoadBitmap(ctx, uri)
}

// NewBitmapFromBytes wraps a premultiplied-BGRA buffer as a bitmap.
func (d *Device) NewBitmapFromBytes(data []byte, width, height int) (backend.Bitmap, error) {
	if err := d.usable(); err != nil {
		return nil, err
	}
	return software.BitmapFromBytes(data, width, height)
}

// Release frees owned WebGPU resources. Borrowed resources stay with their
// provider. Release is idempotent.
func (d *Device) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return nil
	}
	d.released = true
	if d.provider != nil {
		return nil
	}
	var first error
	if !d.device.IsZero() {
		if err := core.DeviceDrop(d.device); err != nil && first == nil {
			first = fmt.Errorf("wgpu: release device: %w", err)
		}
	}
	if err := core.AdapterDrop(d.adapter); err != nil && first == nil {
		first = fmt.Errorf("wgpu: release adapter: %w", err)
	}
	return first
}

func (d *Device) usable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return backend.ErrDeviceReleased
	}
	if d.isLost {
		return backend.ErrDeviceLost
	}
	return nil
}

var _ backend.RenderingDevice = (*Device)(nil)
