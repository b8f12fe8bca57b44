// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/surfacefactory/backend"
	"github.com/gogpu/surfacefactory/backend/software"
)

// BackendWGPU is the registry name of the wgpu backend.
const BackendWGPU = "wgpu"

// Graphics is the WebGPU implementation of backend.Graphics. Text rendering
// is delegated to the software rasterizer, so Graphics also satisfies
// backend.TextRenderer.
type Graphics struct {
	provider gpucontext.DeviceProvider
	text     *software.Graphics
}

// NewGraphics creates a wgpu graphics backend that owns its GPU resources.
func NewGraphics() *Graphics {
	return &Graphics{text: software.NewGraphics()}
}

// NewGraphicsWithProvider creates a wgpu graphics backend that borrows the
// GPU device from a host application (e.g., a gogpu window) instead of
// creating its own. The provider's device and queue are used as-is and are
// never released by this package.
func NewGraphicsWithProvider(provider gpucontext.DeviceProvider) *Graphics {
	return &Graphics{provider: provider, text: software.NewGraphics()}
}

// Name returns the backend identifier.
func (g *Graphics) Name() string { return BackendWGPU }

// NewRenderingDevice creates a rendering device, owned or borrowed depending
// on how the Graphics was constructed.
func (g *Graphics) NewRenderingDevice(useSoftwareRenderer bool) (backend.RenderingDevice, error) {
	if g.provider != nil {
		return newSharedDevice(g.provider, useSoftwareRenderer)
	}
	return newOwnedDevice(useSoftwareRenderer)
}

// NewCompositingDevice creates a compositing device over dev. Surfaces are
// CPU-staged; the target is retained by the caller's presentation layer and
// unused here.
func (g *Graphics) NewCompositingDevice(target backend.CompositionTarget, dev backend.RenderingDevice) (backend.CompositingDevice, error) {
	if dev == nil {
		return nil, backend.ErrDeviceReleased
	}
	return software.NewCompositingDevice(dev), nil
}

// RenderText implements backend.TextRenderer via the software rasterizer.
func (g *Graphics) RenderText(dev backend.RenderingDevice, opts backend.TextOptions) (backend.Bitmap, error) {
	return g.text.RenderText(dev, opts)
}

// available reports whether a WebGPU adapter can be acquired. The probe runs
// once and is cached.
var available = sync.OnceValue(func() bool {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{})
	if err != nil {
		return false
	}
	_ = core.AdapterDrop(adapterID)
	return true
})

func init() {
	backend.Register(BackendWGPU, 100, func() (backend.Graphics, error) {
		return NewGraphics(), nil
	}, func() bool { return available() })
}
