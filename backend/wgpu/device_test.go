// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacefactory/backend"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device gpucontext.Device
	queue  gpucontext.Queue
}

func newMockProvider() *mockProvider {
	return &mockProvider{device: &mockDevice{}, queue: &mockQueue{}}
}

func (m *mockProvider) Device() gpucontext.Device   { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue     { return m.queue }
func (m *mockProvider) Adapter() gpucontext.Adapter { return &mockAdapter{} }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func TestSharedDevice(t *testing.T) {
	provider := newMockProvider()
	g := NewGraphicsWithProvider(provider)

	dev, err := g.NewRenderingDevice(false)
	if err != nil {
		t.Fatalf("NewRenderingDevice: %v", err)
	}
	d := dev.(*Device)
	if d.SharedDevice() != provider.device {
		t.Error("SharedDevice() != provider device")
	}
	if d.SharedQueue() != provider.queue {
		t.Error("SharedQueue() != provider queue")
	}
	if d.Info() != nil {
		t.Error("Info() != nil for a borrowed device")
	}
	if d.IsSoftware() {
		t.Error("IsSoftware() = true, want false")
	}

	// Bitmap wrapping works without touching the GPU.
	bmp, err := d.NewBitmapFromBytes([]byte{0xFF, 0, 0, 0xFF}, 1, 1)
	if err != nil {
		t.Fatalf("NewBitmapFromBytes: %v", err)
	}
	if bmp.Size().IsEmpty() {
		t.Errorf("bitmap size = %v", bmp.Size())
	}

	// Releasing a borrowed device never drops provider resources.
	if err := dev.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := dev.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if _, err := d.NewBitmapFromBytes([]byte{0, 0, 0, 0}, 1, 1); !errors.Is(err, backend.ErrDeviceReleased) {
		t.Errorf("error after release = %v, want ErrDeviceReleased", err)
	}
}

func TestSharedDeviceNilProviderDevice(t *testing.T) {
	provider := &mockProvider{queue: &mockQueue{}}
	g := NewGraphicsWithProvider(provider)
	if _, err := g.NewRenderingDevice(false); !errors.Is(err, ErrNoProviderDevice) {
		t.Errorf("error = %v, want ErrNoProviderDevice", err)
	}
}

func TestMarkLost(t *testing.T) {
	provider := newMockProvider()
	g := NewGraphicsWithProvider(provider)
	dev, err := g.NewRenderingDevice(true)
	if err != nil {
		t.Fatalf("NewRenderingDevice: %v", err)
	}
	d := dev.(*Device)
	if !d.IsSoftware() {
		t.Error("IsSoftware() = false, want true")
	}

	d.MarkLost(backend.LossReasonRemoved)
	d.MarkLost(backend.LossReasonReset) // single-shot

	select {
	case reason := <-d.LostSignal():
		if reason != backend.LossReasonRemoved {
			t.Errorf("reason = %v, want Removed", reason)
		}
	case <-time.After(time.Second):
		t.Fatal("loss not delivered")
	}
	select {
	case reason := <-d.LostSignal():
		t.Errorf("second loss delivered: %v", reason)
	case <-time.After(20 * time.Millisecond):
	}

	if _, err := d.NewBitmapFromBytes([]byte{0, 0, 0, 0}, 1, 1); !errors.Is(err, backend.ErrDeviceLost) {
		t.Errorf("error after loss = %v, want ErrDeviceLost", err)
	}
}

func TestGraphicsCompositing(t *testing.T) {
	g := NewGraphicsWithProvider(newMockProvider())
	if g.Name() != BackendWGPU {
		t.Errorf("Name() = %q", g.Name())
	}

	if _, err := g.NewCompositingDevice(nil, nil); !errors.Is(err, backend.ErrDeviceReleased) {
		t.Errorf("NewCompositingDevice(nil) error = %v, want ErrDeviceReleased", err)
	}

	dev, err := g.NewRenderingDevice(false)
	if err != nil {
		t.Fatalf("NewRenderingDevice: %v", err)
	}
	comp, err := g.NewCompositingDevice(nil, dev)
	if err != nil {
		t.Fatalf("NewCompositingDevice: %v", err)
	}
	s, err := comp.NewDrawingSurface(backend.Size{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewDrawingSurface: %v", err)
	}
	if got := s.Size(); got != (backend.Size{Width: 4, Height: 4}) {
		t.Errorf("Size() = %v", got)
	}

	// Staged surface pixels convert to BGRA for texture upload.
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	ps.Clear(color.RGBA{B: 255, A: 255})
	if err := ps.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	data := UploadPixels(s)
	if len(data) != 4*4*4 {
		t.Fatalf("UploadPixels length = %d, want %d", len(data), 4*4*4)
	}
	if data[0] != 0xFF || data[2] != 0 {
		t.Errorf("first pixel = % x, want blue-first BGRA", data[:4])
	}

	// Text rendering is delegated to the software rasterizer.
	bmp, err := g.RenderText(dev, backend.TextOptions{Text: "gpu"})
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if bmp.Size().IsEmpty() {
		t.Errorf("text bitmap size = %v", bmp.Size())
	}
}

func TestGPUInfoString(t *testing.T) {
	info := &GPUInfo{Name: "Test GPU"}
	if got := info.String(); !strings.Contains(got, "Test GPU") {
		t.Errorf("String() = %q, want it to name the GPU", got)
	}
}
