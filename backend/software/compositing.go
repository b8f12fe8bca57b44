// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"sync"

	"github.com/gogpu/surfacefactory/backend"
)

// CompositingDevice realizes drawing surfaces and tracks the current
// rendering device. Replacing the rendering device leaves existing surfaces
// valid; the compositing device, not the rendering device, anchors them.
type CompositingDevice struct {
	mu       sync.Mutex
	dev      backend.RenderingDevice
	handlers map[int]func(backend.DeviceReplacedEvent)
	nextID   int
	released bool
}

// NewCompositingDevice creates a compositing device over dev. Backends that
// stage surface pixels on the CPU (including the wgpu backend, pending queue
// upload support) share this implementation.
func NewCompositingDevice(dev backend.RenderingDevice) *CompositingDevice {
	return &CompositingDevice{
		dev:      dev,
		handlers: make(map[int]func(backend.DeviceReplacedEvent)),
	}
}

// RenderingDevice returns the current rendering device.
func (c *CompositingDevice) RenderingDevice() backend.RenderingDevice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dev
}

// SetRenderingDevice swaps the rendering device and notifies
// device-replaced subscribers. Handlers run on the caller's goroutine after
// internal locks are dropped.
func (c *CompositingDevice) SetRenderingDevice(dev backend.RenderingDevice) error {
	if dev == nil {
		return backend.ErrDeviceReleased
	}
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return backend.ErrDeviceReleased
	}
	c.dev = dev
	handlers := make([]func(backend.DeviceReplacedEvent), 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	e := backend.DeviceReplacedEvent{Device: c, RenderingDevice: dev}
	for _, h := range handlers {
		h(e)
	}
	return nil
}

// NewDrawingSurface allocates a premultiplied-RGBA pixel surface. An
// unspecified size allocates a zero-area placeholder.
func (c *CompositingDevice) NewDrawingSurface(size backend.Size) (backend.Surface, error) {
	c.mu.Lock()
	released := c.released
	c.mu.Unlock()
	if released {
		return nil, backend.ErrDeviceReleased
	}
	if size.IsEmpty() {
		size = backend.Size{}
	}
	return NewSurface(size), nil
}

// RenderText rasterizes opts into a bitmap using the process-wide font
// registry. Having the capability on the compositing device keeps text
// working for factories built around externally owned devices.
func (c *CompositingDevice) RenderText(_ backend.RenderingDevice, opts backend.TextOptions) (backend.Bitmap, error) {
	return renderText(Fonts(), opts)
}

// OnRenderingDeviceReplaced registers fn for device-replaced notifications.
func (c *CompositingDevice) OnRenderingDeviceReplaced(fn func(backend.DeviceReplacedEvent)) backend.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	if c.handlers != nil {
		c.handlers[id] = fn
	}
	return &subscription{c: c, id: id}
}

// Release frees the compositing device. Registered handlers are dropped.
// Release is idempotent.
func (c *CompositingDevice) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return nil
	}
	c.released = true
	c.handlers = nil
	c.dev = nil
	return nil
}

type subscription struct {
	c    *CompositingDevice
	id   int
	once sync.Once
}

// Cancel removes the registration. Idempotent.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.c.mu.Lock()
		defer s.c.mu.Unlock()
		if s.c.handlers != nil {
			delete(s.c.handlers, s.id)
		}
	})
}

var _ backend.CompositingDevice = (*CompositingDevice)(nil)
