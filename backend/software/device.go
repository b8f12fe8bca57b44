// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"context"
	"sync"

	"github.com/gogpu/surfacefactory/backend"
)

// Device is a software rendering device. It performs decode and raster work
// on the CPU.
//
// Device supports simulated device loss through TriggerDeviceLost, which
// lets loss-recovery paths be exercised without a real GPU reset.
type Device struct {
	software bool

	mu       sync.Mutex
	lost     chan backend.DeviceLossReason
	isLost   bool
	released bool
}

func newDevice(software bool) *Device {
	return &Device{
		software: software,
		lost:     make(chan backend.DeviceLossReason, 1),
	}
}

// IsSoftware reports the renderer flag the device was created with.
func (d *Device) IsSoftware() bool { return d.software }

// LostSignal returns the device-loss channel. At most one reason is ever
// delivered.
func (d *Device) LostSignal() <-chan backend.DeviceLossReason { return d.lost }

// TriggerDeviceLost marks the device lost and delivers reason to the loss
// channel. Subsequent triggers are no-ops; a loss event is single-shot.
func (d *Device) TriggerDeviceLost(reason backend.DeviceLossReason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isLost || d.released {
		return
	}
	d.isLost = true
	d.lost <- reason
}

// Lost reports whether the device has been marked lost.
func (d *Device) Lost() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isLost
}

// LoadBitmapFromURI fetches and decodes the resource at uri. Supported
// schemes: file, http, https, and bare filesystem paths.
func (d *Device) LoadBitmapFromURI(ctx context.Context, uri string) (backend.Bitmap, error) {
	if err := d.usable(); err != nil {
		return nil, err
	}
	return LoadBitmap(ctx, uri)
}

// NewBitmapFromBytes wraps a premultiplied-BGRA buffer as a bitmap.
func (d *Device) NewBitmapFromBytes(data []byte, width, height int) (backend.Bitmap, error) {
	if err := d.usable(); err != nil {
		return nil, err
	}
	return BitmapFromBytes(data, width, height)
}

// Release frees the device. Release is idempotent.
func (d *Device) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return nil
	}
	d.released = true
	return nil
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
