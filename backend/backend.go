// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"context"
	"image"
	"image/color"
)

// Graphics is the entry point to a graphics backend. Implementations create
// rendering devices and bind them to compositing devices.
//
// Graphics implementations must be safe for concurrent use.
type Graphics interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// NewRenderingDevice creates a rendering device. When useSoftwareRenderer
	// is true the backend selects a CPU-based renderer; hardware backends may
	// honor the flag by requesting a fallback adapter.
	NewRenderingDevice(useSoftwareRenderer bool) (RenderingDevice, error)

	// NewCompositingDevice creates a compositing device bound to the given
	// presentation target, realizing surfaces through dev.
	NewCompositingDevice(target CompositionTarget, dev RenderingDevice) (CompositingDevice, error)
}

// RenderingDevice is a GPU context abstraction used to decode bitmaps and
// draw into surfaces. At most one rendering device is current per
// compositing device at any instant.
type RenderingDevice interface {
	// IsSoftware reports whether this device uses a software renderer.
	// Device-loss recovery preserves this flag across recreation.
	IsSoftware() bool

	// LostSignal returns a channel that delivers a single loss reason when
	// the device becomes unusable. The channel is never closed without a
	// send; after Release it may be closed silently.
	LostSignal() <-chan DeviceLossReason

	// LoadBitmapFromURI decodes the resource at uri into a device bitmap.
	// This is the only suspending operation in the drawing pipeline; it must
	// not be called while a drawing lock is held.
	LoadBitmapFromURI(ctx context.Context, uri string) (Bitmap, error)

	// NewBitmapFromBytes wraps a premultiplied-BGRA pixel buffer of the given
	// dimensions. It fails if len(data) != width*height*4.
	NewBitmapFromBytes(data []byte, width, height int) (Bitmap, error)

	// Release frees device resources. Release is idempotent.
	Release() error
}

// CompositingDevice is the stable handle the presentation layer uses to
// realize drawing surfaces, decoupled from any specific rendering device
// instance. Surfaces created from a compositing device remain valid when its
// rendering device is replaced.
type CompositingDevice interface {
	// RenderingDevice returns the current rendering device.
	RenderingDevice() RenderingDevice

	// SetRenderingDevice re-points the compositing device at a new rendering
	// device and notifies device-replaced subscribers.
	SetRenderingDevice(dev RenderingDevice) error

	// NewDrawingSurface allocates a surface of the given size in 32-bit
	// premultiplied BGRA. An unspecified size allocates a zero-area
	// placeholder to be resized once content dimensions are known.
	NewDrawingSurface(size Size) (Surface, error)

	// OnRenderingDeviceReplaced registers fn for device-replaced
	// notifications. fn may be invoked from backend-internal goroutines;
	// callers must not re-enter the backend synchronously from fn.
	OnRenderingDeviceReplaced(fn func(DeviceReplacedEvent)) Subscription

	// Release frees the compositing device. Release is idempotent.
	Release() error
}

// Surface is a mutable GPU-backed 2D pixel buffer. Surfaces are not
// internally synchronized; the factory serializes paints and resizes under
// its drawing lock.
type Surface interface {
	// Size returns the current pixel size.
	Size() Size

	// Resize changes the backing store dimensions. Content outside previous
	// bounds is undefined until redrawn.
	Resize(size Size) error

	// BeginPaint opens a paint session against the surface. Sessions must be
	// ended before another is begun.
	BeginPaint() (PaintSession, error)

	// Snapshot returns the current surface contents as a premultiplied RGBA
	// image. The returned image is a copy. GPU surfaces may need a readback.
	Snapshot() *image.RGBA
}

// PaintSession is an open drawing pass against a surface.
type PaintSession interface {
	// Clear fills the entire surface with c.
	Clear(c color.Color)

	// DrawImage composites bmp's src rectangle into the surface's dst
	// rectangle, scaling with the given interpolation mode at the given
	// opacity (0..1).
	DrawImage(bmp Bitmap, dst, src image.Rectangle, opacity float64, interp InterpolationMode)

	// End flushes the session. The surface contents are undefined between
	// BeginPaint and End.
	End() error
}

// Bitmap is a decoded, device-resident image ready to be composited into a
// surface.
type Bitmap interface {
	// Size returns the bitmap's native pixel size.
	Size() Size

	// Image returns the bitmap pixels as a premultiplied RGBA image. Paint
	// sessions use this representation for compositing.
	Image() image.Image
}

// TextRenderer is an optional Graphics capability: rendering a text block
// into a bitmap. The factory requires it for text surfaces and reports
// ErrTextUnsupported when the selected backend does not implement it.
type TextRenderer interface {
	// RenderText lays out and rasterizes opts into a bitmap using dev.
	// When opts.Width or opts.Height is zero, the bitmap is sized to the
	// measured text plus padding.
	RenderText(dev RenderingDevice, opts TextOptions) (Bitmap, error)
}
