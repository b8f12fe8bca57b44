// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/surfacefactory/backend"
)

// CreateSurface allocates a drawing surface of the given size, or a
// zero-area placeholder when size is unspecified. Allocation runs under the
// drawing lock. Ownership of the surface passes to the caller.
func (f *Factory) CreateSurface(size Size) (DrawingSurface, error) {
	if f.closed.Load() {
		return nil, ErrUninitialized
	}
	if size.IsEmpty() {
		// Content dimensions are unknown at this point; the surface is
		// resized once a draw learns them.
		size = Size{}
	}

	session := f.drawingLock.Acquire()
	defer session.Release()
	comp := f.compositingDevice
	if comp == nil {
		return nil, ErrUninitialized
	}
	return comp.NewDrawingSurface(size)
}

// CreateSurfaceFromURI creates a surface and draws the bitmap at uri into
// it, returning once drawing completed. A decode or draw failure returns a
// nil surface and the error.
//
// An empty uri is a "clear" request: the result is a 1x1 fully transparent
// surface.
func (f *Factory) CreateSurfaceFromURI(ctx context.Context, uri string, opts DrawOptions) (DrawingSurface, error) {
	surface, err := f.CreateSurface(opts.Size)
	if err != nil {
		return nil, err
	}
	if err := f.drawSurface(ctx, surface, uri, opts); err != nil {
		return nil, err
	}
	return surface, nil
}

// CreateSurfaceFromURIAsync creates a surface and returns it immediately;
// the bitmap at uri is decoded and painted in the background. The surface
// reference is valid on return, its content appears once the draw
// completes. Draw failures are logged, leaving the surface in its
// last-painted (possibly placeholder) state.
func (f *Factory) CreateSurfaceFromURIAsync(uri string, opts DrawOptions) (DrawingSurface, error) {
	surface, err := f.CreateSurface(opts.Size)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := f.drawSurface(context.Background(), surface, uri, opts); err != nil {
			Logger().Warn("surfacefactory: background draw failed", "uri", uri, "error", err)
		}
	}()
	return surface, nil
}

// CreateSurfaceFromBytes creates a surface from a premultiplied-BGRA pixel
// buffer of the given dimensions. No decode step is involved, so the draw
// completes before return. Fails with ErrInvalidBuffer when len(data) !=
// width*height*4.
func (f *Factory) CreateSurfaceFromBytes(data []byte, width, height int, opts DrawOptions) (DrawingSurface, error) {
	if f.closed.Load() {
		return nil, ErrUninitialized
	}
	if len(data) != width*height*4 || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidBuffer, len(data), width, height)
	}

	surface, err := f.CreateSurface(opts.Size)
	if err != nil {
		return nil, err
	}
	dev, err := f.currentRenderingDevice()
	if err != nil {
		return nil, err
	}
	bmp, err := dev.NewBitmapFromBytes(data, width, height)
	if err != nil {
		return nil, err
	}
	if err := f.DrawBitmap(surface, bmp, opts); err != nil {
		return nil, err
	}
	return surface, nil
}

// DrawBitmap paints bmp into surface under the drawing lock: the surface is
// resized to the bitmap's native size when opts.Size is unspecified,
// cleared to transparent, and the bitmap is composited into the full
// surface rectangle at full opacity with the requested interpolation.
func (f *Factory) DrawBitmap(surface DrawingSurface, bmp backend.Bitmap, opts DrawOptions) error {
	if f.closed.Load() {
		return ErrUninitialized
	}

	session := f.drawingLock.Acquire()
	defer session.Release()

	bmpSize := bmp.Size()
	surfaceSize := opts.Size
	if surfaceSize.IsEmpty() {
		if err := surface.Resize(bmpSize); err != nil {
			return err
		}
		surfaceSize = bmpSize
	}

	ps, err := surface.BeginPaint()
	if err != nil {
		return err
	}
	ps.Clear(color.Transparent)
	dst := image.Rect(0, 0, surfaceSize.Width, surfaceSize.Height)
	src := image.Rect(0, 0, bmpSize.Width, bmpSize.Height)
	ps.DrawImage(bmp, dst, src, 1.0, opts.Interpolation)
	return ps.End()
}

// ResizeSurface resizes a surface's backing store under the drawing lock.
// Content outside the previous bounds is undefined until redrawn.
func (f *Factory) ResizeSurface(surface DrawingSurface, size Size) error {
	if f.closed.Load() {
		return ErrUninitialized
	}
	session := f.drawingLock.Acquire()
	defer session.Release()
	return surface.Resize(size)
}

// drawSurface runs the URI draw pipeline: decode outside the lock, paint
// under it. An empty uri resizes the surface to 1x1 and clears it to
// transparent, giving callers a harmless placeholder.
func (f *Factory) drawSurface(ctx context.Context, surface DrawingSurface, uri string, opts DrawOptions) error {
	if f.closed.Load() {
		return ErrUninitialized
	}

	if uri == "" {
		session := f.drawingLock.Acquire()
		defer session.Release()
		if err := surface.Resize(Size{Width: 1, Height: 1}); err != nil {
			return err
		}
		ps, err := surface.BeginPaint()
		if err != nil {
			return err
		}
		ps.Clear(color.Transparent)
		return ps.End()
	}

	dev, err := f.currentRenderingDevice()
	if err != nil {
		return err
	}
	// The decode is the only suspension point in the pipeline; the lock is
	// never held across it.
	bmp, err := dev.LoadBitmapFromURI(ctx, uri)
	if err != nil {
		return err
	}
	return f.DrawBitmap(surface, bmp, opts)
}

// currentRenderingDevice reads the compositing device's current rendering
// device.
func (f *Factory) currentRenderingDevice() (backend.RenderingDevice, error) {
	session := f.drawingLock.Acquire()
	comp := f.compositingDevice
	session.Release()
	if comp == nil {
		return nil, ErrUninitialized
	}
	dev := comp.RenderingDevice()
	if dev == nil {
		return nil, ErrUninitialized
	}
	return dev, nil
}
