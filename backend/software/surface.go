// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/surfacefactory/backend"
)

// Surface is a CPU drawing surface backed by a premultiplied RGBA buffer.
//
// Surface is not internally synchronized; the factory's drawing lock
// serializes all paints and resizes.
type Surface struct {
	img  *image.RGBA
	open bool
}

// NewSurface allocates a surface of the given size. A non-positive dimension
// allocates a zero-area buffer.
func NewSurface(size backend.Size) *Surface {
	w, h := size.Width, size.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the current pixel size.
func (s *Surface) Size() backend.Size {
	b := s.img.Bounds()
	return backend.Size{Width: b.Dx(), Height: b.Dy()}
}

// Resize replaces the backing store. Previous content is discarded.
func (s *Surface) Resize(size backend.Size) error {
	if size.Width < 0 || size.Height < 0 {
		return backend.ErrInvalidSize
	}
	s.img = image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	return nil
}

// BeginPaint opens a paint session. Only one session may be open at a time.
func (s *Surface) BeginPaint() (backend.PaintSession, error) {
	if s.open {
		return nil, ErrSessionOpen
	}
	s.open = true
	return &paintSession{s: s}, nil
}

// Snapshot returns a copy of the surface contents.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

type paintSession struct {
	s     *Surface
	ended bool
}

// Clear fills the surface with c.
func (p *paintSession) Clear(c color.Color) {
	xdraw.Draw(p.s.img, p.s.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// DrawImage composites bmp's src rectangle into dst, scaling with the given
// interpolation mode.
func (p *paintSession) DrawImage(bmp backend.Bitmap, dst, src image.Rectangle, opacity float64, interp backend.InterpolationMode) {
	if bmp == nil || dst.Empty() || src.Empty() || opacity <= 0 {
		return
	}
	scaler := scalerFor(interp)
	if opacity >= 1 {
		scaler.Scale(p.s.img, dst, bmp.Image(), src, xdraw.Over, nil)
		return
	}
	// Scale into a staging buffer, then composite through a uniform alpha
	// mask so opacity applies after resampling.
	tmp := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	scaler.Scale(tmp, tmp.Bounds(), bmp.Image(), src, xdraw.Src, nil)
	mask := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})
	xdraw.DrawMask(p.s.img, dst, tmp, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// End closes the session.
func (p *paintSession) End() error {
	if p.ended {
		return nil
	}
	p.ended = true
	p.s.open = false
	return nil
}

// scalerFor maps an interpolation mode to an x/image scaler.
func scalerFor(interp backend.InterpolationMode) xdraw.Scaler {
	switch interp {
	case backend.InterpNearest:
		return xdraw.NearestNeighbor
	case backend.InterpCubic:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

var _ backend.Surface = (*Surface)(nil)
