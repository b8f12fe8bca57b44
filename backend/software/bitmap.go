// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	"image"

	"github.com/gogpu/surfacefactory/backend"
	"github.com/gogpu/surfacefactory/internal/pixel"
)

// Bitmap is a decoded image held as premultiplied RGBA.
type Bitmap struct {
	img *image.RGBA
}

// NewBitmap wraps a premultiplied RGBA image. The image is not copied.
func NewBitmap(img *image.RGBA) *Bitmap {
	return &Bitmap{img: img}
}

// Size returns the native pixel size.
func (b *Bitmap) Size() backend.Size {
	r := b.img.Bounds()
	return backend.Size{Width: r.Dx(), Height: r.Dy()}
}

// Image returns the premultiplied RGBA pixels.
func (b *Bitmap) Image() image.Image { return b.img }

// BitmapFromBytes wraps a premultiplied-BGRA buffer of the given dimensions.
// The buffer is copied. Fails with backend.ErrInvalidBuffer when the length
// does not match width*height*4.
func BitmapFromBytes(data []byte, width, height int) (backend.Bitmap, error) {
	if err := pixel.ValidateBGRA(data, width, height); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrInvalidBuffer, err)
	}
	img, err := pixel.BGRAToRGBA(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrInvalidBuffer, err)
	}
	return NewBitmap(img), nil
}

// bitmapFromImage converts any decoded image into a premultiplied RGBA
// bitmap.
func bitmapFromImage(src image.Image) *Bitmap {
	if rgba, ok := src.(*image.RGBA); ok {
		return NewBitmap(rgba)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return NewBitmap(dst)
}

var _ backend.Bitmap = (*Bitmap)(nil)
