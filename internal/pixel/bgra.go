// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixel converts between the premultiplied-BGRA wire format used by
// surface callers and the premultiplied RGBA representation backends
// composite with.
package pixel

import (
	"fmt"
	"image"
)

// ValidateBGRA checks that data holds exactly width*height 4-byte BGRA
// pixels.
func ValidateBGRA(data []byte, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("pixel: negative dimensions %dx%d", width, height)
	}
	want := width * height * 4
	if len(data) != want {
		return fmt.Errorf("pixel: buffer length %d, want %d for %dx%d BGRA", len(data), want, width, height)
	}
	return nil
}

// BGRAToRGBA converts a premultiplied-BGRA buffer into a premultiplied RGBA
// image. The buffer is copied; data can be reused after the call.
func BGRAToRGBA(data []byte, width, height int) (*image.RGBA, error) {
	if err := ValidateBGRA(data, width, height); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(data); i += 4 {
		img.Pix[i+0] = data[i+2] // R
		img.Pix[i+1] = data[i+1] // G
		img.Pix[i+2] = data[i+0] // B
		img.Pix[i+3] = data[i+3] // A
	}
	return img, nil
}

// RGBAToBGRA converts a premultiplied RGBA image into a tightly packed
// premultiplied-BGRA buffer.
func RGBAToBGRA(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*4)
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		row := img.Pix[start : start+w*4]
		for x := 0; x < w*4; x += 4 {
			out[o+0] = row[x+2] // B
			out[o+1] = row[x+1] // G
			out[o+2] = row[x+0] // R
			out[o+3] = row[x+3] // A
			o += 4
		}
	}
	return out
}
