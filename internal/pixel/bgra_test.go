// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"bytes"
	"image"
	"testing"
)

// TestValidateBGRA checks buffer length validation.
func TestValidateBGRA(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		w, h    int
		wantErr bool
	}{
		{"exact", 64, 4, 4, false},
		{"short", 63, 4, 4, true},
		{"long", 65, 4, 4, true},
		{"zero", 0, 0, 0, false},
		{"negative width", 0, -1, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBGRA(make([]byte, tt.length), tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBGRA(%d bytes, %d, %d) error = %v, wantErr %v",
					tt.length, tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

// TestBGRAToRGBA checks channel swizzling.
func TestBGRAToRGBA(t *testing.T) {
	// One pure-blue premultiplied pixel: B=255, G=0, R=0, A=255.
	img, err := BGRAToRGBA([]byte{255, 0, 0, 255}, 1, 1)
	if err != nil {
		t.Fatalf("BGRAToRGBA: %v", err)
	}
	c := img.RGBAAt(0, 0)
	if c.R != 0 || c.G != 0 || c.B != 255 || c.A != 255 {
		t.Errorf("pixel = %v, want blue (0, 0, 255, 255)", c)
	}
}

// TestBGRARoundTrip checks RGBA->BGRA is the inverse of BGRA->RGBA.
func TestBGRARoundTrip(t *testing.T) {
	src := make([]byte, 3*2*4)
	for i := range src {
		src[i] = byte(i * 7)
	}
	img, err := BGRAToRGBA(src, 3, 2)
	if err != nil {
		t.Fatalf("BGRAToRGBA: %v", err)
	}
	got := RGBAToBGRA(img)
	if !bytes.Equal(got, src) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, src)
	}
}

// TestRGBAToBGRASubimage checks conversion respects non-zero bounds.
func TestRGBAToBGRASubimage(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Pix[base.PixOffset(2, 2)] = 200 // R
	sub := base.SubImage(image.Rect(2, 2, 3, 3)).(*image.RGBA)

	out := RGBAToBGRA(sub)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	if out[2] != 200 {
		t.Errorf("R byte = %d, want 200", out[2])
	}
}
