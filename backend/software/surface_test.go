// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/surfacefactory/backend"
)

func TestNewSurfaceSize(t *testing.T) {
	tests := []struct {
		name string
		in   backend.Size
		want backend.Size
	}{
		{"regular", backend.Size{Width: 10, Height: 20}, backend.Size{Width: 10, Height: 20}},
		{"zero", backend.Size{}, backend.Size{}},
		{"negative clamped", backend.Size{Width: -5, Height: -5}, backend.Size{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.in)
			if got := s.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(backend.Size{Width: 4, Height: 4})
	if err := s.Resize(backend.Size{Width: 8, Height: 2}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := s.Size(); got != (backend.Size{Width: 8, Height: 2}) {
		t.Errorf("Size() after resize = %v", got)
	}
	if err := s.Resize(backend.Size{Width: -1, Height: 2}); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("Resize(negative) error = %v, want ErrInvalidSize", err)
	}
}

func TestSurfacePaintSessionExclusive(t *testing.T) {
	s := NewSurface(backend.Size{Width: 2, Height: 2})
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	if _, err := s.BeginPaint(); !errors.Is(err, ErrSessionOpen) {
		t.Errorf("second BeginPaint error = %v, want ErrSessionOpen", err)
	}
	if err := ps.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	// End is idempotent and the surface accepts a new session afterwards.
	if err := ps.End(); err != nil {
		t.Fatalf("second End: %v", err)
	}
	ps2, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint after End: %v", err)
	}
	_ = ps2.End()
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(backend.Size{Width: 3, Height: 3})
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	ps.Clear(color.RGBA{R: 255, A: 255})
	if err := ps.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	snap := s.Snapshot()
	want := color.RGBA{R: 255, A: 255}
	for _, pt := range []image.Point{{0, 0}, {1, 1}, {2, 2}} {
		if got := snap.RGBAAt(pt.X, pt.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", pt, got, want)
		}
	}
}

func TestSurfaceDrawImageScale(t *testing.T) {
	// 2x2 source: red/green top, blue/white bottom. Nearest-neighbor scale
	// into 4x4 keeps each quadrant uniform.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	bmp := NewBitmap(src)

	s := NewSurface(backend.Size{Width: 4, Height: 4})
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	ps.Clear(color.Transparent)
	ps.DrawImage(bmp, image.Rect(0, 0, 4, 4), image.Rect(0, 0, 2, 2), 1.0, backend.InterpNearest)
	if err := ps.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	snap := s.Snapshot()
	tests := []struct {
		pt   image.Point
		want color.RGBA
	}{
		{image.Point{0, 0}, color.RGBA{R: 255, A: 255}},
		{image.Point{3, 0}, color.RGBA{G: 255, A: 255}},
		{image.Point{0, 3}, color.RGBA{B: 255, A: 255}},
		{image.Point{3, 3}, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := snap.RGBAAt(tt.pt.X, tt.pt.Y); got != tt.want {
			t.Errorf("pixel %v = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestSurfaceDrawImageOpacity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	bmp := NewBitmap(src)

	s := NewSurface(backend.Size{Width: 1, Height: 1})
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	ps.Clear(color.Transparent)
	ps.DrawImage(bmp, image.Rect(0, 0, 1, 1), image.Rect(0, 0, 1, 1), 0.5, backend.InterpNearest)
	if err := ps.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	got := s.Snapshot().RGBAAt(0, 0)
	if got.A < 120 || got.A > 135 {
		t.Errorf("alpha = %d, want roughly half coverage", got.A)
	}
	if got.R < 120 || got.R > 135 {
		t.Errorf("red = %d, want roughly half intensity", got.R)
	}
}

func TestSurfaceDrawImageNoops(t *testing.T) {
	s := NewSurface(backend.Size{Width: 2, Height: 2})
	ps, err := s.BeginPaint()
	if err != nil {
		t.Fatalf("BeginPaint: %v", err)
	}
	defer func() { _ = ps.End() }()

	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	bmp := NewBitmap(src)

	ps.DrawImage(nil, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 1, 1), 1.0, backend.InterpLinear)
	ps.DrawImage(bmp, image.Rectangle{}, image.Rect(0, 0, 1, 1), 1.0, backend.InterpLinear)
	ps.DrawImage(bmp, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 1, 1), 0, backend.InterpLinear)

	if got := s.Snapshot().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want untouched zero", got)
	}
}

func TestSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewSurface(backend.Size{Width: 1, Height: 1})
	snap := s.Snapshot()
	snap.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	if got := s.Snapshot().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("mutating a snapshot leaked into the surface: %v", got)
	}
}
