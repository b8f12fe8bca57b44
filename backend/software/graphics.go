// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"github.com/gogpu/surfacefactory/backend"
)

// BackendSoftware is the registry name of the software backend.
const BackendSoftware = "software"

// Graphics is the software implementation of backend.Graphics. It also
// implements backend.TextRenderer.
//
// The zero value is not usable; call NewGraphics.
type Graphics struct {
	fonts *FontRegistry
}

// NewGraphics creates a software graphics backend using the package-level
// font registry.
func NewGraphics() *Graphics {
	return &Graphics{fonts: Fonts()}
}

// Name returns the backend identifier.
func (g *Graphics) Name() string { return BackendSoftware }

// NewRenderingDevice creates a software rendering device. The flag is
// recorded so loss recovery can preserve it; every device this backend
// creates is CPU-based regardless.
func (g *Graphics) NewRenderingDevice(useSoftwareRenderer bool) (backend.RenderingDevice, error) {
	return newDevice(useSoftwareRenderer), nil
}

// NewCompositingDevice creates a compositing device over dev. The target is
// ignored; the software backend has no presentation tree and accepts nil.
func (g *Graphics) NewCompositingDevice(target backend.CompositionTarget, dev backend.RenderingDevice) (backend.CompositingDevice, error) {
	if dev == nil {
		return nil, backend.ErrDeviceReleased
	}
	return NewCompositingDevice(dev), nil
}

// RenderText implements backend.TextRenderer.
func (g *Graphics) RenderText(dev backend.RenderingDevice, opts backend.TextOptions) (backend.Bitmap, error) {
	return renderText(g.fonts, opts)
}

func init() {
	backend.Register(BackendSoftware, 10, func() (backend.Graphics, error) {
		return NewGraphics(), nil
	}, nil)
}
