// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software provides a pure-Go CPU implementation of the graphics
// backend contract.
//
// Surfaces are premultiplied RGBA pixel buffers; bitmap compositing uses the
// golang.org/x/image/draw scalers, bitmap decoding covers PNG, JPEG, GIF,
// BMP, TIFF and WebP, and text rendering rasterizes registered OpenType
// fonts with a HarfBuzz measurement pass (go-text/typesetting) for wrapping
// decisions.
//
// Importing the package registers it:
//
//	import _ "github.com/gogpu/surfacefactory/backend/software"
//
// The backend is always available and registers at priority 10 so that GPU
// backends win auto-selection when present.
package software
