// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

// Options configures an owning factory. The zero value selects the default
// backend with hardware rendering.
type Options struct {
	// UseSoftwareRenderer asks the backend for a CPU-based renderer. The
	// flag is preserved across device-loss recovery: a recreated device
	// keeps the renderer kind of the device it replaces.
	UseSoftwareRenderer bool

	// Backend names a registered graphics backend. Empty auto-selects the
	// highest-priority available backend.
	Backend string
}

// DrawOptions configures bitmap draws. The zero value means "size from
// content, linear interpolation".
type DrawOptions struct {
	// Size is the requested surface size. Unspecified (zero) resizes the
	// surface to the bitmap's native size once content is available.
	Size Size

	// Interpolation selects the resampling filter. The zero value is
	// InterpLinear.
	Interpolation InterpolationMode
}
