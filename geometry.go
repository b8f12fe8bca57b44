// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import "github.com/gogpu/surfacefactory/backend"

// Size is a public alias for the backend size type. The zero value means
// "unspecified, determine from content".
type Size = backend.Size

// SizeEmpty is the canonical unspecified size.
var SizeEmpty = backend.SizeEmpty

// InterpolationMode selects the resampling filter for bitmap draws.
type InterpolationMode = backend.InterpolationMode

// Interpolation modes.
const (
	// InterpLinear is the default linear filter.
	InterpLinear = backend.InterpLinear

	// InterpNearest is nearest-neighbor sampling.
	InterpNearest = backend.InterpNearest

	// InterpCubic is higher-quality cubic resampling.
	InterpCubic = backend.InterpCubic
)

// DrawingSurface is a surface created by a Factory. Ownership passes to the
// caller on return; the factory only mediates creation and redraw.
type DrawingSurface = backend.Surface

// DeviceReplacedEvent is re-raised by a Factory when the rendering device
// backing its compositing device changed.
type DeviceReplacedEvent = backend.DeviceReplacedEvent

// DeviceLossReason describes why a rendering device became unusable.
type DeviceLossReason = backend.DeviceLossReason

// TextOptions is the full parameter set for text surfaces.
type TextOptions = backend.TextOptions

// Padding is space between surface edges and a text block.
type Padding = backend.Padding

// FontStyle selects the slant of a font face.
type FontStyle = backend.FontStyle

// Font styles.
const (
	FontStyleNormal  = backend.FontStyleNormal
	FontStyleItalic  = backend.FontStyleItalic
	FontStyleOblique = backend.FontStyleOblique
)

// HorizontalAlignment positions text lines within the layout width.
type HorizontalAlignment = backend.HorizontalAlignment

// Horizontal alignments.
const (
	AlignLeft   = backend.AlignLeft
	AlignCenter = backend.AlignCenter
	AlignRight  = backend.AlignRight
)

// VerticalAlignment positions the text block within the layout height.
type VerticalAlignment = backend.VerticalAlignment

// Vertical alignments.
const (
	AlignTop    = backend.AlignTop
	AlignMiddle = backend.AlignMiddle
	AlignBottom = backend.AlignBottom
)

// WordWrapping controls line breaking within the layout width.
type WordWrapping = backend.WordWrapping

// Wrapping modes.
const (
	WrapWords      = backend.WrapWords
	WrapNone       = backend.WrapNone
	WrapCharacters = backend.WrapCharacters
)
