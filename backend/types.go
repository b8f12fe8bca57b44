// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "fmt"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Size is a surface or bitmap size in integer pixels.
//
// The zero value (and any size with a non-positive dimension) is the
// "unspecified" size: operations that accept a Size treat it as "unknown,
// determine from content". A surface created with an unspecified size starts
// out as a zero-area placeholder and is resized once content dimensions are
// known.
type Size struct {
	Width  int
	Height int
}

// SizeEmpty is the canonical unspecified size.
var SizeEmpty = Size{}

// IsEmpty reports whether the size is unspecified (either dimension is not
// positive).
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String returns the size formatted as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// InterpolationMode selects the resampling filter used when a bitmap is
// scaled into a surface.
type InterpolationMode uint8

const (
	// InterpLinear performs linear interpolation between neighboring pixels.
	// Good balance between quality and performance. This is the zero value
	// and the default everywhere a mode is optional.
	InterpLinear InterpolationMode = iota

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest

	// InterpCubic performs higher-quality cubic resampling.
	// Best results for large scale factors, slowest of the three.
	InterpCubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpLinear:
		return "Linear"
	case InterpNearest:
		return "Nearest"
	case InterpCubic:
		return "Cubic"
	default:
		return unknownStr
	}
}

// DeviceLossReason describes why a rendering device became unusable.
type DeviceLossReason uint8

const (
	// LossReasonUnknown is reported when the backend cannot classify the loss.
	LossReasonUnknown DeviceLossReason = iota

	// LossReasonReset indicates the GPU was reset (e.g., a timeout-detection
	// recovery cycle).
	LossReasonReset

	// LossReasonRemoved indicates the underlying adapter or driver was
	// removed or upgraded.
	LossReasonRemoved

	// LossReasonHung indicates the device was removed because the GPU hung.
	LossReasonHung
)

// String returns a string representation of the loss reason.
func (r DeviceLossReason) String() string {
	switch r {
	case LossReasonUnknown:
		return "Unknown"
	case LossReasonReset:
		return "Reset"
	case LossReasonRemoved:
		return "Removed"
	case LossReasonHung:
		return "Hung"
	default:
		return unknownStr
	}
}

// CompositionTarget is the opaque presentation-layer object a compositing
// device is bound to (for example, a compositor or window handle supplied by
// the host application). Backends document what concrete types they accept;
// the software backend accepts nil.
type CompositionTarget any

// DeviceReplacedEvent is delivered when the rendering device backing a
// compositing device changed, whether through factory-driven loss recovery
// or external recreation.
type DeviceReplacedEvent struct {
	// Device is the compositing device whose rendering device changed.
	Device CompositingDevice

	// RenderingDevice is the new rendering device.
	RenderingDevice RenderingDevice
}

// Subscription is a handle to an event registration. Cancel removes the
// registration; it is idempotent and safe to call concurrently with event
// delivery.
type Subscription interface {
	Cancel()
}
