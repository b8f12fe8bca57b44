// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"testing"
)

func TestSizeIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want bool
	}{
		{"zero", Size{}, true},
		{"negative width", Size{Width: -1, Height: 10}, true},
		{"negative height", Size{Width: 10, Height: -1}, true},
		{"zero width", Size{Width: 0, Height: 10}, true},
		{"zero height", Size{Width: 10, Height: 0}, true},
		{"one by one", Size{Width: 1, Height: 1}, false},
		{"regular", Size{Width: 640, Height: 480}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.IsEmpty(); got != tt.want {
				t.Errorf("Size%v.IsEmpty() = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	if got := (Size{Width: 640, Height: 480}).String(); got != "640x480" {
		t.Errorf("String() = %q, want %q", got, "640x480")
	}
}

func TestInterpolationModeString(t *testing.T) {
	tests := []struct {
		mode InterpolationMode
		want string
	}{
		{InterpLinear, "Linear"},
		{InterpNearest, "Nearest"},
		{InterpCubic, "Cubic"},
		{InterpolationMode(99), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("InterpolationMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestInterpolationModeDefault(t *testing.T) {
	// The zero value must be the default mode so DrawOptions{} draws with
	// linear interpolation.
	var mode InterpolationMode
	if mode != InterpLinear {
		t.Errorf("zero InterpolationMode = %v, want InterpLinear", mode)
	}
}

func TestDeviceLossReasonString(t *testing.T) {
	tests := []struct {
		reason DeviceLossReason
		want   string
	}{
		{LossReasonUnknown, "Unknown"},
		{LossReasonReset, "Reset"},
		{LossReasonRemoved, "Removed"},
		{LossReasonHung, "Hung"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("DeviceLossReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
