// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Package errors for the wgpu backend.
var (
	// ErrNoAdapter is returned when no WebGPU adapter is available.
	ErrNoAdapter = errors.New("wgpu: no adapter available")

	// ErrDeviceCreationFailed is returned when logical device creation fails.
	ErrDeviceCreationFailed = errors.New("wgpu: device creation failed")

	// ErrNoProviderDevice is returned when a shared device provider hands
	// out a nil device.
	ErrNoProviderDevice = errors.New("wgpu: device provider returned no device")
)
