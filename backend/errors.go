// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "errors"

// Package errors for the backend contract. Implementations wrap these
// sentinels so callers can classify failures with errors.Is.
var (
	// ErrInvalidBuffer is returned when a raw pixel buffer length does not
	// match width*height*4.
	ErrInvalidBuffer = errors.New("backend: pixel buffer length does not match dimensions")

	// ErrInvalidSize is returned for malformed size values (e.g., negative
	// dimensions passed to Resize).
	ErrInvalidSize = errors.New("backend: invalid size")

	// ErrDeviceLost is returned when an operation hits a device the backend
	// already reported lost. The factory recovers by recreating the device;
	// callers see this only from draws in flight during recovery.
	ErrDeviceLost = errors.New("backend: device lost")

	// ErrDeviceReleased is returned when an operation is attempted on a
	// released device.
	ErrDeviceReleased = errors.New("backend: device released")

	// ErrDecode is returned when a bitmap source cannot be fetched or
	// decoded.
	ErrDecode = errors.New("backend: bitmap decode failed")

	// ErrTextUnsupported is returned when the selected backend does not
	// implement the TextRenderer capability.
	ErrTextUnsupported = errors.New("backend: text rendering not supported")

	// ErrNoBackend is returned when no registered backend is available.
	ErrNoBackend = errors.New("backend: no graphics backend available")

	// ErrUnknownBackend is returned when a backend name is not registered.
	ErrUnknownBackend = errors.New("backend: unknown backend name")
)
