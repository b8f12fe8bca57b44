// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"errors"

	"github.com/gogpu/surfacefactory/backend"
)

// Package errors. Backend sentinels are re-exported so callers can classify
// failures without importing the backend package.
var (
	// ErrUninitialized is returned by operations on a factory after
	// Uninitialize.
	ErrUninitialized = errors.New("surfacefactory: factory uninitialized")

	// ErrNilDevice is returned when a borrowing factory is given a nil
	// compositing device.
	ErrNilDevice = errors.New("surfacefactory: nil compositing device")

	// ErrInvalidBuffer reports a raw pixel buffer whose length does not
	// match width*height*4.
	ErrInvalidBuffer = backend.ErrInvalidBuffer

	// ErrInvalidSize reports malformed size values.
	ErrInvalidSize = backend.ErrInvalidSize

	// ErrDeviceLost reports a draw that hit a device already lost; the
	// factory recovers the device itself and the next redraw succeeds.
	ErrDeviceLost = backend.ErrDeviceLost

	// ErrDecode reports a bitmap source that could not be fetched or
	// decoded.
	ErrDecode = backend.ErrDecode

	// ErrTextUnsupported reports a backend without text rendering support.
	ErrTextUnsupported = backend.ErrTextUnsupported
)
