// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import "errors"

// Package errors for the software backend.
var (
	// ErrUnsupportedScheme is returned for URI schemes other than file,
	// http, https, or a bare filesystem path.
	ErrUnsupportedScheme = errors.New("software: unsupported URI scheme")

	// ErrSessionOpen is returned when BeginPaint is called while a previous
	// session has not ended.
	ErrSessionOpen = errors.New("software: paint session already open")

	// ErrFontExists is returned when a font family is registered twice.
	ErrFontExists = errors.New("software: font family already registered")

	// ErrEmptyFontData is returned when RegisterFont is given no data.
	ErrEmptyFontData = errors.New("software: empty font data")
)
