// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "image/color"

// FontStyle selects the slant of a font face.
type FontStyle uint8

const (
	// FontStyleNormal is upright text.
	FontStyleNormal FontStyle = iota
	// FontStyleItalic is cursive italic text.
	FontStyleItalic
	// FontStyleOblique is slanted upright text.
	FontStyleOblique
)

// String returns a string representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "Normal"
	case FontStyleItalic:
		return "Italic"
	case FontStyleOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// HorizontalAlignment positions text lines within the layout width.
type HorizontalAlignment uint8

const (
	// AlignLeft aligns lines to the leading edge.
	AlignLeft HorizontalAlignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the trailing edge.
	AlignRight
)

// String returns a string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAlignment positions the text block within the layout height.
type VerticalAlignment uint8

const (
	// AlignTop places the block at the top.
	AlignTop VerticalAlignment = iota
	// AlignMiddle centers the block vertically.
	AlignMiddle
	// AlignBottom places the block at the bottom.
	AlignBottom
)

// String returns a string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// WordWrapping controls line breaking within the layout width.
type WordWrapping uint8

const (
	// WrapWords breaks lines at word boundaries.
	WrapWords WordWrapping = iota
	// WrapNone disables wrapping; text may overflow the layout width.
	WrapNone
	// WrapCharacters breaks lines at any character when a word does not fit.
	WrapCharacters
)

// String returns a string representation of the wrapping mode.
func (w WordWrapping) String() string {
	switch w {
	case WrapWords:
		return "Words"
	case WrapNone:
		return "None"
	case WrapCharacters:
		return "Characters"
	default:
		return unknownStr
	}
}

// Padding is space in pixels between the surface edges and the text block.
type Padding struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// TextOptions carries the full parameter set for rendering a text block.
// The zero value renders empty text with the defaults documented per field.
type TextOptions struct {
	// Text is the string to render.
	Text string

	// Width and Height are the layout size in pixels. Zero means "size to
	// the measured text plus padding".
	Width  int
	Height int

	// FontFamily names a registered font family. Empty selects the backend's
	// built-in default face.
	FontFamily string

	// FontSize is the em size in pixels. Zero means 14.
	FontSize float64

	// FontStyle selects the face slant. Default FontStyleNormal.
	FontStyle FontStyle

	// HorizontalAlignment positions lines. Default AlignLeft (or the
	// trailing edge for right-to-left paragraphs).
	HorizontalAlignment HorizontalAlignment

	// VerticalAlignment positions the block. Default AlignTop.
	VerticalAlignment VerticalAlignment

	// Wrapping controls line breaking. Default WrapWords.
	Wrapping WordWrapping

	// Padding is space around the text block.
	Padding Padding

	// Foreground is the text color. Nil means opaque black.
	Foreground color.Color

	// Background fills the layout before text is drawn. Nil means fully
	// transparent.
	Background color.Color
}
