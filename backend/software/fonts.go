// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/surfacefactory/backend"
)

// FontRegistry maps family names to parsed font faces. One registry is
// shared per process; text rendering resolves families against it and falls
// back to a built-in bitmap face when a family is missing.
//
// FontRegistry is safe for concurrent use.
type FontRegistry struct {
	mu       sync.RWMutex
	families map[fontKey]*fontEntry
}

type fontKey struct {
	family string
	style  backend.FontStyle
}

type fontEntry struct {
	data []byte
	font *opentype.Font
}

var globalFonts = &FontRegistry{families: make(map[fontKey]*fontEntry)}

// Fonts returns the process-wide font registry.
func Fonts() *FontRegistry { return globalFonts }

// RegisterFont registers TTF/OTF data under family with the normal style.
func RegisterFont(family string, data []byte) error {
	return globalFonts.Register(family, backend.FontStyleNormal, data)
}

// Register registers TTF/OTF data under a family and style. The data slice
// is retained; callers must not mutate it afterwards. Registering an
// existing family/style pair fails with ErrFontExists.
func (r *FontRegistry) Register(family string, style backend.FontStyle, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("software: parse font %q: %w", family, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := fontKey{family: family, style: style}
	if _, ok := r.families[key]; ok {
		return fmt.Errorf("%w: %q (%s)", ErrFontExists, family, style)
	}
	r.families[key] = &fontEntry{data: data, font: fnt}
	return nil
}

// lookup resolves a family and style to a registered entry. A missing
// styled variant falls back to the family's normal style; a missing family
// returns nil.
func (r *FontRegistry) lookup(family string, style backend.FontStyle) *fontEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.families[fontKey{family: family, style: style}]; ok {
		return e
	}
	if e, ok := r.families[fontKey{family: family, style: backend.FontStyleNormal}]; ok {
		return e
	}
	return nil
}

// face creates a rasterization face for the family at the given pixel size.
// The second return is the registry entry backing the face, or nil when the
// built-in fallback face is used.
func (r *FontRegistry) face(family string, style backend.FontStyle, size float64) (font.Face, *fontEntry, error) {
	entry := r.lookup(family, style)
	if entry == nil {
		return basicfont.Face7x13, nil, nil
	}
	// DPI 72 makes the point size equal the pixel size.
	f, err := opentype.NewFace(entry.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, nil, err
	}
	return f, entry, nil
}
