// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// measureShaper measures text advance widths with HarfBuzz shaping, so that
// wrapping decisions account for kerning and ligatures. Rasterization still
// goes through x/image faces; only measurement is shaped.
//
// measureShaper is safe for concurrent use. Parsed font.Font objects are
// cached per registry entry (they are read-only); HarfbuzzShaper instances
// are pooled because they carry mutable buffers.
type measureShaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	cache map[*fontEntry]*font.Font
}

var shaper = &measureShaper{
	pool: sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	},
	cache: make(map[*fontEntry]*font.Font),
}

// measure returns the advance width in pixels of text at the given size, or
// false when the entry's data cannot be shaped.
func (s *measureShaper) measure(entry *fontEntry, text string, size float64) (float64, bool) {
	if entry == nil || text == "" {
		return 0, false
	}
	goFont, err := s.getOrParse(entry)
	if err != nil {
		return 0, false
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goFont),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return float64(advance) / 64.0, true
}

// getOrParse returns the cached parsed font for entry, parsing on first use.
func (s *measureShaper) getOrParse(entry *fontEntry) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.cache[entry]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.cache[entry]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(entry.data))
	if err != nil {
		return nil, err
	}
	s.cache[entry] = face.Font
	return face.Font, nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
