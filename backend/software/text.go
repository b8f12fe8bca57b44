// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"
	"image/color"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/surfacefactory/backend"
)

// defaultFontSize is used when TextOptions.FontSize is zero.
const defaultFontSize = 14

// renderText lays out and rasterizes a text block into a bitmap.
//
// Layout model: the text is split into paragraphs at newlines, each
// paragraph is wrapped against the content width (layout width minus
// horizontal padding), lines are placed at the face's line height and
// aligned per the options. When the paragraph base direction is
// right-to-left and the alignment is the default AlignLeft, lines align to
// the trailing edge instead.
func renderText(fonts *FontRegistry, opts backend.TextOptions) (backend.Bitmap, error) {
	size := opts.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	fg := opts.Foreground
	if fg == nil {
		fg = color.Black
	}

	face, entry, err := fonts.face(opts.FontFamily, opts.FontStyle, size)
	if err != nil {
		return nil, err
	}

	measure := func(s string) float64 {
		if w, ok := shaper.measure(entry, s, size); ok {
			return w
		}
		return float64(font.MeasureString(face, s)) / 64.0
	}

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64.0
	lineHeight := float64(metrics.Height) / 64.0
	if lineHeight <= 0 {
		lineHeight = ascent + float64(metrics.Descent)/64.0
	}

	contentWidth := math.Inf(1)
	if opts.Width > 0 {
		contentWidth = float64(opts.Width - opts.Padding.Left - opts.Padding.Right)
	}

	var lines []string
	var maxLine float64
	for _, para := range strings.Split(opts.Text, "\n") {
		for _, line := range wrap(para, contentWidth, opts.Wrapping, measure) {
			lines = append(lines, line)
			if w := measure(line); w > maxLine {
				maxLine = w
			}
		}
	}

	textHeight := float64(len(lines)) * lineHeight

	width := opts.Width
	if width <= 0 {
		width = int(math.Ceil(maxLine)) + opts.Padding.Left + opts.Padding.Right
	}
	height := opts.Height
	if height <= 0 {
		height = int(math.Ceil(textHeight)) + opts.Padding.Top + opts.Padding.Bottom
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if opts.Background != nil {
		xdraw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	}

	halign := opts.HorizontalAlignment
	if halign == backend.AlignLeft && baseDirection(opts.Text) == bidi.RightToLeft {
		halign = backend.AlignRight
	}

	// Vertical placement of the whole block within the content box.
	top := float64(opts.Padding.Top)
	if opts.Height > 0 {
		extra := float64(opts.Height-opts.Padding.Top-opts.Padding.Bottom) - textHeight
		if extra > 0 {
			switch opts.VerticalAlignment {
			case backend.AlignMiddle:
				top += extra / 2
			case backend.AlignBottom:
				top += extra
			}
		}
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	left := float64(opts.Padding.Left)
	right := float64(width - opts.Padding.Right)
	for i, line := range lines {
		w := measure(line)
		x := left
		switch halign {
		case backend.AlignCenter:
			x = left + (right-left-w)/2
		case backend.AlignRight:
			x = right - w
		}
		y := top + float64(i)*lineHeight + ascent
		drawer.Dot = fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		}
		drawer.DrawString(line)
	}

	return NewBitmap(img), nil
}

// wrap splits a paragraph into lines that fit limit pixels.
func wrap(para string, limit float64, mode backend.WordWrapping, measure func(string) float64) []string {
	if mode == backend.WrapNone || math.IsInf(limit, 1) || para == "" {
		return []string{para}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(para) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= limit {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		if mode == backend.WrapCharacters && measure(word) > limit {
			head, rest := splitToFit(word, limit, measure)
			for head != "" {
				lines = append(lines, head)
				head, rest = splitToFit(rest, limit, measure)
			}
			current = ""
			if n := len(lines); n > 0 && measure(lines[n-1]) <= limit {
				// The final fragment starts the next line so following
				// words can join it.
				current = lines[n-1]
				lines = lines[:n-1]
			}
			continue
		}
		current = word
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// splitToFit cuts the longest prefix of word that fits limit. It always
// consumes at least one rune so progress is guaranteed.
func splitToFit(word string, limit float64, measure func(string) float64) (head, rest string) {
	if word == "" {
		return "", ""
	}
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= limit {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// baseDirection reports the bidi base direction of the first paragraph.
func baseDirection(text string) bidi.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return bidi.LeftToRight
	}
	return p.Direction()
}
