// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"sync"
)

// TextSurface couples a drawing surface with the text options that produced
// its content. Changing the text or options repaints the surface through
// the backend's text renderer.
type TextSurface struct {
	factory *Factory
	surface DrawingSurface

	mu   sync.Mutex
	opts TextOptions
}

// CreateTextSurface creates a surface showing text with default styling:
// 14pt, black on transparent, sized to content.
func (f *Factory) CreateTextSurface(text string) (*TextSurface, error) {
	return f.CreateTextSurfaceWithOptions(TextOptions{Text: text})
}

// CreateTextSurfaceWithOptions creates a surface rendering the given text
// block. Fails with ErrTextUnsupported when the selected backend cannot
// render text.
func (f *Factory) CreateTextSurfaceWithOptions(opts TextOptions) (*TextSurface, error) {
	surface, err := f.CreateSurface(Size{})
	if err != nil {
		return nil, err
	}
	ts := &TextSurface{factory: f, surface: surface, opts: opts}
	if err := ts.Redraw(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Surface returns the underlying drawing surface for composition.
func (s *TextSurface) Surface() DrawingSurface { return s.surface }

// Text returns the text the surface currently renders.
func (s *TextSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Text
}

// Options returns a copy of the current text options.
func (s *TextSurface) Options() TextOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// Size returns the surface's current pixel size. The read runs under the
// drawing lock, so it is coherent with a repaint resizing the surface.
func (s *TextSurface) Size() Size {
	session := s.factory.drawingLock.Acquire()
	defer session.Release()
	return s.surface.Size()
}

// SetText replaces the rendered text and repaints the surface.
func (s *TextSurface) SetText(text string) error {
	return s.Update(func(o *TextOptions) { o.Text = text })
}

// Update applies mutate to the text options and repaints the surface with
// the result. The updated options are remembered even if the repaint fails.
func (s *TextSurface) Update(mutate func(*TextOptions)) error {
	s.mu.Lock()
	mutate(&s.opts)
	s.mu.Unlock()
	return s.Redraw()
}

// Redraw renders the remembered text options into a bitmap and paints it
// into the surface, resizing the surface to the bitmap's size. Rendering
// runs outside the drawing lock.
func (s *TextSurface) Redraw() error {
	tr := s.factory.textRenderer()
	if tr == nil {
		return ErrTextUnsupported
	}
	dev, err := s.factory.currentRenderingDevice()
	if err != nil {
		return err
	}
	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()
	bmp, err := tr.RenderText(dev, opts)
	if err != nil {
		return err
	}
	return s.factory.DrawBitmap(s.surface, bmp, DrawOptions{})
}
