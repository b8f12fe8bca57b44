// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"context"
	"sync"
)

// URISurface couples a drawing surface with the URI and draw options that
// produced its content, so the content can be regenerated on demand (for
// example after the factory recreated its device).
//
// Accessors and redraws are safe for concurrent use; the underlying pixel
// work is serialized by the factory's drawing lock.
type URISurface struct {
	factory *Factory
	surface DrawingSurface

	mu   sync.Mutex
	uri  string
	opts DrawOptions
}

// CreateURISurface creates a surface bound to uri and draws it, returning
// once drawing completed.
func (f *Factory) CreateURISurface(ctx context.Context, uri string, opts DrawOptions) (*URISurface, error) {
	surface, err := f.CreateSurface(opts.Size)
	if err != nil {
		return nil, err
	}
	us := &URISurface{factory: f, surface: surface, uri: uri, opts: opts}
	if err := f.drawSurface(ctx, surface, uri, opts); err != nil {
		return nil, err
	}
	return us, nil
}

// CreateURISurfaceAsync creates a surface bound to uri and returns it
// immediately; the first draw runs in the background. Draw failures are
// logged.
func (f *Factory) CreateURISurfaceAsync(uri string, opts DrawOptions) (*URISurface, error) {
	surface, err := f.CreateSurface(opts.Size)
	if err != nil {
		return nil, err
	}
	us := &URISurface{factory: f, surface: surface, uri: uri, opts: opts}
	go func() {
		if err := us.Redraw(context.Background()); err != nil {
			Logger().Warn("surfacefactory: uri surface draw failed", "uri", uri, "error", err)
		}
	}()
	return us, nil
}

// Surface returns the underlying drawing surface for composition.
func (s *URISurface) Surface() DrawingSurface { return s.surface }

// URI returns the source URI the surface currently renders.
func (s *URISurface) URI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uri
}

// Options returns the draw options used for the last (re)draw.
func (s *URISurface) Options() DrawOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// Size returns the surface's current pixel size. The read runs under the
// drawing lock, so it is coherent with a redraw resizing the surface.
func (s *URISurface) Size() Size {
	session := s.factory.drawingLock.Acquire()
	defer session.Release()
	return s.surface.Size()
}

// Redraw decodes the remembered URI again and repaints the surface with the
// remembered options.
func (s *URISurface) Redraw(ctx context.Context) error {
	s.mu.Lock()
	uri, opts := s.uri, s.opts
	s.mu.Unlock()
	return s.factory.drawSurface(ctx, s.surface, uri, opts)
}

// RedrawAsync repaints the surface in the background. Failures are logged,
// leaving the surface in its last-painted state.
func (s *URISurface) RedrawAsync() {
	go func() {
		if err := s.Redraw(context.Background()); err != nil {
			Logger().Warn("surfacefactory: uri surface redraw failed", "uri", s.URI(), "error", err)
		}
	}()
}

// RedrawWith rebinds the surface to a new URI and options and repaints it.
// The new parameters are remembered for subsequent redraws even if this
// draw fails.
func (s *URISurface) RedrawWith(ctx context.Context, uri string, opts DrawOptions) error {
	s.mu.Lock()
	s.uri, s.opts = uri, opts
	s.mu.Unlock()
	return s.factory.drawSurface(ctx, s.surface, uri, opts)
}
