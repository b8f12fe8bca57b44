// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surfacefactory manages GPU-backed drawing surfaces for a
// compositing pipeline: it allocates drawable regions, fills them from
// bitmap sources (URI-loaded images, raw pixel buffers, or rendered text),
// and keeps them valid across device-loss and device-replacement events.
//
// The heavy lifting (bitmap decoding, text shaping, presentation) lives in
// a pluggable graphics backend; see the backend package. The factory's job
// is coordination: serializing concurrent draws against a shared device,
// recreating a lost device while preserving its configuration, and
// re-broadcasting device-replaced notifications so dependents can redraw.
//
// # Basic usage
//
//	import (
//	    sf "github.com/gogpu/surfacefactory"
//	    _ "github.com/gogpu/surfacefactory/backend/software"
//	)
//
//	factory, err := sf.New(nil, sf.Options{})
//	if err != nil { ... }
//	defer factory.Uninitialize()
//
//	// Fire-and-forget: the surface is valid immediately, pixels appear
//	// once the background draw completes.
//	surface, err := factory.CreateSurfaceFromURIAsync("file:///tmp/logo.png", sf.DrawOptions{})
//
//	// Awaitable: returns after drawing finished.
//	surface, err = factory.CreateSurfaceFromURI(ctx, "file:///tmp/logo.png", sf.DrawOptions{})
//
// Factories come in two modes. An owning factory (New) creates and owns its
// rendering device and recovers from device loss by recreating it. A
// borrowing factory (NewFromDevice) wraps an externally owned compositing
// device and leaves loss recovery to that owner; several borrowing
// factories targeting one device can share a single drawing Lock.
package surfacefactory
