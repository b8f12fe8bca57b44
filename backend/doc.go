// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend defines the graphics collaborator contract consumed by the
// surface factory, plus a registry for backend implementations.
//
// A backend provides rendering devices (the GPU context used to decode and
// draw content), compositing devices (the stable anchor the presentation
// layer uses to realize drawing surfaces), drawing surfaces, and paint
// sessions. The factory in the root package coordinates their lifecycle; it
// never touches pixels or GPU handles directly.
//
// # Registry
//
// Backends register themselves on import, following the same pattern as
// other gogpu rendering backends:
//
//	import _ "github.com/gogpu/surfacefactory/backend/software"
//
// The highest-priority available backend is selected by Default. Standard
// priorities:
//   - 100: GPU backends
//   - 10: pure software backends
//
// # Thread safety
//
// Surface and PaintSession implementations are not required to be
// internally synchronized; the factory serializes all surface mutation
// under its drawing lock. Device implementations must tolerate concurrent
// reads (IsSoftware, LostSignal) while a draw is in flight.
package backend
