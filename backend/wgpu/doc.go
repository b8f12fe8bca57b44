// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides a WebGPU-backed rendering device for the surface
// factory, using the Pure Go gogpu/wgpu implementation.
//
// The package owns the WebGPU instance/adapter/device/queue lifecycle, or
// borrows them from a host application's gpucontext.DeviceProvider
// (NewGraphicsWithProvider). Surface pixel storage is staged on
// the CPU and composited with the software paths; the staged pixels are the
// upload source once wgpu queue texture writes are wired up.
//
// Importing the package registers it at priority 100:
//
//	import _ "github.com/gogpu/surfacefactory/backend/wgpu"
//
// Registration availability is probed by requesting an adapter once; on
// machines without a usable GPU the backend reports unavailable and
// auto-selection falls through to the software backend.
package wgpu
