// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"sync"

	"github.com/gogpu/surfacefactory/backend"
)

// DeviceLostEvent reports that a watched rendering device became unusable.
type DeviceLostEvent struct {
	// Device is the lost rendering device.
	Device backend.RenderingDevice

	// Reason classifies the loss when the backend can.
	Reason DeviceLossReason
}

// DeviceLostWatcher observes a rendering device and invokes a handler when
// the device reports loss. The handler runs on the watcher's own goroutine,
// decoupled from whatever backend internals detected the loss, so handlers
// may safely call back into the backend.
//
// A watcher observes one device at a time; Watch replaces the previous
// observation. Loss notification is single-shot per watched device.
type DeviceLostWatcher struct {
	handler func(DeviceLostEvent)

	mu   sync.Mutex
	stop chan struct{}
}

// NewDeviceLostWatcher creates a watcher delivering loss events to handler.
func NewDeviceLostWatcher(handler func(DeviceLostEvent)) *DeviceLostWatcher {
	return &DeviceLostWatcher{handler: handler}
}

// Watch begins observing dev, replacing any previous observation.
func (w *DeviceLostWatcher) Watch(dev backend.RenderingDevice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()

	stop := make(chan struct{})
	w.stop = stop
	go w.run(dev, stop)
}

// StopWatching ends the current observation. It is idempotent and safe to
// call when nothing is being watched.
func (w *DeviceLostWatcher) StopWatching() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *DeviceLostWatcher) stopLocked() {
	if w.stop != nil {
		close(w.stop)
		w.stop = nil
	}
}

func (w *DeviceLostWatcher) run(dev backend.RenderingDevice, stop chan struct{}) {
	select {
	case <-stop:
	case reason, ok := <-dev.LostSignal():
		if !ok {
			return
		}
		Logger().Info("surfacefactory: device lost", "reason", reason.String())
		w.handler(DeviceLostEvent{Device: dev, Reason: reason})
	}
}
