// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/surfacefactory/backend"
)

// Subscription is a cancelable event registration.
type Subscription = backend.Subscription

// Factory coordinates the lifecycle of a rendering device, a compositing
// device, and the drawing surfaces realized through them.
//
// An owning factory (New) creates its own devices, watches the rendering
// device for loss, and recreates it in place when loss strikes. A borrowing
// factory (NewFromDevice) wraps devices owned elsewhere and only relays
// device-replaced notifications.
//
// All device and surface mutation is serialized by the factory's drawing
// Lock. Methods are safe for concurrent use.
type Factory struct {
	*factoryState
}

// factoryState carries everything a Factory owns. It is a separate
// allocation from Factory so the device-loss watcher goroutine and the
// compositing device's replaced-notification reference the state, never the
// Factory itself: an abandoned Factory then becomes unreachable and its
// finalizer still runs, releasing the state.
type factoryState struct {
	graphics backend.Graphics
	target   backend.CompositionTarget

	drawingLock     *Lock
	isDeviceCreator bool
	watcher         *DeviceLostWatcher

	// renderingDevice and compositingDevice are written only under
	// drawingLock (construction aside).
	renderingDevice   backend.RenderingDevice
	compositingDevice backend.CompositingDevice
	replacedSub       Subscription

	handlerMu sync.Mutex
	handlers  map[int]func(DeviceReplacedEvent)
	nextID    int

	closed atomic.Bool
}

// New creates an owning factory: it creates a rendering device per opts,
// binds a compositing device to target, and begins watching for device
// loss.
//
// Callers should call Uninitialize when done; a finalizer releases owned
// resources as a safety net if they do not.
func New(target backend.CompositionTarget, opts Options) (*Factory, error) {
	var (
		g   backend.Graphics
		err error
	)
	if opts.Backend != "" {
		g, err = backend.ByName(opts.Backend)
	} else {
		g, err = backend.Default()
	}
	if err != nil {
		return nil, err
	}

	st := &factoryState{
		graphics:        g,
		target:          target,
		drawingLock:     NewLock(),
		isDeviceCreator: true,
		handlers:        make(map[int]func(DeviceReplacedEvent)),
	}
	st.watcher = NewDeviceLostWatcher(st.onDeviceLost)

	if err := st.createDevice(opts.UseSoftwareRenderer); err != nil {
		st.watcher.StopWatching()
		return nil, err
	}

	f := &Factory{factoryState: st}
	runtime.SetFinalizer(f, (*Factory).Uninitialize)
	return f, nil
}

// NewFromDevice creates a borrowing factory over an externally owned
// compositing device. The factory registers for device-replaced
// notifications but does not watch for device loss; recovery is the
// device owner's responsibility.
//
// lock may be nil, in which case the factory gets its own Lock. Factories
// borrowing the same compositing device should pass one shared Lock so
// their draws serialize against each other.
func NewFromDevice(device backend.CompositingDevice, lock *Lock) (*Factory, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if lock == nil {
		lock = NewLock()
	}

	st := &factoryState{
		drawingLock:       lock,
		compositingDevice: device,
		handlers:          make(map[int]func(DeviceReplacedEvent)),
	}
	st.replacedSub = device.OnRenderingDeviceReplaced(st.onRenderingDeviceReplaced)

	f := &Factory{factoryState: st}
	runtime.SetFinalizer(f, (*Factory).Uninitialize)
	return f, nil
}

// createDevice builds the rendering and compositing devices and wires
// notifications. Owning mode only.
func (st *factoryState) createDevice(useSoftwareRenderer bool) error {
	dev, err := st.graphics.NewRenderingDevice(useSoftwareRenderer)
	if err != nil {
		return fmt.Errorf("surfacefactory: create rendering device: %w", err)
	}
	comp, err := st.graphics.NewCompositingDevice(st.target, dev)
	if err != nil {
		_ = dev.Release()
		return fmt.Errorf("surfacefactory: create compositing device: %w", err)
	}

	st.renderingDevice = dev
	st.compositingDevice = comp
	st.watcher.Watch(dev)
	st.replacedSub = comp.OnRenderingDeviceReplaced(st.onRenderingDeviceReplaced)
	return nil
}

// onDeviceLost recreates the rendering device after loss, preserving the
// software-renderer flag of the device it replaces. The whole swap runs
// without releasing the drawing lock, so no draw observes a half-replaced
// device. Surfaces stay valid: they are anchored to the compositing device,
// not the lost rendering device.
func (st *factoryState) onDeviceLost(e DeviceLostEvent) {
	if st.closed.Load() {
		return
	}
	session := st.drawingLock.Acquire()
	defer session.Release()
	if st.closed.Load() {
		return
	}

	softwareRenderer := e.Device.IsSoftware()
	newDev, err := st.graphics.NewRenderingDevice(softwareRenderer)
	if err != nil {
		Logger().Warn("surfacefactory: device recreation failed", "error", err)
		return
	}

	old := st.renderingDevice
	st.renderingDevice = newDev
	st.watcher.Watch(newDev)
	if err := st.compositingDevice.SetRenderingDevice(newDev); err != nil {
		Logger().Warn("surfacefactory: rebind compositing device failed", "error", err)
	}
	if old != nil {
		if err := old.Release(); err != nil {
			Logger().Warn("surfacefactory: release lost device failed", "error", err)
		}
	}
}

// onRenderingDeviceReplaced re-raises the backend's device-replaced
// notification to this factory's subscribers. Delivery is posted to a fresh
// goroutine so listeners never run inside the backend's callback.
func (st *factoryState) onRenderingDeviceReplaced(e backend.DeviceReplacedEvent) {
	if st.closed.Load() {
		return
	}
	Logger().Info("surfacefactory: rendering device replaced")

	st.handlerMu.Lock()
	hs := make([]func(DeviceReplacedEvent), 0, len(st.handlers))
	for _, h := range st.handlers {
		hs = append(hs, h)
	}
	st.handlerMu.Unlock()

	go func() {
		for _, h := range hs {
			h(e)
		}
	}()
}

// OnDeviceReplaced registers fn for device-replaced notifications raised by
// this factory. fn runs on a dispatch goroutine, never inside backend
// callbacks. Cancel the returned subscription to stop delivery.
func (f *Factory) OnDeviceReplaced(fn func(DeviceReplacedEvent)) Subscription {
	st := f.factoryState
	st.handlerMu.Lock()
	defer st.handlerMu.Unlock()
	id := st.nextID
	st.nextID++
	if st.handlers != nil {
		st.handlers[id] = fn
	}
	return &factorySubscription{st: st, id: id}
}

type factorySubscription struct {
	st   *factoryState
	id   int
	once sync.Once
}

// Cancel removes the registration. Idempotent.
func (s *factorySubscription) Cancel() {
	s.once.Do(func() {
		s.st.handlerMu.Lock()
		defer s.st.handlerMu.Unlock()
		if s.st.handlers != nil {
			delete(s.st.handlers, s.id)
		}
	})
}

// CompositingDevice returns the factory's compositing device, or nil after
// Uninitialize. Useful for creating borrowing factories against it.
func (f *Factory) CompositingDevice() backend.CompositingDevice {
	session := f.drawingLock.Acquire()
	defer session.Release()
	return f.compositingDevice
}

// DrawingLock returns the factory's drawing lock, for sharing with other
// factories that borrow the same compositing device.
func (f *Factory) DrawingLock() *Lock { return f.drawingLock }

// IsDeviceCreator reports whether this factory owns its devices.
func (f *Factory) IsDeviceCreator() bool { return f.isDeviceCreator }

// Uninitialize releases everything the factory owns: it cancels the
// device-replaced registration, and in owning mode stops the device-loss
// watcher and releases the rendering and compositing devices. Borrowed
// devices are left untouched.
//
// Uninitialize is idempotent; a second call is a no-op. It runs
// automatically when an unreferenced factory is collected.
func (f *Factory) Uninitialize() {
	runtime.SetFinalizer(f, nil)
	f.factoryState.uninitialize()
}

func (st *factoryState) uninitialize() {
	if !st.closed.CompareAndSwap(false, true) {
		return
	}

	session := st.drawingLock.Acquire()
	defer session.Release()

	if st.replacedSub != nil {
		st.replacedSub.Cancel()
		st.replacedSub = nil
	}
	if st.isDeviceCreator {
		if st.watcher != nil {
			st.watcher.StopWatching()
			st.watcher = nil
		}
		if st.renderingDevice != nil {
			if err := st.renderingDevice.Release(); err != nil {
				Logger().Warn("surfacefactory: release rendering device failed", "error", err)
			}
		}
		if st.compositingDevice != nil {
			if err := st.compositingDevice.Release(); err != nil {
				Logger().Warn("surfacefactory: release compositing device failed", "error", err)
			}
		}
	}
	st.renderingDevice = nil
	st.compositingDevice = nil

	st.handlerMu.Lock()
	st.handlers = nil
	st.handlerMu.Unlock()
}

// textRenderer resolves the text-rendering capability from the graphics
// backend, the compositing device, or the rendering device, in that order.
func (f *Factory) textRenderer() backend.TextRenderer {
	if tr, ok := f.graphics.(backend.TextRenderer); ok {
		return tr
	}
	session := f.drawingLock.Acquire()
	comp := f.compositingDevice
	session.Release()
	if comp == nil {
		return nil
	}
	if tr, ok := comp.(backend.TextRenderer); ok {
		return tr
	}
	if tr, ok := comp.RenderingDevice().(backend.TextRenderer); ok {
		return tr
	}
	return nil
}
