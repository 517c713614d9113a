// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	errs "cogentcore.org/core/base/errors"
)

// RebuildFunc is called after the swap images are built or rebuilt,
// with the new configuration and image views. Anything sized to the
// surface, such as framebuffers, must be rebuilt in it.
type RebuildFunc func(cfg Configuration, views []ImageView) error

// SubmitFunc records and submits the rendering work for one frame.
// The work must wait on f.Acquire before writing the image, and
// signal f.RenderComplete and f.Fence when done.
type SubmitFunc func(f *Frame) error

// Engine drives the presentation of frames to one surface. It owns
// the swap images and frame slots and is driven from one goroutine;
// it does no locking of its own.
type Engine struct {

	// Options are the buffering options. They are read by
	// Initialize and Recreate.
	Options Options

	platform Platform
	state    States
	request  Request
	neg      Negotiation
	images   SwapImages
	frames   Frames

	// image is the acquired image index, or -1.
	image int

	rebuilds []RebuildFunc
}

// NewEngine returns a new engine with the given options, or the
// default options if opts is nil.
func NewEngine(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Engine{Options: *opts, image: -1}
}

// State returns the current state.
func (e *Engine) State() States { return e.state }

// Platform returns the platform passed to Initialize.
func (e *Engine) Platform() Platform { return e.platform }

// Configuration returns the current configuration.
func (e *Engine) Configuration() Configuration { return e.neg.Configuration }

// Capabilities returns the capabilities from the last negotiation.
func (e *Engine) Capabilities() Capabilities { return e.neg.Capabilities }

// QueueFamily returns the queue family used for graphics and present.
func (e *Engine) QueueFamily() QueueFamily { return e.neg.QueueFamily }

// ImageCount returns the number of swap images.
func (e *Engine) ImageCount() int { return e.images.Len() }

// Format returns the format of the swap images.
func (e *Engine) Format() Formats { return e.neg.Configuration.Format }

// Extent returns the size of the swap images.
func (e *Engine) Extent() Extent { return e.neg.Configuration.Extent }

// Views returns the views of the swap images, in chain order.
func (e *Engine) Views() []ImageView { return e.images.Views() }

// Slot returns the index of the current frame slot.
func (e *Engine) Slot() int { return e.frames.Current }

// FramesInFlight returns the number of frame slots.
func (e *Engine) FramesInFlight() int { return e.frames.Len() }

// OnRebuild adds a function that is called after every Initialize and
// Recreate.
func (e *Engine) OnRebuild(fn RebuildFunc) {
	e.rebuilds = append(e.rebuilds, fn)
}

// Initialize negotiates a configuration with the platform and builds
// the swap images and frame slots. It returns the configuration,
// whose extent and format the caller must use. On success the engine
// owns the surface of the platform and destroys it in Teardown.
func (e *Engine) Initialize(p Platform, desired Extent, vsync bool) (Configuration, error) {
	if e.state != Uninitialized && e.state != TornDown {
		return Configuration{}, stateErr("initialize", e.state)
	}
	if p == nil {
		return Configuration{}, errors.New("present: initialize: nil platform")
	}
	e.request = Request{Extent: desired, VSync: vsync, DesiredImages: e.Options.DesiredImages}
	neg, err := Negotiate(p, e.request)
	if err != nil {
		return Configuration{}, err
	}
	if neg.Configuration.Extent.HasZeroArea() {
		return Configuration{}, fmt.Errorf("present: initialize: %w", ErrZeroExtent)
	}
	var imgs SwapImages
	if err := imgs.Build(p, &neg.Configuration, neg.QueueFamily.Index); err != nil {
		return Configuration{}, err
	}
	var frs Frames
	if err := frs.Build(p, e.Options.framesInFlight()); err != nil {
		imgs.Release(p)
		return Configuration{}, err
	}
	e.platform = p
	e.neg = *neg
	e.images = imgs
	e.frames = frs
	e.image = -1
	e.state = Ready
	slog.Info("present: initialized", "extent", neg.Configuration.Extent, "format", neg.Configuration.Format,
		"mode", neg.Configuration.PresentMode, "images", e.images.Len(), "frames", e.frames.Len(),
		"family", neg.QueueFamily.Index)
	return e.neg.Configuration, e.notifyRebuild()
}

// AcquireNext waits until the current frame slot is free and acquires
// the next swap image, returning its index. If the chain no longer
// matches the surface, it returns stale and the caller must call
// [Engine.Recreate] before trying again. Any error is fatal.
func (e *Engine) AcquireNext() (idx int, stale bool, err error) {
	if e.state != Ready {
		return -1, false, stateErr("acquire", e.state)
	}
	slot := e.frames.Current
	if e.frames.IsDirty(slot) || e.images.retired {
		return -1, true, nil
	}
	if err := e.frames.Wait(e.platform, e.Options.FenceTimeout); err != nil {
		return -1, false, fmt.Errorf("present: wait for frame slot %d: %w", slot, err)
	}
	idx, st, err := e.platform.AcquireNextImage(e.images.Chain, e.Options.AcquireTimeout, e.frames.AcquireSemaphore(slot))
	if err != nil {
		return -1, false, fmt.Errorf("present: acquire next image: %w", err)
	}
	switch st {
	case Success:
	case Suboptimal:
		// the image was acquired and the semaphore will be signaled,
		// but nothing will wait on it
		e.frames.MarkDirty(slot)
		slog.Debug("present: acquire suboptimal", "slot", slot)
		return -1, true, nil
	case OutOfDate:
		slog.Debug("present: acquire out of date", "slot", slot)
		return -1, true, nil
	default:
		return -1, false, fmt.Errorf("present: acquire next image: %w (%s)", ErrTimeout, st)
	}
	if idx < 0 || idx >= e.images.Len() {
		return -1, false, fmt.Errorf("present: acquire next image: index %d out of range [0, %d)", idx, e.images.Len())
	}
	if err := e.frames.Reset(e.platform); err != nil {
		e.frames.MarkDirty(slot)
		return -1, false, fmt.Errorf("present: reset fence of frame slot %d: %w", slot, err)
	}
	e.image = idx
	e.state = AcquirePending
	return idx, false, nil
}

// Frame returns the state of the acquired frame for the renderer, or
// nil if no image is acquired.
func (e *Engine) Frame() *Frame {
	if e.state != AcquirePending {
		return nil
	}
	slot := e.frames.Current
	return &Frame{
		Image:          e.image,
		Slot:           slot,
		Acquire:        e.frames.AcquireSemaphore(slot),
		RenderComplete: e.frames.RenderCompleteSemaphore(slot),
		Fence:          e.frames.Fence(slot),
		Target:         e.images.Images[e.image].Image,
		View:           e.images.Images[e.image].View,
		Extent:         e.neg.Configuration.Extent,
	}
}

// Present queues the acquired image for presentation after wait is
// signaled, and moves on to the next frame slot. If the chain no
// longer matches the surface it returns stale, and the caller must
// call [Engine.Recreate]. Any error is fatal.
func (e *Engine) Present(idx int, wait Semaphore) (stale bool, err error) {
	if e.state != AcquirePending {
		return false, stateErr("present", e.state)
	}
	if idx != e.image {
		return false, fmt.Errorf("%w: present of image %d but image %d is acquired", ErrInvalidState, idx, e.image)
	}
	e.state = Presenting
	st, err := e.platform.Present(e.neg.QueueFamily.Index, e.images.Chain, idx, wait)
	e.frames.Advance()
	e.image = -1
	e.state = Ready
	if err != nil {
		return false, fmt.Errorf("present: present image %d: %w", idx, err)
	}
	if st.IsStale() {
		slog.Debug("present: present stale", "status", st, "image", idx)
		return true, nil
	}
	return false, nil
}

// Recreate rebuilds the swap images for a new surface size after
// waiting for the device to be idle. The rebuild functions are called
// with the new configuration. If the surface has zero area, it returns
// an error wrapping [ErrZeroExtent] and leaves the chain as it is; the
// caller should call Recreate again once the surface has a size. An
// acquired image that was not presented is dropped.
func (e *Engine) Recreate(newExtent Extent) (Configuration, error) {
	switch e.state {
	case Ready, AcquirePending, Presenting:
	default:
		return Configuration{}, stateErr("recreate", e.state)
	}
	if e.state != Ready {
		e.frames.MarkDirty(e.frames.Current)
		e.image = -1
		e.state = Ready
	}
	if err := e.platform.WaitIdle(); err != nil {
		return Configuration{}, fmt.Errorf("present: recreate: wait idle: %w", err)
	}
	if err := e.frames.Refresh(e.platform); err != nil {
		return Configuration{}, err
	}
	e.request.Extent = newExtent
	neg, err := Negotiate(e.platform, e.request)
	if err != nil {
		return Configuration{}, err
	}
	if neg.QueueFamily.Index != e.neg.QueueFamily.Index {
		return Configuration{}, configErr("recreate", fmt.Errorf("queue family changed from %d to %d", e.neg.QueueFamily.Index, neg.QueueFamily.Index))
	}
	if neg.Configuration.Extent.HasZeroArea() {
		return Configuration{}, fmt.Errorf("present: recreate: %w", ErrZeroExtent)
	}
	if err := e.images.Build(e.platform, &neg.Configuration, neg.QueueFamily.Index); err != nil {
		return Configuration{}, err
	}
	e.neg = *neg
	slog.Info("present: recreated", "extent", neg.Configuration.Extent, "format", neg.Configuration.Format,
		"mode", neg.Configuration.PresentMode, "images", e.images.Len())
	return e.neg.Configuration, e.notifyRebuild()
}

// RenderFrame runs one full frame: it acquires an image, calls submit
// and presents the image. A stale chain on either side is recreated
// at the last requested extent, and that frame is dropped. It returns
// an error wrapping [ErrZeroExtent] while the surface has zero area.
func (e *Engine) RenderFrame(submit SubmitFunc) error {
	idx, stale, err := e.AcquireNext()
	if err != nil {
		return err
	}
	if stale {
		_, err := e.Recreate(e.request.Extent)
		return err
	}
	f := e.Frame()
	if err := submit(f); err != nil {
		return fmt.Errorf("present: submit frame: %w", err)
	}
	stale, err = e.Present(idx, f.RenderComplete)
	if err != nil {
		return err
	}
	if stale {
		_, err := e.Recreate(e.request.Extent)
		return err
	}
	return nil
}

// Teardown waits for the device to be idle and destroys the frame
// slots, the image views, the chain and the surface, in that order.
// It is a no-op unless the engine is initialized. A failure to wait
// idle is returned after everything is destroyed.
func (e *Engine) Teardown() error {
	if e.state == Uninitialized || e.state == TornDown {
		return nil
	}
	err := e.platform.WaitIdle()
	if err != nil {
		err = fmt.Errorf("present: teardown: wait idle: %w", err)
		errs.Log(err)
	}
	e.frames.Release(e.platform)
	e.images.Release(e.platform)
	e.platform.DestroySurface()
	e.platform = nil
	e.image = -1
	e.state = TornDown
	slog.Info("present: torn down")
	return err
}

func (e *Engine) notifyRebuild() error {
	if len(e.rebuilds) == 0 {
		return nil
	}
	cfg := e.neg.Configuration
	views := e.images.Views()
	var all []error
	for _, fn := range e.rebuilds {
		if err := fn(cfg, slices.Clone(views)); err != nil {
			all = append(all, err)
		}
	}
	if len(all) > 0 {
		return fmt.Errorf("present: rebuild: %w", errors.Join(all...))
	}
	return nil
}
