// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import "time"

// Platform is a device and surface pair as seen by the engine. It is
// the only point of contact with the graphics API, and its blocking
// methods (WaitFence, AcquireNextImage and WaitIdle) are the only
// places the engine suspends.
//
// Errors returned by a Platform should wrap [ErrDeviceLost],
// [ErrSurfaceLost] or [ErrOutOfMemory] where they apply.
type Platform interface {

	// QueueFamilies returns the queue families of the device, with
	// presentation support tested against the surface.
	QueueFamilies() ([]QueueFamily, error)

	// SurfaceFormats returns the supported surface formats in order.
	SurfaceFormats() ([]SurfaceFormat, error)

	// PresentModes returns the supported present modes.
	PresentModes() ([]PresentModes, error)

	// SurfaceCapabilities returns the image count, extent, transform
	// and usage capabilities of the surface. Formats and PresentModes
	// are not filled in.
	SurfaceCapabilities() (Capabilities, error)

	// CreateChain creates a swap image chain. old is the chain being
	// replaced, or 0. The old chain stays valid until DestroyChain.
	CreateChain(cfg *Configuration, family int, old Chain) (Chain, error)

	// ChainImages returns the images of the chain. The count may
	// differ from the requested image count.
	ChainImages(ch Chain) ([]Image, error)

	DestroyChain(ch Chain)

	// CreateImageView creates a 2D color view with one mip level and
	// one layer.
	CreateImageView(img Image, format Formats) (ImageView, error)

	DestroyImageView(v ImageView)

	CreateSemaphore() (Semaphore, error)
	DestroySemaphore(s Semaphore)

	// CreateFence creates a fence, signaled or not.
	CreateFence(signaled bool) (Fence, error)
	DestroyFence(f Fence)

	// WaitFence blocks until the fence is signaled. A timeout of zero
	// or less waits indefinitely. It returns [ErrTimeout] if the
	// timeout expires.
	WaitFence(f Fence, timeout time.Duration) error

	// ResetFence sets the fence to unsignaled.
	ResetFence(f Fence) error

	// AcquireNextImage blocks until an image of the chain is available
	// and arranges for sem to be signaled when it can be used. A
	// timeout of zero or less waits indefinitely. Stale chains are
	// reported through the status, not the error.
	AcquireNextImage(ch Chain, timeout time.Duration, sem Semaphore) (int, Statuses, error)

	// Present queues image idx of the chain for presentation on the
	// given queue family after wait is signaled.
	Present(family int, ch Chain, idx int, wait Semaphore) (Statuses, error)

	// WaitIdle blocks until all work on the device is complete.
	WaitIdle() error

	// DestroySurface releases the surface. No other method may be
	// called afterwards.
	DestroySurface()
}
