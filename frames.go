// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"time"
)

// FrameSlot is the set of synchronization objects used by one frame
// in flight.
type FrameSlot struct {

	// Acquire is signaled by the platform when the acquired image is
	// available.
	Acquire Semaphore

	// RenderComplete is signaled by the renderer and waited on by present.
	RenderComplete Semaphore

	// InFlight is signaled when the GPU work of the frame completes.
	// It is created signaled so the first wait returns immediately.
	InFlight Fence

	// dirty is set when a semaphore of the slot may have been left
	// signaled with no pending wait, so the slot must be rebuilt
	// before it is used again.
	dirty bool
}

// Frames owns the frame slots and hands them out round robin.
// A slot is only reused after its fence has been waited on.
type Frames struct {
	Slots []FrameSlot

	// Current is the index of the slot in use.
	Current int
}

// Len returns the number of slots.
func (fs *Frames) Len() int {
	return len(fs.Slots)
}

// AcquireSemaphore returns the acquire semaphore of the given slot.
func (fs *Frames) AcquireSemaphore(slot int) Semaphore {
	return fs.Slots[slot].Acquire
}

// RenderCompleteSemaphore returns the render complete semaphore of the given slot.
func (fs *Frames) RenderCompleteSemaphore(slot int) Semaphore {
	return fs.Slots[slot].RenderComplete
}

// Fence returns the in flight fence of the given slot.
func (fs *Frames) Fence(slot int) Fence {
	return fs.Slots[slot].InFlight
}

// Build creates n slots, releasing any existing ones first.
// On failure everything created so far is released.
func (fs *Frames) Build(p Platform, n int) error {
	fs.Release(p)
	fs.Slots = make([]FrameSlot, 0, n)
	for i := range n {
		sl, err := newSlot(p)
		if err != nil {
			fs.Release(p)
			return configErr(fmt.Sprintf("create frame slot %d", i), err)
		}
		fs.Slots = append(fs.Slots, sl)
	}
	fs.Current = 0
	return nil
}

// Release destroys all slots in reverse creation order.
func (fs *Frames) Release(p Platform) {
	for i := len(fs.Slots) - 1; i >= 0; i-- {
		freeSlot(p, &fs.Slots[i])
	}
	fs.Slots = nil
	fs.Current = 0
}

// Wait blocks until the fence of the current slot is signaled.
func (fs *Frames) Wait(p Platform, timeout time.Duration) error {
	return p.WaitFence(fs.Slots[fs.Current].InFlight, timeout)
}

// Reset resets the fence of the current slot, before new work that
// signals it is submitted.
func (fs *Frames) Reset(p Platform) error {
	return p.ResetFence(fs.Slots[fs.Current].InFlight)
}

// Advance moves to the next slot.
func (fs *Frames) Advance() {
	fs.Current = (fs.Current + 1) % len(fs.Slots)
}

// MarkDirty records that the given slot must be rebuilt by [Frames.Refresh].
func (fs *Frames) MarkDirty(slot int) {
	fs.Slots[slot].dirty = true
}

// IsDirty returns whether the given slot needs to be rebuilt.
func (fs *Frames) IsDirty(slot int) bool {
	return fs.Slots[slot].dirty
}

// Refresh replaces the objects of all dirty slots. The device must be
// idle.
func (fs *Frames) Refresh(p Platform) error {
	for i := range fs.Slots {
		sl := &fs.Slots[i]
		if !sl.dirty {
			continue
		}
		freeSlot(p, sl)
		nsl, err := newSlot(p)
		if err != nil {
			sl.dirty = true
			return configErr(fmt.Sprintf("refresh frame slot %d", i), err)
		}
		*sl = nsl
	}
	return nil
}

func newSlot(p Platform) (FrameSlot, error) {
	var sl FrameSlot
	var err error
	if sl.Acquire, err = p.CreateSemaphore(); err != nil {
		return sl, err
	}
	if sl.RenderComplete, err = p.CreateSemaphore(); err != nil {
		freeSlot(p, &sl)
		return sl, err
	}
	if sl.InFlight, err = p.CreateFence(true); err != nil {
		freeSlot(p, &sl)
		return sl, err
	}
	return sl, nil
}

// freeSlot destroys the objects of the slot in reverse creation order.
func freeSlot(p Platform, sl *FrameSlot) {
	if sl.InFlight != 0 {
		p.DestroyFence(sl.InFlight)
	}
	if sl.RenderComplete != 0 {
		p.DestroySemaphore(sl.RenderComplete)
	}
	if sl.Acquire != 0 {
		p.DestroySemaphore(sl.Acquire)
	}
	*sl = FrameSlot{}
}
