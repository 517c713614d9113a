// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package vkpresent

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/present"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// Other platforms provide their own surface and use NewPlatform.

// Init initializes glfw and loads Vulkan through it.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	err := glfw.Init()
	if err != nil {
		return errors.Log(err)
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	return errors.Log(vk.Init())
}

// Terminate shuts down glfw. Call as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// Window is a desktop window without a client API, for Vulkan rendering.
type Window struct {
	Window *glfw.Window
}

// OpenWindow opens a resizable window with the given title and size.
func OpenWindow(title string, size present.Extent) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(int(size.Width), int(size.Height), title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Window{Window: win}, nil
}

// InstanceExtensions returns the instance extensions needed to make a
// surface for the window.
func (w *Window) InstanceExtensions() []string {
	return w.Window.GetRequiredInstanceExtensions()
}

// NewPlatform creates a surface for the window and a platform for it.
func (w *Window) NewPlatform(gp *GPU) (*Platform, error) {
	ptr, err := w.Window.CreateWindowSurface(gp.Instance, nil)
	if err != nil {
		return nil, err
	}
	surface := vk.SurfaceFromPointer(ptr)
	p, err := NewPlatform(gp, surface)
	if err != nil {
		vk.DestroySurface(gp.Instance, surface, nil)
		return nil, err
	}
	return p, nil
}

// Extent returns the framebuffer size in pixels, which is zero when
// the window is minimized.
func (w *Window) Extent() present.Extent {
	wd, ht := w.Window.GetFramebufferSize()
	return present.Extent{Width: uint32(max(wd, 0)), Height: uint32(max(ht, 0))}
}

// OnResize calls fun with the new framebuffer size when it changes.
func (w *Window) OnResize(fun func(ex present.Extent)) {
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, wd, ht int) {
		fun(present.Extent{Width: uint32(max(wd, 0)), Height: uint32(max(ht, 0))})
	})
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// WaitEvents blocks until a window event arrives.
func (w *Window) WaitEvents() {
	glfw.WaitEvents()
}

func (w *Window) Destroy() {
	w.Window.Destroy()
}
