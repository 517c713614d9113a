// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package vkpresent

import (
	"errors"

	"cogentcore.org/present"
	vk "github.com/goki/vulkan"
)

// ErrNoWindow is returned when windows are not available on this platform.
var ErrNoWindow = errors.New("vkpresent: windows are not available on this platform")

// Init loads Vulkan from the system loader.
func Init() error {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return err
	}
	return vk.Init()
}

func Terminate() {}

// Window is not available on this platform; the surface comes from
// the host application.
type Window struct{}

func OpenWindow(title string, size present.Extent) (*Window, error) {
	return nil, ErrNoWindow
}

func (w *Window) InstanceExtensions() []string { return nil }

func (w *Window) NewPlatform(gp *GPU) (*Platform, error) { return nil, ErrNoWindow }

func (w *Window) Extent() present.Extent { return present.Extent{} }

func (w *Window) OnResize(fun func(ex present.Extent)) {}

func (w *Window) ShouldClose() bool { return true }

func (w *Window) PollEvents() {}

func (w *Window) WaitEvents() {}

func (w *Window) Destroy() {}
