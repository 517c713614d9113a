// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package present negotiates a presentable surface with a GPU device,
// owns the chain of swap images presented to it, and drives the
// acquire, render, present frame cycle with explicit synchronization.
//
// The [Engine] is the entry point. It is constructed once per surface
// and drives a [Platform], which is the only place that talks to the
// graphics API. The vkpresent package provides a Vulkan Platform and
// simpresent provides a deterministic simulated one for testing.
//
// A typical frame loop looks like:
//
//	eng := present.NewEngine(nil)
//	cfg, err := eng.Initialize(platform, present.Extent{Width: 1280, Height: 720}, true)
//	...
//	for running {
//		err := eng.RenderFrame(func(f *present.Frame) error {
//			// record and submit work that waits on f.Acquire and
//			// signals f.RenderComplete and f.Fence
//		})
//		...
//	}
//	eng.Teardown()
package present
