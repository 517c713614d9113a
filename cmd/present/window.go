// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	errs "cogentcore.org/core/base/errors"
	"cogentcore.org/present"
	"cogentcore.org/present/simpresent"
	"cogentcore.org/present/vkpresent"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Window opens a window and renders frames to it with Vulkan, clearing
// each frame to a color.
func Window(c *Config) error {
	setLogLevel()
	if err := vkpresent.Init(); err != nil {
		return err
	}
	defer vkpresent.Terminate()

	win, err := vkpresent.OpenWindow("present", c.extent())
	if err != nil {
		return err
	}
	defer win.Destroy()

	gp, err := vkpresent.NewGPU("present", win.InstanceExtensions())
	if err != nil {
		return err
	}
	defer gp.Destroy()
	fmt.Println("gpu:", gp.DeviceName())

	p, err := win.NewPlatform(gp)
	if err != nil {
		return err
	}
	if c.Capture != "" {
		pr, err := simpresent.Capture(gp.DeviceName(), p)
		if err != nil {
			p.DestroySurface()
			return err
		}
		if err := pr.Save(c.Capture); err != nil {
			p.DestroySurface()
			return err
		}
		fmt.Println("saved profile:", c.Capture)
	}

	e := present.NewEngine(c.options())
	st := &stats{}
	e.OnRebuild(func(cfg present.Configuration, views []present.ImageView) error {
		st.rebuilds++
		slog.Info("rebuild", "extent", cfg.Extent, "images", len(views), "mode", cfg.PresentMode)
		return nil
	})
	cfg, err := e.Initialize(p, win.Extent(), c.VSync)
	if err != nil {
		p.DestroySurface()
		return err
	}
	printConfig(gp.DeviceName(), &cfg)
	if !cfg.TransferDst {
		errs.Log(e.Teardown())
		return errors.New("surface images cannot be cleared: transfer destination usage is not supported")
	}

	cr, err := vkpresent.NewClearRenderer(p, e.FramesInFlight())
	if err != nil {
		errs.Log(e.Teardown())
		return err
	}

	resized := false
	win.OnResize(func(ex present.Extent) { resized = true })

	submitted := false
	submit := func(f *present.Frame) error {
		submitted = true
		return cr.Submit(f)
	}
	st.startTime = time.Now()
	for !win.ShouldClose() && (c.Frames <= 0 || st.frames < c.Frames) {
		win.PollEvents()
		if resized {
			resized = false
			if _, err = e.Recreate(win.Extent()); err != nil && !errors.Is(err, present.ErrZeroExtent) {
				break
			}
		}
		submitted = false
		err = e.RenderFrame(submit)
		if errors.Is(err, present.ErrZeroExtent) {
			// minimized
			st.zero++
			win.WaitEvents()
			err = nil
			continue
		}
		if err != nil {
			break
		}
		if submitted {
			st.frames++
		}
	}
	errs.Log(p.WaitIdle())
	cr.Destroy()
	if terr := e.Teardown(); err == nil {
		err = terr
	}
	fmt.Println(st)
	return err
}
