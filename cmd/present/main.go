// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command present drives the presentation engine against simulated
// profiles or a real window, and reports the negotiated configuration.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	errs "cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/present"
	"cogentcore.org/present/simpresent"
)

// Config is the configuration for the present command.
type Config struct {

	// Profile is the name of a builtin simulated profile, or a TOML or
	// YAML profile file.
	Profile string `default:"desktop" posarg:"0" required:"-"`

	// Frames is the number of frames to render; 0 renders until
	// interrupted or the window is closed.
	Frames int `default:"120"`

	// Width is the requested surface width, used when the surface
	// leaves the size to the application.
	Width int `default:"1280"`

	// Height is the requested surface height.
	Height int `default:"720"`

	// VSync requests a present mode that waits for vertical blank.
	VSync bool `default:"true"`

	// FramesInFlight is the number of frames that can be in flight at once.
	FramesInFlight int `default:"2" min:"1"`

	// Images is the desired number of swap images; 0 uses the minimum
	// the surface needs plus one.
	Images int

	// FPS paces the simulated frames; 0 renders as fast as possible.
	FPS int `cmd:"sim"`

	// Watch reloads the profile file whenever it changes.
	Watch bool `cmd:"sim"`

	// Capture saves the capabilities of the window surface as a
	// profile to the given TOML or YAML file.
	Capture string `cmd:"window"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("present", "Present drives the presentation engine against simulated profiles or a real window.")
	cli.Run(opts, &Config{}, Sim, Caps, Window, Profiles)
}

func (c *Config) extent() present.Extent {
	return present.Extent{Width: uint32(max(c.Width, 0)), Height: uint32(max(c.Height, 0))}
}

func (c *Config) options() *present.Options {
	opts := present.DefaultOptions()
	opts.FramesInFlight = c.FramesInFlight
	opts.DesiredImages = c.Images
	return opts
}

// setLogLevel makes the default logger follow the verbosity flags.
func setLogLevel() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))
}

// stats counts what happened while rendering.
type stats struct {
	frames    int
	rebuilds  int
	zero      int
	startTime time.Time
}

func (st *stats) String() string {
	el := time.Since(st.startTime)
	fps := 0.0
	if el > 0 {
		fps = float64(st.frames) / el.Seconds()
	}
	return fmt.Sprintf("frames: %d  rebuilds: %d  zero-size: %d  elapsed: %v  fps: %.1f", st.frames, st.rebuilds, st.zero, el.Round(time.Millisecond), fps)
}

// Sim renders frames on a simulated platform and reports any broken
// synchronization rules.
func Sim(c *Config) error { //cli:cmd -root
	setLogLevel()
	pr, err := simpresent.Load(c.Profile)
	if err != nil {
		return err
	}
	p := simpresent.New(pr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if c.Watch {
		if err := p.Watch(ctx, c.Profile, func(pr *simpresent.Profile) {
			fmt.Println("profile reloaded:", pr.Name)
		}); err != nil {
			return err
		}
	}

	st, err := simulate(ctx, c, p, pr.Name)
	if err != nil {
		return err
	}
	fmt.Println(st)
	viol := p.Violations()
	for _, v := range viol {
		fmt.Println("violation:", v)
	}
	if len(viol) > 0 {
		return fmt.Errorf("%d synchronization violations", len(viol))
	}
	return nil
}

// simulate renders c.Frames presented frames on the platform, or until
// the context is done when c.Frames is 0, and tears down the engine.
// Frames dropped as stale or skipped for a zero-size surface are not
// counted.
func simulate(ctx context.Context, c *Config, p *simpresent.Platform, name string) (*stats, error) {
	e := present.NewEngine(c.options())
	st := &stats{startTime: time.Now()}
	e.OnRebuild(func(cfg present.Configuration, views []present.ImageView) error {
		st.rebuilds++
		slog.Info("rebuild", "extent", cfg.Extent, "images", len(views), "mode", cfg.PresentMode)
		return nil
	})
	cfg, err := e.Initialize(p, c.extent(), c.VSync)
	if err != nil {
		return nil, err
	}
	printConfig(name, &cfg)

	var tick <-chan time.Time
	if c.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(c.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}
	submitted := false
	submit := func(f *present.Frame) error {
		submitted = true
		return p.Submit(f)
	}
	for c.Frames <= 0 || st.frames < c.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if ctx.Err() != nil {
			break
		}
		submitted = false
		err := e.RenderFrame(submit)
		switch {
		case errors.Is(err, present.ErrZeroExtent):
			st.zero++
			continue
		case err != nil:
			errs.Log(e.Teardown())
			return st, err
		}
		if submitted {
			st.frames++
		}
	}
	return st, e.Teardown()
}

// Caps prints the capabilities of a simulated profile and the
// configuration negotiated for it.
func Caps(c *Config) error {
	setLogLevel()
	pr, err := simpresent.Load(c.Profile)
	if err != nil {
		return err
	}
	neg, err := present.Negotiate(simpresent.New(pr), present.Request{Extent: c.extent(), VSync: c.VSync, DesiredImages: c.Images})
	if err != nil {
		return err
	}
	printCaps(&neg.Capabilities)
	fmt.Println("queue family:", neg.QueueFamily.Index)
	printConfig(pr.Name, &neg.Configuration)
	return nil
}

// Profiles lists the builtin simulated profiles.
func Profiles(c *Config) error {
	for _, name := range simpresent.Builtins() {
		fmt.Println(name)
	}
	return nil
}

func printCaps(caps *present.Capabilities) {
	fmt.Println("formats:")
	for _, f := range caps.Formats {
		fmt.Println("  ", f)
	}
	fmt.Println("present modes:", caps.PresentModes)
	fmt.Printf("image count: %d..%d\n", caps.MinImageCount, caps.MaxImageCount)
	fmt.Printf("extent: %s (%s..%s)\n", caps.CurrentExtent, caps.MinExtent, caps.MaxExtent)
	fmt.Println("transforms:", caps.SupportedTransforms, "current:", caps.CurrentTransform)
	fmt.Println("composite alpha:", caps.CompositeAlphas)
}

func printConfig(name string, cfg *present.Configuration) {
	fmt.Printf("%s: %s %s, %s, %d images, %s, transform %s, alpha %s\n", name,
		cfg.Format, cfg.ColorSpace, cfg.PresentMode, cfg.ImageCount, cfg.Extent, cfg.PreTransform, cfg.CompositeAlpha)
}
