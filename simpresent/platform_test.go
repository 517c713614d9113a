// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simpresent

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/present"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desktop(t *testing.T) *Platform {
	pr, err := Builtin("desktop")
	require.NoError(t, err)
	return New(pr)
}

func desktopConfig() *present.Configuration {
	return &present.Configuration{
		Format:         present.B8G8R8A8Srgb,
		ColorSpace:     present.SrgbNonlinear,
		PresentMode:    present.Fifo,
		ImageCount:     2,
		Extent:         present.Extent{Width: 1280, Height: 720},
		PreTransform:   present.Identity,
		CompositeAlpha: present.Opaque,
		TransferDst:    true,
	}
}

func TestCreateChainChecks(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, p.Violations())

	imgs, err := p.ChainImages(ch)
	require.NoError(t, err)
	assert.Len(t, imgs, 2)

	cfg := desktopConfig()
	cfg.ImageCount = 9
	cfg.PresentMode = present.PresentModes(7)
	cfg.Extent = present.Extent{Width: 10, Height: 10}
	_, err = p.CreateChain(cfg, 1, ch)
	require.NoError(t, err)
	assert.Len(t, p.Violations(), 4)

	p2 := desktop(t)
	_, err = p2.CreateChain(desktopConfig(), 0, present.Chain(42))
	require.NoError(t, err)
	assert.Len(t, p2.Violations(), 2, "old chain is not current and does not exist")
}

func TestDestroyOrderChecks(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	imgs, err := p.ChainImages(ch)
	require.NoError(t, err)
	v, err := p.CreateImageView(imgs[0], present.B8G8R8A8Srgb)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Live())

	p.DestroyChain(ch)
	require.Len(t, p.Violations(), 1)
	assert.Contains(t, p.Violations()[0], "destroyed before view")

	p.DestroyImageView(v)
	assert.Len(t, p.Violations(), 1)
	assert.Zero(t, p.Live())
	p.DestroySurface()
	assert.Len(t, p.Violations(), 1)
	p.DestroySurface()
	require.Len(t, p.Violations(), 2)
	assert.Contains(t, p.Violations()[1], "already destroyed")
}

func TestSurfaceWithLiveChain(t *testing.T) {
	p := desktop(t)
	_, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	p.DestroySurface()
	assert.True(t, p.SurfaceDestroyed())
	require.Len(t, p.Violations(), 1)
	assert.Contains(t, p.Violations()[0], "chains still exist")

	_, err = p.CreateSemaphore()
	assert.ErrorIs(t, err, present.ErrSurfaceLost)
}

func TestFenceChecks(t *testing.T) {
	p := desktop(t)
	f, err := p.CreateFence(false)
	require.NoError(t, err)
	err = p.WaitFence(f, time.Second)
	assert.ErrorIs(t, err, present.ErrTimeout)
	assert.Len(t, p.Violations(), 1)

	sf, err := p.CreateFence(true)
	require.NoError(t, err)
	assert.NoError(t, p.WaitFence(sf, 0))
	assert.NoError(t, p.ResetFence(sf))
	p.DestroyFence(sf)
	p.DestroyFence(sf)
	assert.Len(t, p.Violations(), 2)
}

func TestAcquireAndPresent(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	s1, _ := p.CreateSemaphore()
	s2, _ := p.CreateSemaphore()
	s3, _ := p.CreateSemaphore()

	i1, st, err := p.AcquireNextImage(ch, time.Second, s1)
	require.NoError(t, err)
	assert.Equal(t, present.Success, st)
	i2, _, err := p.AcquireNextImage(ch, time.Second, s2)
	require.NoError(t, err)
	assert.NotEqual(t, i1, i2)

	_, st, err = p.AcquireNextImage(ch, time.Second, s3)
	require.NoError(t, err)
	assert.Equal(t, present.Timeout, st, "both images are acquired")
	assert.Empty(t, p.Violations())
	_, _, err = p.AcquireNextImage(ch, 0, s3)
	require.NoError(t, err)
	assert.Len(t, p.Violations(), 1, "an unbounded wait would hang")

	st, err = p.Present(0, ch, i1, s1)
	require.NoError(t, err)
	assert.Equal(t, present.Success, st)
	_, err = p.Present(0, ch, i1, s1)
	assert.Error(t, err, "image is no longer acquired")

	p.Resize(present.Extent{Width: 800, Height: 600})
	st, err = p.Present(0, ch, i2, s2)
	require.NoError(t, err)
	assert.Equal(t, present.OutOfDate, st)
	_, st, err = p.AcquireNextImage(ch, time.Second, s1)
	require.NoError(t, err)
	assert.Equal(t, present.OutOfDate, st)
}

func TestDoubleSignal(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	s, _ := p.CreateSemaphore()
	_, _, err = p.AcquireNextImage(ch, time.Second, s)
	require.NoError(t, err)
	_, _, err = p.AcquireNextImage(ch, time.Second, s)
	require.NoError(t, err)
	require.Len(t, p.Violations(), 1)
	assert.Contains(t, p.Violations()[0], "signaled twice")
}

func TestSubmitChecks(t *testing.T) {
	p := desktop(t)
	acq, _ := p.CreateSemaphore()
	done, _ := p.CreateSemaphore()
	f, _ := p.CreateFence(true)
	err := p.Submit(&present.Frame{Acquire: acq, RenderComplete: done, Fence: f})
	require.NoError(t, err)
	assert.Len(t, p.Violations(), 2, "acquire is unsignaled and the fence was not reset")

	err = p.Submit(&present.Frame{Acquire: acq, RenderComplete: done, Fence: present.Fence(99)})
	assert.Error(t, err)
}

func TestInjections(t *testing.T) {
	p := desktop(t)
	boom := errors.New("boom")
	p.Fail("CreateSemaphore", boom)
	_, err := p.CreateSemaphore()
	assert.ErrorIs(t, err, boom)
	_, err = p.CreateSemaphore()
	assert.NoError(t, err)

	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	s, _ := p.CreateSemaphore()
	p.InjectAcquire(present.NotReady)
	_, st, err := p.AcquireNextImage(ch, time.Second, s)
	require.NoError(t, err)
	assert.Equal(t, present.NotReady, st)

	p.LoseDevice()
	_, _, err = p.AcquireNextImage(ch, time.Second, s)
	assert.ErrorIs(t, err, present.ErrDeviceLost)
	assert.ErrorIs(t, p.WaitIdle(), present.ErrDeviceLost)
	assert.Equal(t, 4, p.Count("AcquireNextImage")+p.Count("WaitIdle")+p.Count("CreateChain"))

	p.ResetCalls()
	assert.Empty(t, p.Calls())
}

func TestFailedChainRetiresOld(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	p.Fail("CreateChain", present.ErrOutOfMemory)
	_, err = p.CreateChain(desktopConfig(), 0, ch)
	assert.ErrorIs(t, err, present.ErrOutOfMemory)

	s, _ := p.CreateSemaphore()
	_, st, err := p.AcquireNextImage(ch, time.Second, s)
	require.NoError(t, err)
	assert.Equal(t, present.OutOfDate, st)

	_, err = p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
}

func TestReconfigure(t *testing.T) {
	p := desktop(t)
	ch, err := p.CreateChain(desktopConfig(), 0, 0)
	require.NoError(t, err)
	mobile, err := Builtin("mobile")
	require.NoError(t, err)
	p.Reconfigure(mobile)
	assert.Equal(t, "mobile", p.Profile().Name)

	s, _ := p.CreateSemaphore()
	_, st, err := p.AcquireNextImage(ch, time.Second, s)
	require.NoError(t, err)
	assert.Equal(t, present.OutOfDate, st)

	caps, err := p.SurfaceCapabilities()
	require.NoError(t, err)
	assert.Equal(t, present.Extent{Width: 1080, Height: 2340}, caps.CurrentExtent)
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "profile.yaml")
	pr, err := Builtin("desktop")
	require.NoError(t, err)
	require.NoError(t, pr.Save(fn))

	p := New(pr)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan *Profile, 8)
	require.NoError(t, p.Watch(ctx, fn, func(pr *Profile) { changed <- pr }))

	mobile, err := Builtin("mobile")
	require.NoError(t, err)
	require.NoError(t, mobile.Save(fn))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-changed:
			if got.Name != "mobile" {
				continue
			}
			assert.Equal(t, "mobile", p.Profile().Name)
			return
		case <-timeout:
			t.Fatal("profile change not seen")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	p := desktop(t)
	err := p.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "profile.toml"), nil)
	assert.Error(t, err)
}

func TestCapture(t *testing.T) {
	for _, name := range []string{"desktop", "undefined", "mobile"} {
		orig, err := Builtin(name)
		require.NoError(t, err)
		pr, err := Capture(name, New(orig))
		require.NoError(t, err)
		assert.Equal(t, orig.QueueFamilies, pr.QueueFamilies, name)
		assert.Equal(t, orig.Formats, pr.Formats, name)
		assert.Equal(t, orig.PresentModes, pr.PresentModes, name)
		assert.Equal(t, orig.UndefinedExtent, pr.UndefinedExtent, name)
		assert.Equal(t, orig.MaxImageCount, pr.MaxImageCount, name)
		assert.Equal(t, orig.SupportedTransforms, pr.SupportedTransforms, name)
		assert.Equal(t, orig.CompositeAlphas, pr.CompositeAlphas, name)
		if !orig.UndefinedExtent {
			assert.Equal(t, orig.CurrentExtent, pr.CurrentExtent, name)
		}
	}

	p := desktop(t)
	p.LoseDevice()
	_, err := Capture("lost", p)
	assert.ErrorIs(t, err, present.ErrDeviceLost)
}
