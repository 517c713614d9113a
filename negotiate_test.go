// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectImageCount(t *testing.T) {
	for m := 1; m <= 8; m++ {
		caps := &Capabilities{MinImageCount: m}
		assert.Equal(t, m+1, SelectImageCount(caps, 0), "uncapped min %d", m)

		caps.MaxImageCount = m
		assert.Equal(t, m, SelectImageCount(caps, 0), "equal bounds %d", m)
	}

	caps := &Capabilities{MinImageCount: 2, MaxImageCount: 4}
	assert.Equal(t, 3, SelectImageCount(caps, 0))
	assert.Equal(t, 3, SelectImageCount(caps, 1))
	assert.Equal(t, 4, SelectImageCount(caps, 4))
	assert.Equal(t, 4, SelectImageCount(caps, 10))

	caps.MaxImageCount = 0
	assert.Equal(t, 10, SelectImageCount(caps, 10))
}

func TestSelectPresentMode(t *testing.T) {
	tests := []struct {
		modes []PresentModes
		vsync bool
		want  PresentModes
	}{
		{[]PresentModes{Fifo, Mailbox}, false, Mailbox},
		{[]PresentModes{Fifo, Immediate}, false, Immediate},
		{[]PresentModes{Immediate, Fifo, Mailbox}, false, Mailbox},
		{[]PresentModes{Fifo, FifoRelaxed}, false, Fifo},
		{[]PresentModes{Fifo}, false, Fifo},
		{[]PresentModes{Fifo, Mailbox}, true, Fifo},
		{[]PresentModes{Fifo, Immediate}, true, Fifo},
		{[]PresentModes{Mailbox, Immediate}, true, Fifo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectPresentMode(tt.modes, tt.vsync), "modes %v vsync %v", tt.modes, tt.vsync)
	}
}

func TestSelectExtent(t *testing.T) {
	undef := &Capabilities{
		CurrentExtent: Extent{UndefinedExtent, UndefinedExtent},
		MinExtent:     Extent{1, 1},
		MaxExtent:     Extent{4096, 4096},
	}
	for _, req := range []Extent{{800, 600}, {1, 1}, {4096, 4096}, {1920, 1080}} {
		assert.Equal(t, req, SelectExtent(undef, req))
	}
	assert.Equal(t, Extent{4096, 1}, SelectExtent(undef, Extent{5000, 0}))

	cur := &Capabilities{
		CurrentExtent: Extent{1280, 720},
		MinExtent:     Extent{1, 1},
		MaxExtent:     Extent{4096, 4096},
	}
	for _, req := range []Extent{{800, 600}, {1280, 720}, {0, 0}, {9999, 9999}} {
		assert.Equal(t, Extent{1280, 720}, SelectExtent(cur, req))
	}
}

func TestSelectFormat(t *testing.T) {
	sf, err := SelectFormat([]SurfaceFormat{{Undefined, SrgbNonlinear}})
	assert.NoError(t, err)
	assert.Equal(t, SurfaceFormat{B8G8R8A8Unorm, SrgbNonlinear}, sf)

	sf, err = SelectFormat([]SurfaceFormat{{R8G8B8A8Srgb, SrgbNonlinear}, {B8G8R8A8Unorm, SrgbNonlinear}})
	assert.NoError(t, err)
	assert.Equal(t, SurfaceFormat{R8G8B8A8Srgb, SrgbNonlinear}, sf)

	// undefined is only special when it is the only entry
	sf, err = SelectFormat([]SurfaceFormat{{Undefined, SrgbNonlinear}, {B8G8R8A8Srgb, SrgbNonlinear}})
	assert.NoError(t, err)
	assert.Equal(t, Undefined, sf.Format)

	_, err = SelectFormat(nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSelectQueueFamily(t *testing.T) {
	f, err := SelectQueueFamily([]QueueFamily{{0, true, false}, {1, false, true}, {2, true, true}, {3, true, true}})
	assert.NoError(t, err)
	assert.Equal(t, 2, f.Index)

	_, err = SelectQueueFamily([]QueueFamily{{0, true, false}, {1, false, true}})
	assert.ErrorIs(t, err, ErrConfiguration)
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "select queue family", ce.Op)

	_, err = SelectQueueFamily(nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSelectTransformAndAlpha(t *testing.T) {
	caps := &Capabilities{SupportedTransforms: []Transforms{Rotate90, Identity}, CurrentTransform: Rotate90}
	assert.Equal(t, Identity, SelectTransform(caps))
	caps.SupportedTransforms = []Transforms{Rotate90}
	assert.Equal(t, Rotate90, SelectTransform(caps))

	caps.CompositeAlphas = []CompositeAlphas{InheritAlpha, PostMultiplied}
	assert.Equal(t, PostMultiplied, SelectCompositeAlpha(caps))
	caps.CompositeAlphas = []CompositeAlphas{Opaque, PreMultiplied}
	assert.Equal(t, Opaque, SelectCompositeAlpha(caps))
	caps.CompositeAlphas = nil
	assert.Equal(t, Opaque, SelectCompositeAlpha(caps))
}

func TestConfigError(t *testing.T) {
	err := configErr("create chain", ErrOutOfMemory)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, "present: configuration error: create chain: present: out of memory", err.Error())

	err = configErr("create chain", ErrDeviceLost)
	assert.ErrorIs(t, err, ErrDeviceLost)
	assert.NotErrorIs(t, err, ErrConfiguration)

	assert.NoError(t, configErr("x", nil))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Mailbox", Mailbox.String())
	assert.Equal(t, "B8G8R8A8Unorm", DefaultFormat.String())
	assert.Equal(t, "Rotate90", Rotate90.String())
	assert.Equal(t, "AcquirePending", AcquirePending.String())

	var pm PresentModes
	assert.NoError(t, pm.SetString("Immediate"))
	assert.Equal(t, Immediate, pm)
	assert.Error(t, pm.SetString("Sometimes"))

	var f Formats
	assert.NoError(t, f.UnmarshalText([]byte("R16G16B16A16Sfloat")))
	assert.Equal(t, R16G16B16A16Sfloat, f)
	b, err := f.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "R16G16B16A16Sfloat", string(b))

	assert.True(t, OutOfDate.IsStale())
	assert.True(t, Suboptimal.IsStale())
	assert.False(t, Timeout.IsStale())
}

func TestExtent(t *testing.T) {
	assert.True(t, Extent{0, 10}.HasZeroArea())
	assert.False(t, Extent{10, 10}.HasZeroArea())
	assert.True(t, Extent{UndefinedExtent, UndefinedExtent}.IsUndefined())
	assert.Equal(t, "640x480", Extent{640, 480}.String())
	assert.Equal(t, "undefined", Extent{UndefinedExtent, 0}.String())
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 2, o.FramesInFlight)
	assert.Equal(t, 0, o.DesiredImages)
	assert.Equal(t, 1, (&Options{}).framesInFlight())
}
