// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simpresent

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/present"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"desktop", "mobile", "resizing", "split-queues", "undefined"}, Builtins())
	for _, name := range Builtins() {
		pr, err := Builtin(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, pr.Name)
		assert.NotEmpty(t, pr.QueueFamilies, name)
	}
	_, err := Builtin("nonexistent")
	assert.Error(t, err)
}

func TestBuiltinContents(t *testing.T) {
	pr, err := Builtin("desktop")
	require.NoError(t, err)
	assert.Equal(t, present.SurfaceFormat{Format: present.B8G8R8A8Srgb, ColorSpace: present.SrgbNonlinear}, pr.Formats[0])
	assert.Equal(t, []present.PresentModes{present.Fifo, present.Mailbox, present.Immediate, present.FifoRelaxed}, pr.PresentModes)
	assert.Equal(t, present.Extent{Width: 1280, Height: 720}, pr.CurrentExtent)
	assert.Len(t, pr.QueueFamilies, 2)

	pr, err = Builtin("mobile")
	require.NoError(t, err)
	assert.Equal(t, present.Rotate90, pr.CurrentTransform)
	assert.Equal(t, []present.CompositeAlphas{present.InheritAlpha}, pr.CompositeAlphas)
	assert.False(t, pr.TransferDst)

	pr, err = Builtin("resizing")
	require.NoError(t, err)
	require.Len(t, pr.Events, 5)
	assert.Equal(t, 4, pr.Events[0].Frame)
	assert.Equal(t, &present.Extent{Width: 1600, Height: 900}, pr.Events[0].Resize)
	assert.Equal(t, present.Suboptimal, pr.Events[1].Acquire)
	assert.Equal(t, present.OutOfDate, pr.Events[2].Present)
	assert.True(t, pr.Events[3].Resize.HasZeroArea())

	pr, err = Builtin("undefined")
	require.NoError(t, err)
	assert.True(t, pr.UndefinedExtent)
	assert.Equal(t, present.Undefined, pr.Formats[0].Format)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"resizing", "mobile"} {
		orig, err := Builtin(name)
		require.NoError(t, err)
		for _, ext := range []string{".toml", ".yaml"} {
			fn := filepath.Join(dir, name+ext)
			require.NoError(t, orig.Save(fn))
			pr, err := Open(fn)
			require.NoError(t, err, fn)
			assert.Equal(t, orig.Name, pr.Name, fn)
			assert.Equal(t, orig.QueueFamilies, pr.QueueFamilies, fn)
			assert.Equal(t, orig.Formats, pr.Formats, fn)
			assert.Equal(t, orig.PresentModes, pr.PresentModes, fn)
			assert.Equal(t, orig.CurrentExtent, pr.CurrentExtent, fn)
			assert.Equal(t, orig.SupportedTransforms, pr.SupportedTransforms, fn)
			assert.Equal(t, orig.CompositeAlphas, pr.CompositeAlphas, fn)
			assert.Equal(t, len(orig.Events), len(pr.Events), fn)
			for i := range orig.Events {
				assert.Equal(t, orig.Events[i], pr.Events[i], fn)
			}
		}
	}
}

func TestZeroResizeRoundTrip(t *testing.T) {
	pr := &Profile{Name: "minimize", Events: []Event{{Frame: 3, Resize: &present.Extent{}}, {Frame: 5}}}
	for _, enc := range []Encodings{TOML, YAML} {
		var b bytes.Buffer
		require.NoError(t, pr.Write(&b, enc))
		got, err := Read(&b, enc)
		require.NoError(t, err)
		require.Len(t, got.Events, 2)
		require.NotNil(t, got.Events[0].Resize, "minimize event lost")
		assert.True(t, got.Events[0].Resize.HasZeroArea())
		assert.Nil(t, got.Events[1].Resize)
	}
}

func TestWriteEnumNames(t *testing.T) {
	pr, err := Builtin("desktop")
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, pr.Write(&b, YAML))
	assert.Contains(t, b.String(), "B8G8R8A8Srgb")
	assert.Contains(t, b.String(), "Mailbox")

	b.Reset()
	require.NoError(t, pr.Write(&b, TOML))
	assert.Contains(t, b.String(), "B8G8R8A8Srgb")
}

func TestRead(t *testing.T) {
	pr, err := Read(strings.NewReader(`
name: tiny
queue_families: [{index: 0, graphics: true, present: true}]
formats: [{format: B8G8R8A8Unorm, color_space: SrgbNonlinear}]
present_modes: [Fifo]
min_image_count: 1
current_extent: {width: 8, height: 8}
events:
  - frame: 2
    device_lost: true
`), YAML)
	require.NoError(t, err)
	assert.Equal(t, "tiny", pr.Name)
	assert.Equal(t, present.Extent{Width: 8, Height: 8}, pr.CurrentExtent)
	require.Len(t, pr.Events, 1)
	assert.True(t, pr.Events[0].DeviceLost)

	_, err = Read(strings.NewReader(`min_image_count = "two"`), TOML)
	assert.Error(t, err)
}

func TestEncodingFor(t *testing.T) {
	enc, err := EncodingFor("a/b.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, enc)
	enc, err = EncodingFor("b.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, enc)
	_, err = EncodingFor("b.json")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	pr, err := Load("split-queues")
	require.NoError(t, err)
	assert.Equal(t, "split-queues", pr.Name)

	orig, err := Builtin("undefined")
	require.NoError(t, err)
	orig.Name = ""
	fn := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, orig.Save(fn))
	pr, err = Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "custom", pr.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	orig, err := Builtin("desktop")
	require.NoError(t, err)
	cp := orig.Clone()
	cp.Formats[0].Format = present.R16G16B16A16Sfloat
	cp.PresentModes[0] = present.Immediate
	assert.Equal(t, present.B8G8R8A8Srgb, orig.Formats[0].Format)
	assert.Equal(t, present.Fifo, orig.PresentModes[0])

	orig, err = Builtin("resizing")
	require.NoError(t, err)
	cp = orig.Clone()
	require.Equal(t, orig.Events, cp.Events)
	cp.Events[0].Resize.Width = 1
	cp.Events[1].Acquire = present.Success
	assert.Equal(t, uint32(1600), orig.Events[0].Resize.Width)
	assert.Equal(t, present.Suboptimal, orig.Events[1].Acquire)
}
