// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"slices"
)

// Handle types are opaque references to objects owned by a [Platform].
// The zero value of each is the null handle.
type (
	// Semaphore orders GPU work against other GPU work and presentation.
	Semaphore uint64

	// Fence is signaled by the GPU and waited on by the CPU.
	Fence uint64

	// Image is a swap image owned by the presentation backend.
	Image uint64

	// ImageView is a view onto an [Image], owned by the engine.
	ImageView uint64

	// Chain is a swap image chain bound to the surface.
	Chain uint64
)

// UndefinedExtent is the width a surface reports when the size of the
// swap images is determined by the application.
const UndefinedExtent = ^uint32(0)

// Extent is a 2D size in pixels.
type Extent struct {
	Width  uint32 `toml:"width" yaml:"width"`
	Height uint32 `toml:"height" yaml:"height"`
}

// HasZeroArea returns true if either dimension is zero, which is what a
// minimized window reports.
func (e Extent) HasZeroArea() bool {
	return e.Width == 0 || e.Height == 0
}

// IsUndefined returns true if this is the undefined extent sentinel.
func (e Extent) IsUndefined() bool {
	return e.Width == UndefinedExtent
}

func (e Extent) String() string {
	if e.IsUndefined() {
		return "undefined"
	}
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// SurfaceFormat is a pixel format paired with the color space the
// presentation engine interprets it in.
type SurfaceFormat struct {
	Format     Formats     `toml:"format" yaml:"format"`
	ColorSpace ColorSpaces `toml:"color_space" yaml:"color_space"`
}

func (sf SurfaceFormat) String() string {
	return sf.Format.String() + "/" + sf.ColorSpace.String()
}

// QueueFamily describes the capabilities of one device queue family
// with respect to the surface.
type QueueFamily struct {
	Index    int  `toml:"index" yaml:"index"`
	Graphics bool `toml:"graphics" yaml:"graphics"`
	Present  bool `toml:"present" yaml:"present"`
}

// Capabilities is a snapshot of what the device and surface pair
// supports. It is refreshed on every negotiation and never modified.
type Capabilities struct {

	// Formats are the supported surface formats, in platform order.
	Formats []SurfaceFormat

	// PresentModes are the supported present modes.
	PresentModes []PresentModes

	// MinImageCount is the minimum number of swap images.
	MinImageCount int

	// MaxImageCount is the maximum number of swap images, or 0 for no limit.
	MaxImageCount int

	// CurrentExtent is the current size of the surface, or
	// [UndefinedExtent] in Width if the application decides.
	CurrentExtent Extent

	MinExtent Extent
	MaxExtent Extent

	// SupportedTransforms are the pre-transforms the surface can apply.
	SupportedTransforms []Transforms

	CurrentTransform Transforms

	// CompositeAlphas are the supported alpha compositing modes.
	CompositeAlphas []CompositeAlphas

	// TransferDst is true if swap images can be the destination of
	// transfer commands, such as clears and blits.
	TransferDst bool
}

// SupportsTransform returns true if tr is in the supported set.
func (c *Capabilities) SupportsTransform(tr Transforms) bool {
	return slices.Contains(c.SupportedTransforms, tr)
}

// SupportsPresentMode returns true if pm is in the supported set.
func (c *Capabilities) SupportsPresentMode(pm PresentModes) bool {
	return slices.Contains(c.PresentModes, pm)
}

// Configuration is the set of parameters a swap image chain is built
// with. Every field is a member of the corresponding supported set of
// the [Capabilities] it was derived from.
type Configuration struct {
	Format         Formats
	ColorSpace     ColorSpaces
	PresentMode    PresentModes
	ImageCount     int
	Extent         Extent
	PreTransform   Transforms
	CompositeAlpha CompositeAlphas

	// TransferDst requests transfer destination usage on the images
	// in addition to color attachment usage.
	TransferDst bool
}

// SurfaceFormat returns the format and color space pair.
func (c *Configuration) SurfaceFormat() SurfaceFormat {
	return SurfaceFormat{Format: c.Format, ColorSpace: c.ColorSpace}
}

// SwapImage is one image of the chain together with its view.
type SwapImage struct {

	// Image is owned by the chain, not by the engine.
	Image Image

	// View is owned by the engine.
	View ImageView

	// Index is the position of the image in the chain.
	Index int
}

// Frame is the state handed to the renderer for one frame. Handles in
// it are only valid until the matching present returns.
type Frame struct {

	// Image is the index of the acquired swap image.
	Image int

	// Slot is the index of the frame slot in use.
	Slot int

	// Acquire is signaled when the image is available. Rendering
	// must wait on it.
	Acquire Semaphore

	// RenderComplete must be signaled by the rendering work.
	// Presentation waits on it.
	RenderComplete Semaphore

	// Fence must be signaled when the rendering work completes.
	Fence Fence

	// Target is the acquired image.
	Target Image

	// View is the view of the acquired image.
	View ImageView

	// Extent is the size of the image.
	Extent Extent
}
