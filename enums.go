// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

//go:generate core generate

// Formats are the pixel formats of swap images. Values match the
// Vulkan VkFormat enum.
type Formats int32 //enums:enum

const (
	// Undefined is reported by surfaces that accept any format.
	Undefined Formats = 0

	R8G8B8A8Unorm Formats = 37
	R8G8B8A8Srgb  Formats = 43
	B8G8R8A8Unorm Formats = 44
	B8G8R8A8Srgb  Formats = 50

	A2B10G10R10UnormPack32 Formats = 64
	R16G16B16A16Sfloat     Formats = 97
)

// DefaultFormat is used when the surface reports [Undefined].
const DefaultFormat = B8G8R8A8Unorm

// ColorSpaces are the color spaces a surface can present in.
// Values match the Vulkan VkColorSpaceKHR enum.
type ColorSpaces int32 //enums:enum

const (
	SrgbNonlinear      ColorSpaces = 0
	DisplayP3Nonlinear ColorSpaces = 1000104001
	ExtendedSrgbLinear ColorSpaces = 1000104002
	Hdr10St2084        ColorSpaces = 1000104008
)

// PresentModes govern how presented images are shown on the display.
// Values match the Vulkan VkPresentModeKHR enum.
type PresentModes int32 //enums:enum

const (
	// Immediate shows images right away, which may tear.
	Immediate PresentModes = iota

	// Mailbox replaces the queued image with each new one and shows
	// the latest at the vertical blank. Low latency, no tearing.
	Mailbox

	// Fifo queues images and shows one per vertical blank. It is
	// always supported.
	Fifo

	// FifoRelaxed is like Fifo but tears when an image arrives late.
	FifoRelaxed
)

// Transforms are the pre-transforms applied to an image before
// presentation. Values match the Vulkan surface transform flag bits.
type Transforms int32 //enums:enum

const (
	Identity         Transforms = 1
	Rotate90         Transforms = 2
	Rotate180        Transforms = 4
	Rotate270        Transforms = 8
	HorizontalMirror Transforms = 16
	InheritTransform Transforms = 256
)

// CompositeAlphas are the ways image alpha is composited with other
// surfaces. Values match the Vulkan composite alpha flag bits.
type CompositeAlphas int32 //enums:enum

const (
	Opaque         CompositeAlphas = 1
	PreMultiplied  CompositeAlphas = 2
	PostMultiplied CompositeAlphas = 4
	InheritAlpha   CompositeAlphas = 8
)

// Statuses are the non-error results of acquire and present.
type Statuses int32 //enums:enum

const (
	// Success means the operation completed normally.
	Success Statuses = iota

	// Suboptimal means the operation succeeded but the chain no
	// longer matches the surface exactly.
	Suboptimal

	// OutOfDate means the chain can no longer be used with the surface.
	OutOfDate

	// Timeout means no image became available within the timeout.
	Timeout

	// NotReady means no image was available and the timeout was zero.
	NotReady
)

// IsStale returns true if the status means the chain must be recreated.
func (s Statuses) IsStale() bool {
	return s == Suboptimal || s == OutOfDate
}

// States are the states of an [Engine].
type States int32 //enums:enum

const (
	// Uninitialized is the state before Initialize.
	Uninitialized States = iota

	// Ready means the engine can acquire the next image.
	Ready

	// AcquirePending means an image has been acquired and must be presented.
	AcquirePending

	// Presenting is the state during a present call.
	Presenting

	// TornDown means all resources have been released.
	TornDown
)
