// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"errors"
	"slices"
)

// Request is what the caller asks of a negotiation.
type Request struct {

	// Extent is the desired size of the swap images. It is only used
	// when the surface leaves the size to the application.
	Extent Extent

	// VSync requests presentation throttled to the display refresh.
	VSync bool

	// DesiredImages is the total number of images wanted. It only takes
	// effect above the minimum plus one. See [Options.DesiredImages].
	DesiredImages int
}

// Negotiation is the result of [Negotiate].
type Negotiation struct {
	Capabilities  Capabilities
	Configuration Configuration
	QueueFamily   QueueFamily
}

// Negotiate queries the platform and selects a queue family and a
// configuration for the swap image chain. Every failure is fatal and
// is returned as a [ConfigError], except device or surface loss.
func Negotiate(p Platform, req Request) (*Negotiation, error) {
	fams, err := p.QueueFamilies()
	if err != nil {
		return nil, configErr("query queue families", err)
	}
	fam, err := SelectQueueFamily(fams)
	if err != nil {
		return nil, err
	}

	formats, err := p.SurfaceFormats()
	if err != nil {
		return nil, configErr("query surface formats", err)
	}
	sf, err := SelectFormat(formats)
	if err != nil {
		return nil, err
	}

	caps, err := p.SurfaceCapabilities()
	if err != nil {
		return nil, configErr("query surface capabilities", err)
	}
	modes, err := p.PresentModes()
	if err != nil {
		return nil, configErr("query present modes", err)
	}
	if len(modes) == 0 {
		return nil, configErr("select present mode", errors.New("surface reports no present modes"))
	}
	caps.Formats = slices.Clone(formats)
	caps.PresentModes = slices.Clone(modes)

	cfg := Configuration{
		Format:         sf.Format,
		ColorSpace:     sf.ColorSpace,
		PresentMode:    SelectPresentMode(modes, req.VSync),
		ImageCount:     SelectImageCount(&caps, req.DesiredImages),
		Extent:         SelectExtent(&caps, req.Extent),
		PreTransform:   SelectTransform(&caps),
		CompositeAlpha: SelectCompositeAlpha(&caps),
		TransferDst:    caps.TransferDst,
	}
	return &Negotiation{Capabilities: caps, Configuration: cfg, QueueFamily: fam}, nil
}

// SelectQueueFamily returns the first family that supports both
// graphics and presentation. Separate graphics and present families
// are not supported and result in a [ConfigError].
func SelectQueueFamily(fams []QueueFamily) (QueueFamily, error) {
	if len(fams) == 0 {
		return QueueFamily{}, configErr("select queue family", errors.New("device has no queue families"))
	}
	for _, f := range fams {
		if f.Graphics && f.Present {
			return f, nil
		}
	}
	return QueueFamily{}, configErr("select queue family", errors.New("no queue family supports both graphics and present"))
}

// SelectFormat returns the surface format to use. A surface that only
// reports [Undefined] accepts any format, in which case [DefaultFormat]
// is used with the reported color space. Otherwise the first listed
// format is used.
func SelectFormat(formats []SurfaceFormat) (SurfaceFormat, error) {
	switch {
	case len(formats) == 0:
		return SurfaceFormat{}, configErr("select format", errors.New("surface reports no formats"))
	case len(formats) == 1 && formats[0].Format == Undefined:
		return SurfaceFormat{Format: DefaultFormat, ColorSpace: formats[0].ColorSpace}, nil
	}
	return formats[0], nil
}

// SelectExtent returns the current extent of the surface, unless the
// surface reports [UndefinedExtent], in which case the requested
// extent is used, clamped to the supported range.
func SelectExtent(caps *Capabilities, requested Extent) Extent {
	if !caps.CurrentExtent.IsUndefined() {
		return caps.CurrentExtent
	}
	ex := requested
	if caps.MaxExtent.Width > 0 {
		ex.Width = min(ex.Width, caps.MaxExtent.Width)
	}
	if caps.MaxExtent.Height > 0 {
		ex.Height = min(ex.Height, caps.MaxExtent.Height)
	}
	ex.Width = max(ex.Width, caps.MinExtent.Width)
	ex.Height = max(ex.Height, caps.MinExtent.Height)
	return ex
}

// SelectPresentMode returns [Fifo] when vsync is requested, which is
// always supported. Otherwise it prefers [Mailbox], then [Immediate],
// then falls back to [Fifo].
func SelectPresentMode(modes []PresentModes, vsync bool) PresentModes {
	if vsync {
		return Fifo
	}
	for _, pm := range []PresentModes{Mailbox, Immediate} {
		if slices.Contains(modes, pm) {
			return pm
		}
	}
	return Fifo
}

// SelectImageCount returns one more than the minimum image count, or
// desired if that is larger, capped at the maximum when there is one.
func SelectImageCount(caps *Capabilities, desired int) int {
	n := max(caps.MinImageCount+1, desired)
	if caps.MaxImageCount > 0 && n > caps.MaxImageCount {
		n = caps.MaxImageCount
	}
	return n
}

// SelectTransform returns [Identity] if supported, and the current
// transform otherwise.
func SelectTransform(caps *Capabilities) Transforms {
	if caps.SupportsTransform(Identity) {
		return Identity
	}
	return caps.CurrentTransform
}

// SelectCompositeAlpha returns the first supported alpha mode of
// Opaque, PreMultiplied, PostMultiplied and InheritAlpha. One of these
// is always supported; Opaque is returned if none is reported.
func SelectCompositeAlpha(caps *Capabilities) CompositeAlphas {
	for _, ca := range []CompositeAlphas{Opaque, PreMultiplied, PostMultiplied, InheritAlpha} {
		if slices.Contains(caps.CompositeAlphas, ca) {
			return ca
		}
	}
	return Opaque
}
