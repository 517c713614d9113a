// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simpresent

import (
	"cogentcore.org/present"
)

// Capture queries the given platform and returns a profile that
// simulates it, so that a real device and surface can be saved and
// replayed. The profile has no scripted events.
func Capture(name string, p present.Platform) (*Profile, error) {
	fams, err := p.QueueFamilies()
	if err != nil {
		return nil, err
	}
	formats, err := p.SurfaceFormats()
	if err != nil {
		return nil, err
	}
	modes, err := p.PresentModes()
	if err != nil {
		return nil, err
	}
	caps, err := p.SurfaceCapabilities()
	if err != nil {
		return nil, err
	}
	pr := &Profile{
		Name:                name,
		QueueFamilies:       fams,
		Formats:             formats,
		PresentModes:        modes,
		MinImageCount:       caps.MinImageCount,
		MaxImageCount:       caps.MaxImageCount,
		UndefinedExtent:     caps.CurrentExtent.IsUndefined(),
		MinExtent:           caps.MinExtent,
		MaxExtent:           caps.MaxExtent,
		SupportedTransforms: caps.SupportedTransforms,
		CurrentTransform:    caps.CurrentTransform,
		CompositeAlphas:     caps.CompositeAlphas,
		TransferDst:         caps.TransferDst,
	}
	if !pr.UndefinedExtent {
		pr.CurrentExtent = caps.CurrentExtent
	}
	return pr, nil
}
