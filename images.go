// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"errors"
	"fmt"
)

// SwapImages owns a swap image chain and one view per image.
// The chain and views are only ever built and released as a whole.
type SwapImages struct {

	// Chain is the current chain, or 0.
	Chain Chain

	// Images are the images of the chain with their views, in chain order.
	Images []SwapImage

	// Format is the format the views were created with.
	Format Formats

	// retired is set when creating a chain from Chain failed, which
	// retires Chain so it can no longer be handed over.
	retired bool
}

// Len returns the number of images.
func (si *SwapImages) Len() int {
	return len(si.Images)
}

// Views returns the image views in chain order.
func (si *SwapImages) Views() []ImageView {
	vs := make([]ImageView, len(si.Images))
	for i, im := range si.Images {
		vs[i] = im.View
	}
	return vs
}

// Build creates a new chain for cfg, handing over the current chain
// if there is one. The number of images is taken from the platform,
// which may differ from cfg.ImageCount; cfg.ImageCount is updated to
// match. The previous views and chain are destroyed only once the new
// chain and all of its views exist. On failure the previous chain and
// views are left in place to be released, but the chain can no longer
// be used to acquire images.
func (si *SwapImages) Build(p Platform, cfg *Configuration, family int) error {
	old := si.Chain
	handover := old
	if si.retired {
		handover = 0
	}
	ch, err := p.CreateChain(cfg, family, handover)
	if err != nil {
		si.retired = old != 0
		return configErr("create chain", err)
	}
	imgs, err := p.ChainImages(ch)
	if err == nil && len(imgs) == 0 {
		err = errors.New("chain has no images")
	}
	if err != nil {
		p.DestroyChain(ch)
		si.retired = old != 0
		return configErr("get chain images", err)
	}
	nimgs := make([]SwapImage, 0, len(imgs))
	for i, img := range imgs {
		v, err := p.CreateImageView(img, cfg.Format)
		if err != nil {
			releaseViews(p, nimgs)
			p.DestroyChain(ch)
			si.retired = old != 0
			return configErr(fmt.Sprintf("create view for image %d", i), err)
		}
		nimgs = append(nimgs, SwapImage{Image: img, View: v, Index: i})
	}

	releaseViews(p, si.Images)
	if old != 0 {
		p.DestroyChain(old)
	}
	si.Chain = ch
	si.Images = nimgs
	si.Format = cfg.Format
	si.retired = false
	cfg.ImageCount = len(nimgs)
	return nil
}

// Release destroys all views in reverse order and then the chain.
func (si *SwapImages) Release(p Platform) {
	releaseViews(p, si.Images)
	si.Images = nil
	if si.Chain != 0 {
		p.DestroyChain(si.Chain)
		si.Chain = 0
	}
	si.retired = false
}

func releaseViews(p Platform, imgs []SwapImage) {
	for i := len(imgs) - 1; i >= 0; i-- {
		p.DestroyImageView(imgs[i].View)
	}
}
