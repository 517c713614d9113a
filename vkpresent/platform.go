// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vkpresent implements [present.Platform] on Vulkan, using
// github.com/goki/vulkan. A Platform pairs a window surface with a
// logical device made for it. Desktop window surfaces are created
// through glfw; other platforms provide their own surface and call
// [NewPlatform] directly.
package vkpresent

import (
	"fmt"
	"time"

	"cogentcore.org/present"
	vk "github.com/goki/vulkan"
)

// Platform is a Vulkan surface and the device presenting to it.
// It is not safe for concurrent use.
type Platform struct {
	GPU *GPU

	// Surface is the window surface, owned by the Platform.
	Surface vk.Surface

	// Device is made for the combined graphics and present queue family.
	Device Device

	chains      registry[vk.Swapchain]
	chainImages map[uint64][]uint64
	images      registry[vk.Image]
	views       registry[vk.ImageView]
	sems        registry[vk.Semaphore]
	fences      registry[vk.Fence]
}

// NewPlatform makes a platform for the given surface, creating a
// device with one queue from the first family that supports both
// graphics and presentation. On success the Platform owns the surface
// and destroys it, and the device, in DestroySurface.
func NewPlatform(gp *GPU, surface vk.Surface) (*Platform, error) {
	p := &Platform{GPU: gp, Surface: surface, chainImages: map[uint64][]uint64{}}
	fams, err := p.QueueFamilies()
	if err != nil {
		return nil, err
	}
	fam, err := present.SelectQueueFamily(fams)
	if err != nil {
		return nil, err
	}
	if err := p.Device.makeDevice(gp, uint32(fam.Index)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Platform) QueueFamilies() ([]present.QueueFamily, error) {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.GPU.PhysicalDevice, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.GPU.PhysicalDevice, &count, props)
	fams := make([]present.QueueFamily, count)
	for i := range props {
		props[i].Deref()
		var supported vk.Bool32
		err := NewError(vk.GetPhysicalDeviceSurfaceSupport(p.GPU.PhysicalDevice, uint32(i), p.Surface, &supported))
		if err != nil {
			return nil, err
		}
		fams[i] = present.QueueFamily{
			Index:    i,
			Graphics: props[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Present:  supported.B(),
		}
	}
	return fams, nil
}

func (p *Platform) SurfaceFormats() ([]present.SurfaceFormat, error) {
	var count uint32
	if err := NewError(vk.GetPhysicalDeviceSurfaceFormats(p.GPU.PhysicalDevice, p.Surface, &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.SurfaceFormat, count)
	if err := NewError(vk.GetPhysicalDeviceSurfaceFormats(p.GPU.PhysicalDevice, p.Surface, &count, list)); err != nil {
		return nil, err
	}
	formats := make([]present.SurfaceFormat, len(list))
	for i := range list {
		list[i].Deref()
		formats[i] = present.SurfaceFormat{
			Format:     present.Formats(list[i].Format),
			ColorSpace: present.ColorSpaces(list[i].ColorSpace),
		}
	}
	return formats, nil
}

func (p *Platform) PresentModes() ([]present.PresentModes, error) {
	var count uint32
	if err := NewError(vk.GetPhysicalDeviceSurfacePresentModes(p.GPU.PhysicalDevice, p.Surface, &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.PresentMode, count)
	if err := NewError(vk.GetPhysicalDeviceSurfacePresentModes(p.GPU.PhysicalDevice, p.Surface, &count, list)); err != nil {
		return nil, err
	}
	modes := make([]present.PresentModes, len(list))
	for i, m := range list {
		modes[i] = present.PresentModes(m)
	}
	return modes, nil
}

func (p *Platform) SurfaceCapabilities() (present.Capabilities, error) {
	var sc vk.SurfaceCapabilities
	if err := NewError(vk.GetPhysicalDeviceSurfaceCapabilities(p.GPU.PhysicalDevice, p.Surface, &sc)); err != nil {
		return present.Capabilities{}, err
	}
	sc.Deref()
	sc.CurrentExtent.Deref()
	sc.MinImageExtent.Deref()
	sc.MaxImageExtent.Deref()
	return capabilities(&sc), nil
}

// capabilities converts Vulkan surface capabilities.
func capabilities(sc *vk.SurfaceCapabilities) present.Capabilities {
	caps := present.Capabilities{
		MinImageCount:    int(sc.MinImageCount),
		MaxImageCount:    int(sc.MaxImageCount),
		CurrentExtent:    extent(sc.CurrentExtent),
		MinExtent:        extent(sc.MinImageExtent),
		MaxExtent:        extent(sc.MaxImageExtent),
		CurrentTransform: present.Transforms(sc.CurrentTransform),
		TransferDst:      sc.SupportedUsageFlags&vk.ImageUsageFlags(vk.ImageUsageTransferDstBit) != 0,
	}
	for _, tr := range present.TransformsValues() {
		if sc.SupportedTransforms&vk.SurfaceTransformFlags(tr) != 0 {
			caps.SupportedTransforms = append(caps.SupportedTransforms, tr)
		}
	}
	for _, ca := range present.CompositeAlphasValues() {
		if sc.SupportedCompositeAlpha&vk.CompositeAlphaFlags(ca) != 0 {
			caps.CompositeAlphas = append(caps.CompositeAlphas, ca)
		}
	}
	return caps
}

func extent(ex vk.Extent2D) present.Extent {
	return present.Extent{Width: ex.Width, Height: ex.Height}
}

// usage returns the image usage flags for the configuration.
func usage(cfg *present.Configuration) vk.ImageUsageFlags {
	u := vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
	if cfg.TransferDst {
		u |= vk.ImageUsageFlags(vk.ImageUsageTransferDstBit)
	}
	return u
}

func (p *Platform) CreateChain(cfg *present.Configuration, family int, old present.Chain) (present.Chain, error) {
	oldSc := vk.NullSwapchain
	if old != 0 {
		sc, ok := p.chains.get(uint64(old))
		if !ok {
			return 0, fmt.Errorf("vkpresent: unknown chain %d", old)
		}
		oldSc = sc
	}
	var sc vk.Swapchain
	err := NewError(vk.CreateSwapchain(p.Device.Device, &vk.SwapchainCreateInfo{
		SType:           vk.StructureTypeSwapchainCreateInfo,
		Surface:         p.Surface,
		MinImageCount:   uint32(cfg.ImageCount),
		ImageFormat:     vk.Format(cfg.Format),
		ImageColorSpace: vk.ColorSpace(cfg.ColorSpace),
		ImageExtent: vk.Extent2D{
			Width:  cfg.Extent.Width,
			Height: cfg.Extent.Height,
		},
		ImageUsage:       usage(cfg),
		PreTransform:     vk.SurfaceTransformFlagBits(cfg.PreTransform),
		CompositeAlpha:   vk.CompositeAlphaFlagBits(cfg.CompositeAlpha),
		ImageArrayLayers: 1,
		ImageSharingMode: vk.SharingModeExclusive,
		PresentMode:      vk.PresentMode(cfg.PresentMode),
		OldSwapchain:     oldSc,
		Clipped:          vk.True,
	}, nil, &sc))
	if err != nil {
		return 0, err
	}
	return present.Chain(p.chains.add(sc)), nil
}

func (p *Platform) ChainImages(ch present.Chain) ([]present.Image, error) {
	sc, ok := p.chains.get(uint64(ch))
	if !ok {
		return nil, fmt.Errorf("vkpresent: unknown chain %d", ch)
	}
	if hs, ok := p.chainImages[uint64(ch)]; ok {
		return toImages(hs), nil
	}
	var count uint32
	if err := NewError(vk.GetSwapchainImages(p.Device.Device, sc, &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.Image, count)
	if err := NewError(vk.GetSwapchainImages(p.Device.Device, sc, &count, list)); err != nil {
		return nil, err
	}
	hs := make([]uint64, count)
	for i, img := range list {
		hs[i] = p.images.add(img)
	}
	p.chainImages[uint64(ch)] = hs
	return toImages(hs), nil
}

func toImages(hs []uint64) []present.Image {
	imgs := make([]present.Image, len(hs))
	for i, h := range hs {
		imgs[i] = present.Image(h)
	}
	return imgs
}

// Image returns the Vulkan image for the given handle.
func (p *Platform) Image(img present.Image) vk.Image {
	im, _ := p.images.get(uint64(img))
	return im
}

// View returns the Vulkan image view for the given handle.
func (p *Platform) View(v present.ImageView) vk.ImageView {
	iv, _ := p.views.get(uint64(v))
	return iv
}

func (p *Platform) DestroyChain(ch present.Chain) {
	sc, ok := p.chains.remove(uint64(ch))
	if !ok {
		return
	}
	for _, h := range p.chainImages[uint64(ch)] {
		p.images.remove(h)
	}
	delete(p.chainImages, uint64(ch))
	vk.DestroySwapchain(p.Device.Device, sc, nil)
}

func (p *Platform) CreateImageView(img present.Image, format present.Formats) (present.ImageView, error) {
	im, ok := p.images.get(uint64(img))
	if !ok {
		return 0, fmt.Errorf("vkpresent: unknown image %d", img)
	}
	var view vk.ImageView
	err := NewError(vk.CreateImageView(p.Device.Device, &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    im,
		ViewType: vk.ImageViewType2d,
		Format:   vk.Format(format),
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: colorRange,
	}, nil, &view))
	if err != nil {
		return 0, err
	}
	return present.ImageView(p.views.add(view)), nil
}

var colorRange = vk.ImageSubresourceRange{
	AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
	LevelCount: 1,
	LayerCount: 1,
}

func (p *Platform) DestroyImageView(v present.ImageView) {
	if iv, ok := p.views.remove(uint64(v)); ok {
		vk.DestroyImageView(p.Device.Device, iv, nil)
	}
}

func (p *Platform) CreateSemaphore() (present.Semaphore, error) {
	var sem vk.Semaphore
	err := NewError(vk.CreateSemaphore(p.Device.Device, &vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}, nil, &sem))
	if err != nil {
		return 0, err
	}
	return present.Semaphore(p.sems.add(sem)), nil
}

func (p *Platform) DestroySemaphore(s present.Semaphore) {
	if sem, ok := p.sems.remove(uint64(s)); ok {
		vk.DestroySemaphore(p.Device.Device, sem, nil)
	}
}

func (p *Platform) semaphore(s present.Semaphore) (vk.Semaphore, error) {
	sem, ok := p.sems.get(uint64(s))
	if !ok {
		return sem, fmt.Errorf("vkpresent: unknown semaphore %d", s)
	}
	return sem, nil
}

func (p *Platform) CreateFence(signaled bool) (present.Fence, error) {
	info := &vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
	if signaled {
		info.Flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}
	var fc vk.Fence
	if err := NewError(vk.CreateFence(p.Device.Device, info, nil, &fc)); err != nil {
		return 0, err
	}
	return present.Fence(p.fences.add(fc)), nil
}

func (p *Platform) DestroyFence(f present.Fence) {
	if fc, ok := p.fences.remove(uint64(f)); ok {
		vk.DestroyFence(p.Device.Device, fc, nil)
	}
}

func (p *Platform) fence(f present.Fence) (vk.Fence, error) {
	fc, ok := p.fences.get(uint64(f))
	if !ok {
		return fc, fmt.Errorf("vkpresent: unknown fence %d", f)
	}
	return fc, nil
}

// timeout converts a timeout to nanoseconds, with zero or less
// meaning no timeout.
func timeout(d time.Duration) uint64 {
	if d <= 0 {
		return vk.MaxUint64
	}
	return uint64(d.Nanoseconds())
}

func (p *Platform) WaitFence(f present.Fence, d time.Duration) error {
	fc, err := p.fence(f)
	if err != nil {
		return err
	}
	return NewError(vk.WaitForFences(p.Device.Device, 1, []vk.Fence{fc}, vk.True, timeout(d)))
}

func (p *Platform) ResetFence(f present.Fence) error {
	fc, err := p.fence(f)
	if err != nil {
		return err
	}
	return NewError(vk.ResetFences(p.Device.Device, 1, []vk.Fence{fc}))
}

func (p *Platform) AcquireNextImage(ch present.Chain, d time.Duration, s present.Semaphore) (int, present.Statuses, error) {
	sc, ok := p.chains.get(uint64(ch))
	if !ok {
		return -1, present.Success, fmt.Errorf("vkpresent: unknown chain %d", ch)
	}
	sem, err := p.semaphore(s)
	if err != nil {
		return -1, present.Success, err
	}
	var idx uint32
	st, err := status(vk.AcquireNextImage(p.Device.Device, sc, timeout(d), sem, vk.NullFence, &idx))
	if err != nil {
		return -1, st, err
	}
	return int(idx), st, nil
}

func (p *Platform) Present(family int, ch present.Chain, idx int, wait present.Semaphore) (present.Statuses, error) {
	if uint32(family) != p.Device.QueueIndex {
		return present.Success, fmt.Errorf("vkpresent: no queue for family %d", family)
	}
	sc, ok := p.chains.get(uint64(ch))
	if !ok {
		return present.Success, fmt.Errorf("vkpresent: unknown chain %d", ch)
	}
	sem, err := p.semaphore(wait)
	if err != nil {
		return present.Success, err
	}
	return status(vk.QueuePresent(p.Device.Queue, &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{sem},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{sc},
		PImageIndices:      []uint32{uint32(idx)},
	}))
}

// Submit submits command buffers for the frame on the device queue.
// The commands wait on the acquire semaphore at the given stage and
// signal the render complete semaphore and the fence of the frame.
func (p *Platform) Submit(f *present.Frame, stage vk.PipelineStageFlagBits, cmds ...vk.CommandBuffer) error {
	acq, err := p.semaphore(f.Acquire)
	if err != nil {
		return err
	}
	done, err := p.semaphore(f.RenderComplete)
	if err != nil {
		return err
	}
	fc, err := p.fence(f.Fence)
	if err != nil {
		return err
	}
	return NewError(vk.QueueSubmit(p.Device.Queue, 1, []vk.SubmitInfo{{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{acq},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(stage)},
		CommandBufferCount:   uint32(len(cmds)),
		PCommandBuffers:      cmds,
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{done},
	}}, fc))
}

func (p *Platform) WaitIdle() error {
	return NewError(vk.DeviceWaitIdle(p.Device.Device))
}

// DestroySurface destroys the device and then the surface. Any object
// that was not destroyed is destroyed with the device.
func (p *Platform) DestroySurface() {
	p.Device.Destroy()
	if p.Surface != vk.NullSurface {
		vk.DestroySurface(p.GPU.Instance, p.Surface, nil)
		p.Surface = vk.NullSurface
	}
}

// Live returns the number of engine objects that have not been destroyed.
func (p *Platform) Live() int {
	return p.chains.len() + p.views.len() + p.sems.len() + p.fences.len()
}
