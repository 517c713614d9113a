// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkpresent

import (
	"image/color"
	"unsafe"

	"cogentcore.org/core/colors"
	"cogentcore.org/present"
	vk "github.com/goki/vulkan"
)

// ClearRenderer renders frames by clearing the acquired image to a
// color. It needs a configuration with TransferDst usage.
type ClearRenderer struct {
	Platform *Platform

	// Color returns the clear color for the given frame number.
	// It defaults to stepping through [colors.Spaced] once a second
	// at 60 frames per second.
	Color func(frame int) color.Color

	pool vk.CommandPool
	cmds []vk.CommandBuffer

	// frames is the number of frames submitted.
	frames int
}

// NewClearRenderer makes a renderer with one command buffer per frame
// slot.
func NewClearRenderer(p *Platform, slots int) (*ClearRenderer, error) {
	cr := &ClearRenderer{Platform: p}
	cr.Color = func(frame int) color.Color {
		return colors.Spaced(frame / 60)
	}
	err := NewError(vk.CreateCommandPool(p.Device.Device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: p.Device.QueueIndex,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
	}, nil, &cr.pool))
	if err != nil {
		return nil, err
	}
	cr.cmds = make([]vk.CommandBuffer, slots)
	err = NewError(vk.AllocateCommandBuffers(p.Device.Device, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        cr.pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(slots),
	}, cr.cmds))
	if err != nil {
		vk.DestroyCommandPool(p.Device.Device, cr.pool, nil)
		return nil, err
	}
	return cr, nil
}

// Submit records and submits the clear for the frame. It is a
// [present.SubmitFunc].
func (cr *ClearRenderer) Submit(f *present.Frame) error {
	cmd := cr.cmds[f.Slot%len(cr.cmds)]
	img := cr.Platform.Image(f.Target)
	if err := NewError(vk.ResetCommandBuffer(cmd, 0)); err != nil {
		return err
	}
	err := NewError(vk.BeginCommandBuffer(cmd, &vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}))
	if err != nil {
		return err
	}
	barrier(cmd, img, vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal,
		0, vk.AccessFlags(vk.AccessTransferWriteBit),
		vk.PipelineStageTransferBit, vk.PipelineStageTransferBit)

	clear := vk.ClearColorValue{}
	rgba := (*[4]float32)(unsafe.Pointer(&clear))
	*rgba = floats(cr.Color(cr.frames))
	vk.CmdClearColorImage(cmd, img, vk.ImageLayoutTransferDstOptimal, &clear, 1, []vk.ImageSubresourceRange{colorRange})

	barrier(cmd, img, vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutPresentSrc,
		vk.AccessFlags(vk.AccessTransferWriteBit), 0,
		vk.PipelineStageTransferBit, vk.PipelineStageBottomOfPipeBit)
	if err := NewError(vk.EndCommandBuffer(cmd)); err != nil {
		return err
	}
	cr.frames++
	return cr.Platform.Submit(f, vk.PipelineStageTransferBit, cmd)
}

// Destroy frees the command buffers. The device must be idle.
func (cr *ClearRenderer) Destroy() {
	if cr.cmds == nil {
		return
	}
	vk.FreeCommandBuffers(cr.Platform.Device.Device, cr.pool, uint32(len(cr.cmds)), cr.cmds)
	vk.DestroyCommandPool(cr.Platform.Device.Device, cr.pool, nil)
	cr.cmds = nil
}

func barrier(cmd vk.CommandBuffer, img vk.Image, from, to vk.ImageLayout, srcAccess, dstAccess vk.AccessFlags, srcStage, dstStage vk.PipelineStageFlagBits) {
	vk.CmdPipelineBarrier(cmd, vk.PipelineStageFlags(srcStage), vk.PipelineStageFlags(dstStage), 0, 0, nil, 0, nil, 1, []vk.ImageMemoryBarrier{{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       srcAccess,
		DstAccessMask:       dstAccess,
		OldLayout:           from,
		NewLayout:           to,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               img,
		SubresourceRange:    colorRange,
	}})
}

// floats converts a color to normalized premultiplied components.
func floats(c color.Color) [4]float32 {
	r, g, b, a := c.RGBA()
	return [4]float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
}
