// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkpresent

import (
	vk "github.com/goki/vulkan"
)

// Device holds a logical device and its one queue, used for both
// graphics and presentation.
type Device struct {

	// Device is the logical device.
	Device vk.Device

	// QueueIndex is the queue family index of Queue.
	QueueIndex uint32

	Queue vk.Queue
}

// makeDevice creates the logical device with one queue from the given
// family.
func (dv *Device) makeDevice(gp *GPU, family uint32) error {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: family,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	var device vk.Device
	err := NewError(vk.CreateDevice(gp.PhysicalDevice, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(gp.DeviceExts)),
		PpEnabledExtensionNames: safeStrings(gp.DeviceExts),
		EnabledLayerCount:       uint32(len(gp.ValidationLayers)),
		PpEnabledLayerNames:     safeStrings(gp.ValidationLayers),
	}, nil, &device))
	if err != nil {
		return err
	}
	dv.Device = device
	dv.QueueIndex = family

	var queue vk.Queue
	vk.GetDeviceQueue(dv.Device, dv.QueueIndex, 0, &queue)
	dv.Queue = queue
	return nil
}

// Destroy waits for the device to be idle and destroys it.
func (dv *Device) Destroy() {
	if dv.Device == nil {
		return
	}
	vk.DeviceWaitIdle(dv.Device)
	vk.DestroyDevice(dv.Device, nil)
	dv.Device = nil
}
