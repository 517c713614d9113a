// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkpresent

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	vk "github.com/goki/vulkan"
)

// Debug enables the Khronos validation layer when it is available.
var Debug = false

// GPU is a Vulkan instance and the physical device used for
// presentation.
type GPU struct {

	// Name is the application name reported to the driver.
	Name string

	Instance vk.Instance

	// PhysicalDevice is the first device reported by the instance.
	PhysicalDevice vk.PhysicalDevice

	Properties vk.PhysicalDeviceProperties

	// InstanceExts are the enabled instance extensions.
	InstanceExts []string

	// DeviceExts are the device extensions to enable on devices made
	// for this GPU.
	DeviceExts []string

	// ValidationLayers are the enabled validation layers.
	ValidationLayers []string
}

// NewGPU creates a Vulkan instance with the given instance extensions,
// typically those required by the window system, and selects the
// first physical device. Init must have been called.
func NewGPU(name string, instanceExts []string) (*GPU, error) {
	gp := &GPU{Name: name}
	gp.InstanceExts = append(gp.InstanceExts, instanceExts...)
	gp.DeviceExts = []string{"VK_KHR_swapchain"}
	platformDefaults(gp)
	if err := gp.initInstance(); err != nil {
		return nil, err
	}
	if err := gp.initPhysicalDevice(); err != nil {
		gp.Destroy()
		return nil, err
	}
	return gp, nil
}

func (gp *GPU) initInstance() error {
	if Debug {
		have, err := validationLayers()
		if err != nil {
			return err
		}
		if slices.Contains(have, "VK_LAYER_KHRONOS_validation") {
			gp.ValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}
		} else {
			slog.Warn("vulkan: validation layer not available")
		}
	}
	var inst vk.Instance
	err := NewError(vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			ApiVersion:         uint32(vk.MakeVersion(1, 2, 0)),
			ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
			PApplicationName:   safeString(gp.Name),
			PEngineName:        "present\x00",
		},
		EnabledExtensionCount:   uint32(len(gp.InstanceExts)),
		PpEnabledExtensionNames: safeStrings(gp.InstanceExts),
		EnabledLayerCount:       uint32(len(gp.ValidationLayers)),
		PpEnabledLayerNames:     safeStrings(gp.ValidationLayers),
	}, nil, &inst))
	if err != nil {
		return err
	}
	gp.Instance = inst
	return vk.InitInstance(inst)
}

func (gp *GPU) initPhysicalDevice() error {
	var count uint32
	if err := NewError(vk.EnumeratePhysicalDevices(gp.Instance, &count, nil)); err != nil {
		return err
	}
	if count == 0 {
		return errors.New("vulkan error: no GPU devices found")
	}
	gpus := make([]vk.PhysicalDevice, count)
	if err := NewError(vk.EnumeratePhysicalDevices(gp.Instance, &count, gpus)); err != nil {
		return err
	}
	// multiple GPUs are not supported
	gp.PhysicalDevice = gpus[0]
	vk.GetPhysicalDeviceProperties(gp.PhysicalDevice, &gp.Properties)
	gp.Properties.Deref()
	slog.Info("vulkan: using GPU", "name", vk.ToString(gp.Properties.DeviceName[:]))
	return nil
}

// DeviceName returns the name of the physical device.
func (gp *GPU) DeviceName() string {
	return vk.ToString(gp.Properties.DeviceName[:])
}

// Destroy destroys the instance. All devices and surfaces made from it
// must have been destroyed.
func (gp *GPU) Destroy() {
	if gp.Instance != nil {
		vk.DestroyInstance(gp.Instance, nil)
		gp.Instance = nil
	}
}

func validationLayers() ([]string, error) {
	var count uint32
	if err := NewError(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.LayerProperties, count)
	if err := NewError(vk.EnumerateInstanceLayerProperties(&count, list)); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, layer := range list {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// safeString returns s terminated with a null byte.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = safeString(s)
	}
	return out
}
