// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkpresent

import (
	"fmt"

	"cogentcore.org/present"
	vk "github.com/goki/vulkan"
)

// NewError returns an error for a non-success Vulkan result, or nil.
// Device loss, surface loss and memory exhaustion wrap the
// corresponding present errors.
func NewError(ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	var kind error
	switch ret {
	case vk.ErrorDeviceLost:
		kind = present.ErrDeviceLost
	case vk.ErrorSurfaceLost:
		kind = present.ErrSurfaceLost
	case vk.ErrorOutOfHostMemory, vk.ErrorOutOfDeviceMemory:
		kind = present.ErrOutOfMemory
	case vk.Timeout, vk.NotReady:
		kind = present.ErrTimeout
	}
	msg := "unknown result"
	if err := vk.Error(ret); err != nil {
		msg = err.Error()
	}
	if kind != nil {
		return fmt.Errorf("vulkan error: %s (%d): %w", msg, ret, kind)
	}
	return fmt.Errorf("vulkan error: %s (%d)", msg, ret)
}

// status converts the result of an acquire or present into a status,
// or an error if it is not one of the statuses.
func status(ret vk.Result) (present.Statuses, error) {
	switch ret {
	case vk.Success:
		return present.Success, nil
	case vk.Suboptimal:
		return present.Suboptimal, nil
	case vk.ErrorOutOfDate:
		return present.OutOfDate, nil
	case vk.Timeout:
		return present.Timeout, nil
	case vk.NotReady:
		return present.NotReady, nil
	}
	return present.Success, NewError(ret)
}
