// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// Options control the buffering policy of an [Engine].
type Options struct {

	// FramesInFlight is the number of frames the CPU may record ahead
	// of the GPU. It is independent of the swap image count.
	FramesInFlight int `default:"2" min:"1"`

	// DesiredImages is the number of swap images to ask for when more
	// than the minimum plus one is wanted. It is always capped by the
	// surface maximum. Zero uses the minimum plus one.
	DesiredImages int

	// AcquireTimeout bounds how long acquiring an image may block.
	// Zero or less waits indefinitely.
	AcquireTimeout time.Duration

	// FenceTimeout bounds how long waiting for a frame slot may block.
	// Zero or less waits indefinitely.
	FenceTimeout time.Duration
}

// DefaultOptions returns new options with default values.
func DefaultOptions() *Options {
	o := &Options{}
	errors.Log(reflectx.SetFromDefaultTags(o))
	return o
}

func (o *Options) framesInFlight() int {
	return max(o.FramesInFlight, 1)
}
