// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the device and surface cannot be used
	// together in the way the engine requires. It is fatal.
	ErrConfiguration = errors.New("present: configuration error")

	// ErrDeviceLost means the device is no longer usable.
	ErrDeviceLost = errors.New("present: device lost")

	// ErrSurfaceLost means the surface is no longer usable.
	ErrSurfaceLost = errors.New("present: surface lost")

	// ErrOutOfMemory means the platform could not allocate a resource.
	ErrOutOfMemory = errors.New("present: out of memory")

	// ErrTimeout means an image did not become available in time.
	// It is fatal and distinct from a stale surface.
	ErrTimeout = errors.New("present: timeout")

	// ErrInvalidState means an operation was called in a state that
	// does not allow it.
	ErrInvalidState = errors.New("present: invalid state")

	// ErrZeroExtent means the surface currently has zero area, as a
	// minimized window does. Recreate again once it has a size.
	ErrZeroExtent = errors.New("present: zero extent")
)

// ConfigError is a fatal error that occurs while negotiating or
// building resources. It matches [ErrConfiguration] with [errors.Is],
// and also matches its underlying error.
type ConfigError struct {

	// Op is the step that failed.
	Op string

	// Err is the underlying reason.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("present: configuration error: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// configErr returns a [ConfigError] for op wrapping err, or nil if err
// is nil. Device loss is passed through unchanged so that callers can
// tell it apart from a configuration problem.
func configErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDeviceLost) || errors.Is(err, ErrSurfaceLost) {
		return fmt.Errorf("present: %s: %w", op, err)
	}
	return &ConfigError{Op: op, Err: err}
}

func stateErr(op string, st States) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidState, op, st)
}
