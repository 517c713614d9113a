// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkpresent

// registry maps engine handles to Vulkan objects. Handles are never
// reused, so a stale handle cannot alias a newer object.
type registry[T any] struct {
	next  uint64
	items map[uint64]T
}

func (r *registry[T]) add(v T) uint64 {
	if r.items == nil {
		r.items = map[uint64]T{}
	}
	r.next++
	r.items[r.next] = v
	return r.next
}

func (r *registry[T]) get(h uint64) (T, bool) {
	v, ok := r.items[h]
	return v, ok
}

// remove deletes the handle and returns its object.
func (r *registry[T]) remove(h uint64) (T, bool) {
	v, ok := r.items[h]
	if ok {
		delete(r.items, h)
	}
	return v, ok
}

func (r *registry[T]) len() int {
	return len(r.items)
}
