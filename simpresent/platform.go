// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simpresent provides a deterministic simulated device and
// surface implementing [present.Platform]. It records every call and
// checks the synchronization rules a real driver would silently break
// on: semaphores signaled twice or waited on while unsignaled, fences
// reused without being reset, chains destroyed before the chain that
// replaces them exists, and so on. Broken rules are recorded as
// violations instead of failing.
package simpresent

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"cogentcore.org/present"
)

// Call is one recorded call on the platform.
type Call struct {

	// Op is the name of the method.
	Op string

	// Handle is the main object of the call, such as the chain, fence
	// or semaphore.
	Handle uint64

	// Arg is a secondary argument, such as the old chain or the image index.
	Arg uint64
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%d, %d)", c.Op, c.Handle, c.Arg)
}

type fenceStates int

const (
	fenceUnsignaled fenceStates = iota
	fencePending
	fenceSignaled
)

type chain struct {
	id       present.Chain
	cfg      present.Configuration
	images   []present.Image
	acquired []bool
	next     int

	// outOfDate is set when the surface changes after creation.
	outOfDate bool

	// retired is set once another chain has been created from it.
	retired bool
}

type image struct {
	chain present.Chain
	index int
}

// Platform is a simulated [present.Platform]. It is safe for use from
// multiple goroutines, so that a window or file watcher can
// reconfigure it while frames are rendered.
type Platform struct {
	mu      sync.Mutex
	profile *Profile
	extent  present.Extent
	next    uint64

	sems   map[present.Semaphore]bool
	fences map[present.Fence]fenceStates
	chains map[present.Chain]*chain
	images map[present.Image]image
	views  map[present.ImageView]present.Image

	current present.Chain

	acquires      int
	acquireStatus []present.Statuses
	presentStatus []present.Statuses
	fail          map[string]error

	deviceLost bool
	destroyed  bool

	calls      []Call
	violations []string
}

// New returns a new platform simulating the given profile. The
// profile is copied.
func New(pr *Profile) *Platform {
	p := &Platform{
		sems:   map[present.Semaphore]bool{},
		fences: map[present.Fence]fenceStates{},
		chains: map[present.Chain]*chain{},
		images: map[present.Image]image{},
		views:  map[present.ImageView]present.Image{},
		fail:   map[string]error{},
	}
	p.setProfile(pr)
	return p
}

func (p *Platform) setProfile(pr *Profile) {
	p.profile = pr.Clone()
	p.extent = pr.CurrentExtent
}

// Profile returns a copy of the simulated profile.
func (p *Platform) Profile() *Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile.Clone()
}

// Resize changes the size of the simulated window. The current chain
// becomes out of date.
func (p *Platform) Resize(ex present.Extent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resize(ex)
}

func (p *Platform) resize(ex present.Extent) {
	p.extent = ex
	if ch := p.chains[p.current]; ch != nil {
		ch.outOfDate = true
	}
}

// Reconfigure replaces the simulated profile, as happens when a window
// moves to another display. The current chain becomes out of date.
// Scripted events of the new profile count from the next acquire.
func (p *Platform) Reconfigure(pr *Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setProfile(pr)
	p.acquires = 0
	if ch := p.chains[p.current]; ch != nil {
		ch.outOfDate = true
	}
}

// InjectAcquire makes a following acquire return the given status.
func (p *Platform) InjectAcquire(st present.Statuses) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquireStatus = append(p.acquireStatus, st)
}

// InjectPresent makes a following present return the given status.
func (p *Platform) InjectPresent(st present.Statuses) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.presentStatus = append(p.presentStatus, st)
}

// Fail makes the next call of the named method return err.
func (p *Platform) Fail(op string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[op] = err
}

// LoseDevice makes every following device call fail with
// [present.ErrDeviceLost].
func (p *Platform) LoseDevice() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deviceLost = true
}

// Calls returns a copy of the recorded calls, in order.
func (p *Platform) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.calls)
}

// Count returns the number of recorded calls of the named method.
func (p *Platform) Count(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ResetCalls clears the recorded calls.
func (p *Platform) ResetCalls() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}

// Violations returns the synchronization and lifetime rules that were
// broken, in order.
func (p *Platform) Violations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.violations)
}

// Live returns the number of objects that have been created and not
// destroyed.
func (p *Platform) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sems) + len(p.fences) + len(p.chains) + len(p.views)
}

// SurfaceDestroyed returns whether DestroySurface has been called.
func (p *Platform) SurfaceDestroyed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroyed
}

func (p *Platform) record(op string, handle, arg uint64) {
	p.calls = append(p.calls, Call{Op: op, Handle: handle, Arg: arg})
}

func (p *Platform) violate(format string, args ...any) {
	p.violations = append(p.violations, fmt.Sprintf(format, args...))
}

func (p *Platform) handle() uint64 {
	p.next++
	return p.next
}

// check returns an injected failure for op, or the error for a lost
// device or destroyed surface.
func (p *Platform) check(op string) error {
	if err, ok := p.fail[op]; ok {
		delete(p.fail, op)
		return err
	}
	if p.deviceLost {
		return fmt.Errorf("simpresent: %s: %w", op, present.ErrDeviceLost)
	}
	if p.destroyed {
		return fmt.Errorf("simpresent: %s: %w", op, present.ErrSurfaceLost)
	}
	return nil
}

func (p *Platform) QueueFamilies() ([]present.QueueFamily, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("QueueFamilies", 0, 0)
	if err := p.check("QueueFamilies"); err != nil {
		return nil, err
	}
	return slices.Clone(p.profile.QueueFamilies), nil
}

func (p *Platform) SurfaceFormats() ([]present.SurfaceFormat, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SurfaceFormats", 0, 0)
	if err := p.check("SurfaceFormats"); err != nil {
		return nil, err
	}
	return slices.Clone(p.profile.Formats), nil
}

func (p *Platform) PresentModes() ([]present.PresentModes, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("PresentModes", 0, 0)
	if err := p.check("PresentModes"); err != nil {
		return nil, err
	}
	return slices.Clone(p.profile.PresentModes), nil
}

func (p *Platform) SurfaceCapabilities() (present.Capabilities, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SurfaceCapabilities", 0, 0)
	if err := p.check("SurfaceCapabilities"); err != nil {
		return present.Capabilities{}, err
	}
	pr := p.profile
	caps := present.Capabilities{
		MinImageCount:       pr.MinImageCount,
		MaxImageCount:       pr.MaxImageCount,
		CurrentExtent:       p.extent,
		MinExtent:           pr.MinExtent,
		MaxExtent:           pr.MaxExtent,
		SupportedTransforms: slices.Clone(pr.SupportedTransforms),
		CurrentTransform:    pr.CurrentTransform,
		CompositeAlphas:     slices.Clone(pr.CompositeAlphas),
		TransferDst:         pr.TransferDst,
	}
	if pr.UndefinedExtent {
		caps.CurrentExtent = present.Extent{Width: present.UndefinedExtent, Height: present.UndefinedExtent}
	}
	return caps, nil
}

func (p *Platform) CreateChain(cfg *present.Configuration, family int, old present.Chain) (present.Chain, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check("CreateChain"); err != nil {
		p.record("CreateChain", 0, uint64(old))
		// a failed creation still retires the old chain
		if oc := p.chains[old]; oc != nil {
			oc.retired = true
			p.current = 0
		}
		return 0, err
	}
	pr := p.profile
	if old != p.current {
		p.violate("create chain: old chain %d is not the current chain %d", old, p.current)
	}
	if oc := p.chains[old]; old != 0 && oc == nil {
		p.violate("create chain: old chain %d does not exist", old)
	}
	if cfg.ImageCount < pr.MinImageCount || (pr.MaxImageCount > 0 && cfg.ImageCount > pr.MaxImageCount) {
		p.violate("create chain: image count %d outside [%d, %d]", cfg.ImageCount, pr.MinImageCount, pr.MaxImageCount)
	}
	if !pr.supportsFormat(cfg.SurfaceFormat()) {
		p.violate("create chain: unsupported format %s", cfg.SurfaceFormat())
	}
	if !slices.Contains(pr.PresentModes, cfg.PresentMode) {
		p.violate("create chain: unsupported present mode %s", cfg.PresentMode)
	}
	if !slices.Contains(pr.SupportedTransforms, cfg.PreTransform) {
		p.violate("create chain: unsupported transform %s", cfg.PreTransform)
	}
	if cfg.Extent.HasZeroArea() {
		p.violate("create chain: zero extent")
	}
	if !pr.UndefinedExtent && cfg.Extent != p.extent {
		p.violate("create chain: extent %s does not match surface extent %s", cfg.Extent, p.extent)
	}
	if !pr.familyPresents(family) {
		p.violate("create chain: queue family %d cannot present", family)
	}
	n := cfg.ImageCount
	if pr.ClampImageCount > 0 {
		n = pr.ClampImageCount
	}
	ch := &chain{id: present.Chain(p.handle()), cfg: *cfg, acquired: make([]bool, n)}
	for i := range n {
		img := present.Image(p.handle())
		ch.images = append(ch.images, img)
		p.images[img] = image{chain: ch.id, index: i}
	}
	if oc := p.chains[old]; oc != nil {
		oc.retired = true
	}
	p.chains[ch.id] = ch
	p.current = ch.id
	p.record("CreateChain", uint64(ch.id), uint64(old))
	return ch.id, nil
}

func (pr *Profile) supportsFormat(sf present.SurfaceFormat) bool {
	if len(pr.Formats) == 1 && pr.Formats[0].Format == present.Undefined {
		return sf.ColorSpace == pr.Formats[0].ColorSpace
	}
	return slices.Contains(pr.Formats, sf)
}

func (pr *Profile) familyPresents(family int) bool {
	for _, f := range pr.QueueFamilies {
		if f.Index == family {
			return f.Present
		}
	}
	return false
}

func (p *Platform) ChainImages(id present.Chain) ([]present.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ChainImages", uint64(id), 0)
	if err := p.check("ChainImages"); err != nil {
		return nil, err
	}
	ch := p.chains[id]
	if ch == nil {
		p.violate("chain images: chain %d does not exist", id)
		return nil, fmt.Errorf("simpresent: chain %d does not exist", id)
	}
	return slices.Clone(ch.images), nil
}

func (p *Platform) DestroyChain(id present.Chain) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DestroyChain", uint64(id), 0)
	ch := p.chains[id]
	if ch == nil {
		p.violate("destroy chain: chain %d does not exist", id)
		return
	}
	for v, img := range p.views {
		if p.images[img].chain == id {
			p.violate("destroy chain: chain %d destroyed before view %d", id, v)
		}
	}
	for _, img := range ch.images {
		delete(p.images, img)
	}
	delete(p.chains, id)
	if p.current == id {
		p.current = 0
	}
}

func (p *Platform) CreateImageView(img present.Image, format present.Formats) (present.ImageView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check("CreateImageView"); err != nil {
		p.record("CreateImageView", 0, uint64(img))
		return 0, err
	}
	im, ok := p.images[img]
	if !ok {
		p.violate("create view: image %d does not exist", img)
		return 0, fmt.Errorf("simpresent: image %d does not exist", img)
	}
	if cf := p.chains[im.chain].cfg.Format; cf != format {
		p.violate("create view: format %s does not match image format %s", format, cf)
	}
	v := present.ImageView(p.handle())
	p.views[v] = img
	p.record("CreateImageView", uint64(v), uint64(img))
	return v, nil
}

func (p *Platform) DestroyImageView(v present.ImageView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DestroyImageView", uint64(v), 0)
	if _, ok := p.views[v]; !ok {
		p.violate("destroy view: view %d does not exist", v)
		return
	}
	delete(p.views, v)
}

func (p *Platform) CreateSemaphore() (present.Semaphore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check("CreateSemaphore"); err != nil {
		p.record("CreateSemaphore", 0, 0)
		return 0, err
	}
	s := present.Semaphore(p.handle())
	p.sems[s] = false
	p.record("CreateSemaphore", uint64(s), 0)
	return s, nil
}

func (p *Platform) DestroySemaphore(s present.Semaphore) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DestroySemaphore", uint64(s), 0)
	if _, ok := p.sems[s]; !ok {
		p.violate("destroy semaphore: semaphore %d does not exist", s)
		return
	}
	delete(p.sems, s)
}

func (p *Platform) CreateFence(signaled bool) (present.Fence, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check("CreateFence"); err != nil {
		p.record("CreateFence", 0, 0)
		return 0, err
	}
	f := present.Fence(p.handle())
	p.fences[f] = fenceUnsignaled
	if signaled {
		p.fences[f] = fenceSignaled
	}
	p.record("CreateFence", uint64(f), 0)
	return f, nil
}

func (p *Platform) DestroyFence(f present.Fence) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DestroyFence", uint64(f), 0)
	st, ok := p.fences[f]
	if !ok {
		p.violate("destroy fence: fence %d does not exist", f)
		return
	}
	if st == fencePending {
		p.violate("destroy fence: fence %d has pending work", f)
	}
	delete(p.fences, f)
}

// WaitFence completes the work pending on the fence. Waiting on a
// fence with no pending work would never return, so it is reported
// as a violation and a timeout.
func (p *Platform) WaitFence(f present.Fence, timeout time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("WaitFence", uint64(f), 0)
	if err := p.check("WaitFence"); err != nil {
		return err
	}
	st, ok := p.fences[f]
	switch {
	case !ok:
		p.violate("wait fence: fence %d does not exist", f)
		return fmt.Errorf("simpresent: fence %d does not exist", f)
	case st == fenceUnsignaled:
		p.violate("wait fence: fence %d has no pending work and would never signal", f)
		return fmt.Errorf("simpresent: wait fence %d: %w", f, present.ErrTimeout)
	}
	p.fences[f] = fenceSignaled
	return nil
}

func (p *Platform) ResetFence(f present.Fence) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ResetFence", uint64(f), 0)
	if err := p.check("ResetFence"); err != nil {
		return err
	}
	st, ok := p.fences[f]
	switch {
	case !ok:
		p.violate("reset fence: fence %d does not exist", f)
		return fmt.Errorf("simpresent: fence %d does not exist", f)
	case st == fencePending:
		p.violate("reset fence: fence %d has pending work", f)
	}
	p.fences[f] = fenceUnsignaled
	return nil
}

func (p *Platform) AcquireNextImage(id present.Chain, timeout time.Duration, sem present.Semaphore) (int, present.Statuses, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("AcquireNextImage", uint64(id), uint64(sem))
	p.acquires++
	p.applyEvents(p.acquires)
	if err := p.check("AcquireNextImage"); err != nil {
		return -1, present.Success, err
	}
	ch := p.chains[id]
	if ch == nil {
		p.violate("acquire: chain %d does not exist", id)
		return -1, present.Success, fmt.Errorf("simpresent: chain %d does not exist", id)
	}
	signaled, ok := p.sems[sem]
	if !ok {
		p.violate("acquire: semaphore %d does not exist", sem)
		return -1, present.Success, fmt.Errorf("simpresent: semaphore %d does not exist", sem)
	}
	if ch.retired {
		p.violate("acquire: chain %d has been replaced", id)
		return -1, present.OutOfDate, nil
	}

	status := present.Success
	if len(p.acquireStatus) > 0 {
		status = p.acquireStatus[0]
		p.acquireStatus = p.acquireStatus[1:]
	}
	switch {
	case status == present.OutOfDate || status == present.Timeout || status == present.NotReady:
		return -1, status, nil
	case ch.outOfDate:
		return -1, present.OutOfDate, nil
	}

	idx := -1
	for i := range ch.images {
		j := (ch.next + i) % len(ch.images)
		if !ch.acquired[j] {
			idx = j
			break
		}
	}
	if idx < 0 {
		if timeout <= 0 {
			p.violate("acquire: all %d images of chain %d are acquired and the wait would never return", len(ch.images), id)
		}
		return -1, present.Timeout, nil
	}
	if signaled {
		p.violate("acquire: semaphore %d signaled twice", sem)
	}
	p.sems[sem] = true
	ch.acquired[idx] = true
	ch.next = (idx + 1) % len(ch.images)
	return idx, status, nil
}

func (p *Platform) applyEvents(frame int) {
	for _, ev := range p.profile.Events {
		if ev.Frame != frame {
			continue
		}
		if ev.Resize != nil {
			p.resize(*ev.Resize)
		}
		if ev.Acquire != present.Success {
			p.acquireStatus = append(p.acquireStatus, ev.Acquire)
		}
		if ev.Present != present.Success {
			p.presentStatus = append(p.presentStatus, ev.Present)
		}
		if ev.DeviceLost {
			p.deviceLost = true
		}
	}
}

// Present consumes the wait semaphore and releases the image, whatever
// the returned status.
func (p *Platform) Present(family int, id present.Chain, idx int, wait present.Semaphore) (present.Statuses, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("Present", uint64(id), uint64(idx))
	if err := p.check("Present"); err != nil {
		return present.Success, err
	}
	if !p.profile.familyPresents(family) {
		p.violate("present: queue family %d cannot present", family)
	}
	ch := p.chains[id]
	if ch == nil {
		p.violate("present: chain %d does not exist", id)
		return present.Success, fmt.Errorf("simpresent: chain %d does not exist", id)
	}
	if idx < 0 || idx >= len(ch.images) || !ch.acquired[idx] {
		p.violate("present: image %d of chain %d is not acquired", idx, id)
		return present.Success, fmt.Errorf("simpresent: image %d is not acquired", idx)
	}
	signaled, ok := p.sems[wait]
	switch {
	case !ok:
		p.violate("present: semaphore %d does not exist", wait)
	case !signaled:
		p.violate("present: wait on unsignaled semaphore %d", wait)
	default:
		p.sems[wait] = false
	}
	ch.acquired[idx] = false

	if len(p.presentStatus) > 0 {
		st := p.presentStatus[0]
		p.presentStatus = p.presentStatus[1:]
		return st, nil
	}
	if ch.outOfDate {
		return present.OutOfDate, nil
	}
	return present.Success, nil
}

// WaitIdle completes all pending work.
func (p *Platform) WaitIdle() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("WaitIdle", 0, 0)
	err := p.check("WaitIdle")
	if err != nil && !p.deviceLost {
		return err
	}
	// work on a lost device never completes, but it is no longer pending
	for f, st := range p.fences {
		if st == fencePending {
			p.fences[f] = fenceSignaled
		}
	}
	return err
}

func (p *Platform) DestroySurface() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DestroySurface", 0, 0)
	if p.destroyed {
		p.violate("destroy surface: surface already destroyed")
	}
	if n := len(p.chains); n > 0 {
		p.violate("destroy surface: %d chains still exist", n)
	}
	p.destroyed = true
}

// Submit simulates rendering work for the frame being submitted to the
// GPU queue: it waits on the acquire semaphore, and signals the render
// complete semaphore and the fence once the work completes.
// Its signature matches [present.SubmitFunc].
func (p *Platform) Submit(f *present.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("Submit", uint64(f.Fence), uint64(f.Image))
	if err := p.check("Submit"); err != nil {
		return err
	}
	if signaled, ok := p.sems[f.Acquire]; !ok || !signaled {
		p.violate("submit: wait on unsignaled semaphore %d", f.Acquire)
	} else {
		p.sems[f.Acquire] = false
	}
	switch signaled, ok := p.sems[f.RenderComplete]; {
	case !ok:
		p.violate("submit: semaphore %d does not exist", f.RenderComplete)
	case signaled:
		p.violate("submit: semaphore %d signaled twice", f.RenderComplete)
	default:
		p.sems[f.RenderComplete] = true
	}
	st, ok := p.fences[f.Fence]
	switch {
	case !ok:
		p.violate("submit: fence %d does not exist", f.Fence)
		return fmt.Errorf("simpresent: fence %d does not exist", f.Fence)
	case st == fenceSignaled:
		p.violate("submit: fence %d was not reset", f.Fence)
	case st == fencePending:
		p.violate("submit: fence %d already has pending work", f.Fence)
	}
	p.fences[f.Fence] = fencePending
	return nil
}
