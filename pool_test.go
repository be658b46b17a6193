package main

import (
	"errors"
	"testing"

	"github.com/neurlang/wayland/wl"
)

type fakeAllocator struct {
	allocated int
	freed     int
	failNext  bool
}

func (a *fakeAllocator) allocate(width, height, stride int32) (*Buffer, error) {
	if a.failNext {
		return nil, errors.New("out of memory")
	}
	a.allocated++
	return &Buffer{
		data:   make([]byte, int(height*stride)),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

func (a *fakeAllocator) free(b *Buffer) {
	a.freed++
}

func TestPoolReusesReleasedBuffer(t *testing.T) {
	alloc := &fakeAllocator{}
	pool := newBufferPool(alloc)

	first, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	first.busy = true
	first.HandleBufferRelease(wl.BufferReleaseEvent{})
	if first.busy {
		t.Errorf("release event did not clear the busy flag")
	}

	second, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	if second != first {
		t.Errorf("expected the released buffer to be reused")
	}
	if alloc.allocated != 1 {
		t.Errorf("expected 1 allocation, got %d", alloc.allocated)
	}
}

func TestPoolNeverHandsOutBusyBuffer(t *testing.T) {
	alloc := &fakeAllocator{}
	pool := newBufferPool(alloc)

	first, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	first.busy = true

	second, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	if second == first {
		t.Errorf("a busy buffer must never be handed out again")
	}
	if alloc.allocated != 2 {
		t.Errorf("expected 2 allocations, got %d", alloc.allocated)
	}
	if pool.Size() != 2 {
		t.Errorf("expected the pool to hold both buffers, got %d", pool.Size())
	}
}

func TestPoolDropsStaleReleasedBuffers(t *testing.T) {
	alloc := &fakeAllocator{}
	pool := newBufferPool(alloc)

	first, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	_ = first // released and stale once the size changes

	second, err := pool.Acquire(1024, 768, xrgbStride(1024))
	if err != nil {
		t.Fatalf("acquire after resize failed: %v", err)
	}
	if second.width != 1024 || second.height != 768 {
		t.Errorf("got a %dx%d buffer after resize", second.width, second.height)
	}
	if alloc.freed != 1 {
		t.Errorf("expected the stale buffer to be freed, freed %d", alloc.freed)
	}
	if pool.Size() != 1 {
		t.Errorf("expected only the new buffer in the pool, got %d", pool.Size())
	}
}

func TestPoolKeepsStaleBusyBuffers(t *testing.T) {
	alloc := &fakeAllocator{}
	pool := newBufferPool(alloc)

	first, err := pool.Acquire(800, 600, xrgbStride(800))
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	first.busy = true

	if _, err := pool.Acquire(1024, 768, xrgbStride(1024)); err != nil {
		t.Fatalf("acquire after resize failed: %v", err)
	}
	if alloc.freed != 0 {
		t.Errorf("a busy buffer was freed while the compositor may still read it")
	}
	if pool.Size() != 2 {
		t.Errorf("expected both buffers in the pool, got %d", pool.Size())
	}

	// Once released, the stale one ages out on the next acquire
	first.HandleBufferRelease(wl.BufferReleaseEvent{})
	if _, err := pool.Acquire(1024, 768, xrgbStride(1024)); err != nil {
		t.Fatalf("third acquire failed: %v", err)
	}
	if alloc.freed != 1 {
		t.Errorf("expected the stale buffer to be freed after release, freed %d", alloc.freed)
	}
}

func TestPoolReportsAllocationFailure(t *testing.T) {
	alloc := &fakeAllocator{failNext: true}
	pool := newBufferPool(alloc)

	if _, err := pool.Acquire(800, 600, xrgbStride(800)); err == nil {
		t.Errorf("expected an error when allocation fails")
	}
	if pool.Size() != 0 {
		t.Errorf("a failed allocation must not leave buffers in the pool, got %d", pool.Size())
	}
}
