package main

import (
	"fmt"

	"github.com/neurlang/wayland/wl"
	"golang.org/x/sys/unix"
)

// Buffer is one shared memory pixel buffer plus its busy state
// A buffer is busy from the moment it gets committed until the compositor
// sends its release event
type Buffer struct {
	wlBuffer *wl.Buffer
	data     []byte
	width    int32
	height   int32
	stride   int32
	busy     bool
}

// Data is the mapped pixel memory of the buffer
func (b *Buffer) Data() []byte { return b.data }

// HandleBufferRelease marks the buffer reusable again
// Implements wl.BufferReleaseHandler
func (b *Buffer) HandleBufferRelease(wl.BufferReleaseEvent) {
	b.busy = false
}

type bufferAllocator interface {
	allocate(width, height, stride int32) (*Buffer, error)
	free(*Buffer)
}

// shmAllocator backs buffers with memfd memory shared with the compositor
// through wl_shm pools
type shmAllocator struct {
	shm *wl.Shm
}

func (a *shmAllocator) allocate(width, height, stride int32) (*Buffer, error) {
	size := int(height * stride)
	fd, err := unix.MemfdCreate("gayshell-buffer", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("failed to create memfd: %w", err)
	}
	// The compositor keeps its own reference through the pool, and the
	// mapping keeps ours, so the fd can go right away
	defer unix.Close(fd)
	if err = unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, fmt.Errorf("failed to size memfd to %d bytes: %w", size, err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map memfd: %w", err)
	}
	pool, err := a.shm.CreatePool(uintptr(fd), int32(size))
	if err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("failed to create shm pool: %w", err)
	}
	wlBuffer, err := pool.CreateBuffer(0, width, height, stride, wl.ShmFormatXrgb8888)
	// The buffer keeps the pool memory alive, the pool object itself can go
	pool.Destroy()
	if err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("failed to create shm buffer: %w", err)
	}
	buffer := &Buffer{
		wlBuffer: wlBuffer,
		data:     data,
		width:    width,
		height:   height,
		stride:   stride,
	}
	wlBuffer.AddReleaseHandler(buffer)
	return buffer, nil
}

func (a *shmAllocator) free(b *Buffer) {
	if b.data != nil {
		_ = unix.Munmap(b.data)
		b.data = nil
	}
	if b.wlBuffer != nil {
		b.wlBuffer.Destroy()
		b.wlBuffer = nil
	}
}

// BufferPool owns the buffers of one background surface
// It hands out released buffers of the right geometry and drops stale ones
type BufferPool struct {
	alloc   bufferAllocator
	buffers []*Buffer
}

func newBufferPool(alloc bufferAllocator) *BufferPool {
	return &BufferPool{alloc: alloc}
}

// Acquire returns a non-busy buffer of exactly the requested geometry,
// allocating one if nothing in the pool fits
// Released buffers whose geometry no longer matches are freed on the way,
// busy ones stay in the pool untouched until the compositor lets go of them
func (p *BufferPool) Acquire(width, height, stride int32) (*Buffer, error) {
	kept := p.buffers[:0]
	var match *Buffer
	for _, b := range p.buffers {
		stale := b.width != width || b.height != height || b.stride != stride
		if stale && !b.busy {
			p.alloc.free(b)
			continue
		}
		kept = append(kept, b)
		if match == nil && !b.busy && !stale {
			match = b
		}
	}
	p.buffers = kept
	if match != nil {
		return match, nil
	}
	b, err := p.alloc.allocate(width, height, stride)
	if err != nil {
		return nil, err
	}
	p.buffers = append(p.buffers, b)
	return b, nil
}

// Size is the number of buffers currently owned by the pool
func (p *BufferPool) Size() int { return len(p.buffers) }

// Stride of an XRGB8888 row, 4 bytes per pixel
func xrgbStride(width int32) int32 { return width * 4 }
