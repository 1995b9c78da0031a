//go:build windows

package webgpu

import (
	"math/bits"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// maxPooled caps the idle buffers kept per size class and usage.
const maxPooled = 8

type poolKey struct {
	class int // log2 of the rounded-up size
	usage wgpu.BufferUsage
}

// bufferPool reuses storage buffers between kernel launches. Sizes are
// rounded up to a power of two so that transposes of similar shapes share buffers.
type bufferPool struct {
	device *wgpu.Device

	mu   sync.Mutex
	idle map[poolKey][]*wgpu.Buffer

	hits, misses uint64
}

func newBufferPool(device *wgpu.Device) *bufferPool {
	return &bufferPool{device: device, idle: make(map[poolKey][]*wgpu.Buffer)}
}

func sizeClass(size uint64) int {
	if size <= 4 {
		return 2
	}
	return bits.Len64(size - 1)
}

// acquire returns a buffer of at least size bytes with the given usage.
func (p *bufferPool) acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	key := poolKey{class: sizeClass(size), usage: usage}

	p.mu.Lock()
	defer p.mu.Unlock()
	if list := p.idle[key]; len(list) > 0 {
		buf := list[len(list)-1]
		p.idle[key] = list[:len(list)-1]
		p.hits++
		return buf
	}
	p.misses++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  uint64(1) << key.class,
	})
}

// release returns buf, acquired with size and usage, to the pool.
func (p *bufferPool) release(buf *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	key := poolKey{class: sizeClass(size), usage: usage}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.idle[key]) >= maxPooled {
		buf.Release()
		return
	}
	p.idle[key] = append(p.idle[key], buf)
}

// clear releases every idle buffer.
func (p *bufferPool) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, list := range p.idle {
		for _, buf := range list {
			buf.Release()
		}
		delete(p.idle, key)
	}
}

// stats returns the pool hit and miss counters.
func (p *bufferPool) stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}
