//go:build windows

package webgpu

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

// Device owns one WebGPU adapter, its queue and the compiled kernels.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	name     string

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	pool *bufferPool
	run  sync.Mutex // one dispatch at a time on the queue
}

// New opens the high-performance adapter.
// Returns ErrUnavailable if the native library or an adapter is missing.
func New() (dev *Device, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			dev = nil
			err = errors.Wrapf(ErrUnavailable, "native library: %v", r)
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "create instance: %v", err)
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, errors.Wrapf(ErrUnavailable, "request adapter: %v", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, errors.Wrapf(ErrUnavailable, "request device: %v", err)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, errors.Wrap(ErrUnavailable, "no queue")
	}

	name := "WebGPU"
	if info, err := adapter.GetInfo(); err == nil && info != nil && info.Device != "" {
		name = "WebGPU (" + info.Device + ")"
	}

	return &Device{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		name:      name,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
		pool:      newBufferPool(device),
	}, nil
}

// IsAvailable reports whether a device can be opened.
func IsAvailable() bool {
	d, err := New()
	if err != nil {
		return false
	}
	d.Release()
	return true
}

// Name returns a human readable adapter name.
func (d *Device) Name() string {
	return d.name
}

// Release frees cached kernels, pooled buffers and the adapter.
// It waits for an in-flight dispatch to finish.
func (d *Device) Release() {
	d.run.Lock()
	defer d.run.Unlock()
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pool.clear()
	for name, p := range d.pipelines {
		p.Release()
		delete(d.pipelines, name)
	}
	for name, s := range d.shaders {
		s.Release()
		delete(d.shaders, name)
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}

// pipeline compiles code once and returns the cached compute pipeline for name.
func (d *Device) pipeline(name, code string) *wgpu.ComputePipeline {
	d.mu.RLock()
	if p, ok := d.pipelines[name]; ok {
		d.mu.RUnlock()
		return p
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pipelines[name]; ok {
		return p
	}
	shader := d.device.CreateShaderModuleWGSL(code)
	d.shaders[name] = shader
	// Auto layout (nil layout)
	p := d.device.CreateComputePipelineSimple(nil, shader, "main")
	d.pipelines[name] = p
	return p
}

// upload copies data into a pooled storage buffer.
func (d *Device) upload(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	buf := d.pool.acquire(uint64(len(data)), usage|wgpu.BufferUsageCopyDst)
	staging := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageCopySrc,
		Size:             uint64(len(data)),
		MappedAtCreation: wgpu.True,
	})
	defer staging.Release()

	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(staging.GetMappedRange(0, uint64(len(data)))), len(data)), data)
	staging.Unmap()

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(staging, 0, buf, 0, uint64(len(data)))
	d.queue.Submit(encoder.Finish(nil))
	return buf
}

// uniform creates a 16-byte aligned uniform buffer holding data.
func (d *Device) uniform(data []byte) *wgpu.Buffer {
	size := (uint64(len(data)) + 15) &^ 15
	buf := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(buf.GetMappedRange(0, size)), size), data)
	buf.Unmap()
	return buf
}

// download copies size bytes of src into dst through a mappable staging buffer.
func (d *Device) download(dst []byte, src *wgpu.Buffer) error {
	size := uint64(len(dst))
	staging := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	d.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(d.device, wgpu.MapModeRead, 0, size); err != nil {
		return errors.Wrap(err, "webgpu: map staging buffer")
	}
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(dst, unsafe.Slice((*byte)(staging.GetMappedRange(0, size)), size))
	staging.Unmap()
	return nil
}
