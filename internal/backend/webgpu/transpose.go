//go:build windows

package webgpu

import (
	"encoding/binary"
	"unsafe"

	"github.com/binbinmeng/MatX/internal/stream"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

// transposeShader swaps the last two dimensions of a batch of row-major
// matrices. global_id.z walks the batch.
const transposeShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    rows: u32,
    cols: u32,
    batch: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(16, 16, 1)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let row = global_id.y;
    let col = global_id.x;
    let b = global_id.z;

    if (row >= params.rows || col >= params.cols || b >= params.batch) {
        return;
    }

    let base = b * params.rows * params.cols;
    result[base + col * params.rows + row] = input[base + row * params.cols + col];
}
`

const transposeTile = 16

// TransposeFloat32 swaps the last two dimensions of batch rows x cols matrices.
// src and dst hold batch*rows*cols elements in row-major order.
func (d *Device) TransposeFloat32(dst, src []float32, batch, rows, cols int) error {
	n := batch * rows * cols
	if len(src) < n || len(dst) < n {
		return errors.Errorf("webgpu: transpose of %d elements with buffers of %d and %d", n, len(src), len(dst))
	}
	if batch > stream.MaxKernelBatch {
		return errors.Errorf("webgpu: transpose batch %d exceeds %d", batch, stream.MaxKernelBatch)
	}
	if n == 0 {
		return nil
	}

	d.run.Lock()
	defer d.run.Unlock()
	if d.device == nil {
		return errors.Wrap(ErrUnavailable, "device released")
	}

	size := uint64(n) * 4
	//nolint:gosec // unsafe.Slice for zero-copy view of float32 data as bytes
	in := unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), size)
	//nolint:gosec // unsafe.Slice for zero-copy view of float32 data as bytes
	out := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), size)

	pipeline := d.pipeline("transpose", transposeShader)

	inUsage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst
	bufferInput := d.upload(in, wgpu.BufferUsageStorage)
	defer d.pool.release(bufferInput, size, inUsage)

	outUsage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc
	bufferResult := d.pool.acquire(size, outUsage)
	defer d.pool.release(bufferResult, size, outUsage)

	params := make([]byte, 16)
	//nolint:gosec // G115: sizes are non-negative and checked by the caller
	binary.LittleEndian.PutUint32(params[0:4], uint32(rows))
	//nolint:gosec // G115
	binary.LittleEndian.PutUint32(params[4:8], uint32(cols))
	//nolint:gosec // G115
	binary.LittleEndian.PutUint32(params[8:12], uint32(batch))
	bufferParams := d.uniform(params)
	defer bufferParams.Release()

	bindGroup := d.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, size),
		wgpu.BufferBindingEntry(1, bufferResult, 0, size),
		wgpu.BufferBindingEntry(2, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := d.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115
	pass.DispatchWorkgroups(
		uint32((cols+transposeTile-1)/transposeTile),
		uint32((rows+transposeTile-1)/transposeTile),
		uint32(batch),
	)
	pass.End()
	d.queue.Submit(encoder.Finish(nil))

	return d.download(out, bufferResult)
}
