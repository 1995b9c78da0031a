// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides WebGPU kernels for bulk tensor transforms.
//
// A Device plugs into a stream through stream.Config.Kernels. Transforms then
// run on the GPU when the element type and layout allow and on the CPU
// otherwise. WebGPU is currently wired up on Windows; on other platforms New
// returns ErrUnavailable.
//
// Example:
//
//	import (
//	    "github.com/binbinmeng/MatX/backend/webgpu"
//	    "github.com/binbinmeng/MatX/stream"
//	)
//
//	func main() {
//	    cfg := stream.DefaultConfig()
//	    if gpu, err := webgpu.New(); err == nil {
//	        defer gpu.Release()
//	        cfg.Kernels = gpu
//	    }
//	    s := stream.New(cfg)
//	    defer s.Close()
//	}
package webgpu

import (
	internalwebgpu "github.com/binbinmeng/MatX/internal/backend/webgpu"
	"github.com/binbinmeng/MatX/stream"
)

// Device is an initialized WebGPU adapter, device and queue.
type Device = internalwebgpu.Device

// Compile-time check that Device can back a stream.
var _ stream.Kernels = (*Device)(nil)

// ErrUnavailable is returned by New when no WebGPU adapter can be initialized.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New initializes the WebGPU device. Call Release when done to free GPU resources.
func New() (*Device, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize an adapter, so it is best called once at startup.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
