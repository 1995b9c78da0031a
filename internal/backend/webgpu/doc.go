// Package webgpu runs device kernels for the expression engine on a WebGPU
// adapter, using go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO bindings.
//
// A *Device implements stream.Kernels and is attached to a stream through
// stream.Config.Kernels. The native bindings are loaded on Windows only; on
// other platforms New reports ErrUnavailable and streams stay on the CPU.
package webgpu

import (
	"github.com/binbinmeng/MatX/internal/stream"
	"github.com/pkg/errors"
)

// ErrUnavailable is returned when no WebGPU adapter can be opened.
var ErrUnavailable = errors.New("webgpu: not available")

var _ stream.Kernels = (*Device)(nil)
