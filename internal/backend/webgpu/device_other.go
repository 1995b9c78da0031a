//go:build !windows

package webgpu

// Device is a placeholder on platforms without the native bindings.
type Device struct{}

// New always fails with ErrUnavailable on this platform.
func New() (*Device, error) {
	return nil, ErrUnavailable
}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

// Name returns an empty string.
func (d *Device) Name() string { return "" }

// Release does nothing.
func (d *Device) Release() {}

// TransposeFloat32 always fails with ErrUnavailable on this platform.
func (d *Device) TransposeFloat32(_, _ []float32, _, _, _ int) error {
	return ErrUnavailable
}
