package tensor

import (
	"sync"
	"sync/atomic"
)

// Device represents where the memory behind a storage lives.
type Device int

// Supported devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Storage owns the buffer that views alias. It is reference counted so that
// several owners can share one allocation; views never take a reference.
type Storage[T any] struct {
	data     []T
	device   Device
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// NewStorage allocates an owning buffer of n zeroed elements with refCount = 1.
func NewStorage[T any](n int) *Storage[T] {
	return WrapStorage(make([]T, n))
}

// WrapStorage adopts caller memory as a storage with refCount = 1.
func WrapStorage[T any](data []T) *Storage[T] {
	s := &Storage[T]{data: data, device: CPU}
	s.refCount.Store(1)
	return s
}

// AddRef increments the reference count for an additional owner.
func (s *Storage[T]) AddRef() {
	s.refCount.Add(1)
}

// Release decrements the reference count and drops the buffer when it reaches 0.
func (s *Storage[T]) Release() {
	if s.refCount.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// IsUnique returns true if exactly one owner holds the storage.
func (s *Storage[T]) IsUnique() bool {
	return s.refCount.Load() == 1
}

// Alive reports whether the buffer has not been released.
func (s *Storage[T]) Alive() bool {
	return s.refCount.Load() > 0
}

// Len returns the number of elements in the buffer.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// Device returns where the buffer lives.
func (s *Storage[T]) Device() Device {
	return s.device
}
