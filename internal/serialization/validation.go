package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/binbinmeng/MatX/internal/tensor"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount   = 100_000           // Maximum number of tensors in a file
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// ValidateTensorName rejects empty, oversized and path-like names.
func ValidateTensorName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Details: "empty name", Err: ErrInvalidTensorName}
	case name == MetadataKey:
		return &ValidationError{Tensor: name, Details: "reserved key", Err: ErrInvalidTensorName}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
			Err:     ErrInvalidTensorName,
		}
	case strings.Contains(name, ".."):
		return &ValidationError{Tensor: name, Details: "contains '..'", Err: ErrInvalidTensorName}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Tensor: name, Details: "contains path separator", Err: ErrInvalidTensorName}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Tensor: name, Details: "contains null byte", Err: ErrInvalidTensorName}
	}
	return nil
}

// ValidateTensorOffsets checks for negative, out-of-bounds and overlapping regions.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
			Err:     ErrTooManyTensors,
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DataOffsets[0] < sorted[j].DataOffsets[0]
	})

	for i, t := range sorted {
		start, end := t.DataOffsets[0], t.DataOffsets[1]
		if start < 0 || end < start {
			return &ValidationError{
				Tensor:  t.Name,
				Details: fmt.Sprintf("offsets [%d, %d)", start, end),
				Err:     ErrNegativeOffset,
			}
		}
		if end > dataSize {
			return &ValidationError{
				Tensor:  t.Name,
				Details: fmt.Sprintf("end %d > data size %d", end, dataSize),
				Err:     ErrOutOfBounds,
			}
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if end > next.DataOffsets[0] {
				return &ValidationError{
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d, %d) and [%d, %d) overlap", start, end, next.DataOffsets[0], next.DataOffsets[1]),
					Err:     ErrOffsetOverlap,
				}
			}
		}
	}
	return nil
}

// ValidateTensorMeta checks that the entry's dtype is known and that its
// shape matches its byte length.
func ValidateTensorMeta(t TensorMeta) error {
	if err := ValidateTensorName(t.Name); err != nil {
		return err
	}
	dt, ok := stringToDtype(t.DType)
	if !ok {
		return &ValidationError{Tensor: t.Name, Details: fmt.Sprintf("dtype %q", t.DType), Err: ErrUnsupportedDType}
	}
	shape := tensor.Shape(t.Shape)
	if err := shape.Validate(); err != nil {
		return &ValidationError{Tensor: t.Name, Details: err.Error(), Err: ErrInvalidHeader}
	}
	n := int64(shape.NumElements())
	if n > math.MaxInt64/int64(dt.Size()) {
		return &ValidationError{
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v of %s overflows the byte length", shape, dt),
			Err:     ErrInvalidHeader,
		}
	}
	if want := n * int64(dt.Size()); t.Size() != want {
		return &ValidationError{
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v of %s needs %d bytes, offsets span %d", shape, dt, want, t.Size()),
			Err:     ErrInvalidHeader,
		}
	}
	return nil
}

// ValidateHeader validates every entry and the layout of the data section.
func ValidateHeader(h *Header, dataSize int64) error {
	for _, t := range h.Tensors {
		if err := ValidateTensorMeta(t); err != nil {
			return err
		}
	}
	return ValidateTensorOffsets(h.Tensors, dataSize)
}
