package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sort"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// Format constants.
const (
	HeaderSizeBytes = 8              // Little-endian uint64 before the JSON header
	MetadataKey     = "__metadata__" // Reserved header key for string metadata
	ChecksumKey     = "sha256"       // Metadata key holding the data section checksum
)

// SafeTensors dtype strings.
const (
	DTypeF32  = "F32"
	DTypeF64  = "F64"
	DTypeI32  = "I32"
	DTypeI64  = "I64"
	DTypeU8   = "U8"
	DTypeBool = "BOOL"
	DTypeC64  = "C64"
	DTypeC128 = "C128"
)

// TensorMeta describes one tensor in the header.
type TensorMeta struct {
	Name        string   `json:"-"`
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end) relative to the data section
}

// Size returns the number of payload bytes.
func (m TensorMeta) Size() int64 {
	return m.DataOffsets[1] - m.DataOffsets[0]
}

// Header is the decoded JSON header.
type Header struct {
	Metadata map[string]string
	Tensors  []TensorMeta // Sorted by name
}

// MarshalJSON writes the flat SafeTensors object.
func (h Header) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(h.Tensors)+1)
	if len(h.Metadata) > 0 {
		m[MetadataKey] = h.Metadata
	}
	for _, t := range h.Tensors {
		m[t.Name] = t
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the flat SafeTensors object.
func (h *Header) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrInvalidHeader, err.Error())
	}

	h.Metadata = nil
	h.Tensors = h.Tensors[:0]
	for key, value := range raw {
		if key == MetadataKey {
			if err := json.Unmarshal(value, &h.Metadata); err != nil {
				return errors.Wrapf(ErrInvalidHeader, "metadata: %v", err)
			}
			continue
		}
		var meta TensorMeta
		if err := json.Unmarshal(value, &meta); err != nil {
			return errors.Wrapf(ErrInvalidHeader, "tensor %q: %v", key, err)
		}
		meta.Name = key
		h.Tensors = append(h.Tensors, meta)
	}
	sort.Slice(h.Tensors, func(i, j int) bool { return h.Tensors[i].Name < h.Tensors[j].Name })
	return nil
}

// Lookup returns the entry for name.
func (h *Header) Lookup(name string) (TensorMeta, bool) {
	i := sort.Search(len(h.Tensors), func(i int) bool { return h.Tensors[i].Name >= name })
	if i < len(h.Tensors) && h.Tensors[i].Name == name {
		return h.Tensors[i], true
	}
	return TensorMeta{}, false
}

// dtypeToString converts tensor.DataType to its SafeTensors name.
func dtypeToString(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return DTypeF32, nil
	case tensor.Float64:
		return DTypeF64, nil
	case tensor.Int32:
		return DTypeI32, nil
	case tensor.Int64:
		return DTypeI64, nil
	case tensor.Uint8:
		return DTypeU8, nil
	case tensor.Bool:
		return DTypeBool, nil
	case tensor.Complex64:
		return DTypeC64, nil
	case tensor.Complex128:
		return DTypeC128, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedDType, "%s", dt)
	}
}

// stringToDtype converts a SafeTensors name to tensor.DataType.
func stringToDtype(s string) (tensor.DataType, bool) {
	switch s {
	case DTypeF32:
		return tensor.Float32, true
	case DTypeF64:
		return tensor.Float64, true
	case DTypeI32:
		return tensor.Int32, true
	case DTypeI64:
		return tensor.Int64, true
	case DTypeU8:
		return tensor.Uint8, true
	case DTypeBool:
		return tensor.Bool, true
	case DTypeC64:
		return tensor.Complex64, true
	case DTypeC128:
		return tensor.Complex128, true
	default:
		return tensor.Other, false
	}
}

// checksum accumulates the SHA-256 of a data section.
type checksum struct{ h hash.Hash }

func newChecksum() checksum { return checksum{h: sha256.New()} }

func (c checksum) Write(p []byte) { c.h.Write(p) }

// String returns the digest in hex.
func (c checksum) String() string { return hex.EncodeToString(c.h.Sum(nil)) }
