package serialization

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// File is a fully read and validated SafeTensors file.
type File struct {
	header Header
	data   []byte
}

// Read parses a SafeTensors stream. The header and every tensor region are
// validated, and the checksum is verified when the header carries one.
func Read(r io.Reader) (*File, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	f := &File{}
	if err := f.header.UnmarshalJSON(headerBytes); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tensor data")
	}
	f.data = data
	if err := ValidateHeader(&f.header, int64(len(data))); err != nil {
		return nil, err
	}

	if stored, ok := f.header.Metadata[ChecksumKey]; ok {
		sum := newChecksum()
		for _, t := range f.header.Tensors {
			sum.Write(f.payload(t))
		}
		if sum.String() != stored {
			return nil, ErrChecksumMismatch
		}
	}
	return f, nil
}

// Open reads the SafeTensors file at path.
func Open(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() {
		_ = fh.Close() // Read-only; close errors carry no information
	}()
	return Read(fh)
}

// Metadata returns the string metadata from the header.
func (f *File) Metadata() map[string]string {
	return f.header.Metadata
}

// Names returns the tensor names in alphabetical order.
func (f *File) Names() []string {
	names := make([]string, len(f.header.Tensors))
	for i, t := range f.header.Tensors {
		names[i] = t.Name
	}
	return names
}

// Info returns the header entry for name.
func (f *File) Info(name string) (TensorMeta, error) {
	meta, ok := f.header.Lookup(name)
	if !ok {
		return TensorMeta{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return meta, nil
}

func (f *File) payload(t TensorMeta) []byte {
	return f.data[t.DataOffsets[0]:t.DataOffsets[1]]
}

// Load decodes the tensor name into a new linear view. T must match the
// stored dtype exactly; no conversion is performed.
func Load[T any](f *File, name string) (*tensor.View[T], error) {
	meta, err := f.Info(name)
	if err != nil {
		return nil, err
	}
	stored, _ := stringToDtype(meta.DType)
	if want := tensor.DataTypeOf[T](); stored != want {
		return nil, errors.Wrapf(ErrDTypeMismatch, "tensor %q holds %s, requested %s", name, stored, want)
	}

	shape := tensor.Shape(meta.Shape)
	values := make([]T, shape.NumElements())
	if err := binary.Read(bytes.NewReader(f.payload(meta)), binary.LittleEndian, values); err != nil {
		return nil, errors.Wrapf(err, "decode %q", name)
	}
	return tensor.FromSlice(values, shape)
}
