package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// dataAlignment pads the header so the data section starts on an 8-byte boundary.
const dataAlignment = 8

// Writer collects views and writes them as one SafeTensors file.
// Element data is captured when a view is added; later writes to the view
// are not reflected in the output.
type Writer struct {
	metadata map[string]string
	tensors  map[string]TensorMeta
	payloads map[string][]byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{
		metadata: make(map[string]string),
		tensors:  make(map[string]TensorMeta),
		payloads: make(map[string][]byte),
	}
}

// SetMetadata records a free-form string pair in the header.
// The checksum key is reserved and overwritten on write.
func (w *Writer) SetMetadata(key, value string) {
	w.metadata[key] = value
}

// Len returns the number of tensors added so far.
func (w *Writer) Len() int {
	return len(w.tensors)
}

// Add captures v's elements under name. Views of any layout are accepted and
// packed in row-major order.
func Add[T any](w *Writer, name string, v *tensor.View[T]) error {
	if err := ValidateTensorName(name); err != nil {
		return err
	}
	if _, ok := w.tensors[name]; ok {
		return errors.Wrapf(ErrDuplicateTensor, "%q", name)
	}
	if !v.Alive() {
		return errors.Wrapf(tensor.ErrReleased, "serialize %q", name)
	}
	dt, err := dtypeToString(tensor.DataTypeOf[T]())
	if err != nil {
		return errors.WithMessagef(err, "tensor %q", name)
	}

	payload, err := binary.Append(nil, binary.LittleEndian, v.Values())
	if err != nil {
		return errors.Wrapf(err, "encode %q", name)
	}
	w.tensors[name] = TensorMeta{
		Name:  name,
		DType: dt,
		Shape: append([]int{}, v.Shape()...),
	}
	w.payloads[name] = payload
	return nil
}

// header lays out the data section in name order and fills in the checksum.
func (w *Writer) header() (Header, []string) {
	names := make([]string, 0, len(w.tensors))
	for name := range w.tensors {
		names = append(names, name)
	}
	sort.Strings(names)

	h := Header{Metadata: make(map[string]string, len(w.metadata)+1)}
	for k, v := range w.metadata {
		h.Metadata[k] = v
	}

	sum := newChecksum()
	var offset int64
	for _, name := range names {
		meta := w.tensors[name]
		size := int64(len(w.payloads[name]))
		meta.DataOffsets = [2]int64{offset, offset + size}
		h.Tensors = append(h.Tensors, meta)
		sum.Write(w.payloads[name])
		offset += size
	}
	h.Metadata[ChecksumKey] = sum.String()
	return h, names
}

// WriteTo writes the file to out. It implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	h, names := w.header()
	headerJSON, err := json.Marshal(h)
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal header")
	}
	if pad := (dataAlignment - (HeaderSizeBytes+len(headerJSON))%dataAlignment) % dataAlignment; pad > 0 {
		headerJSON = append(headerJSON, strings.Repeat(" ", pad)...)
	}

	bw := bufio.NewWriter(out)
	written := int64(HeaderSizeBytes)
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return 0, errors.Wrap(err, "failed to write header size")
	}
	n, err := bw.Write(headerJSON)
	written += int64(n)
	if err != nil {
		return written, errors.Wrap(err, "failed to write header")
	}
	for _, name := range names {
		n, err := bw.Write(w.payloads[name])
		written += int64(n)
		if err != nil {
			return written, errors.Wrapf(err, "failed to write tensor %s", name)
		}
	}
	return written, errors.Wrap(bw.Flush(), "failed to flush")
}

// Save writes the file to path, replacing any existing file.
func (w *Writer) Save(path string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = w.WriteTo(f)
	return err
}
