package serialization

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(t *testing.T, shape tensor.Shape) *tensor.View[float32] {
	t.Helper()
	v := tensor.Make[float32](shape)
	for i := range v.Data() {
		v.Data()[i] = float32(i)
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.safetensors")

	signal := tensor.Make[complex64](tensor.Shape{3})
	signal.Set(tensor.Index{0}, 1+2i)
	signal.Set(tensor.Index{2}, -3i)
	mask, err := tensor.FromSlice([]bool{true, false}, tensor.Shape{2})
	require.NoError(t, err)
	scalar := tensor.Make0D[float64]()
	scalar.Set(tensor.Index{}, 2.5)

	w := NewWriter()
	w.SetMetadata("generator", "unit-test")
	require.NoError(t, Add(w, "weights", ramp(t, tensor.Shape{2, 3})))
	require.NoError(t, Add(w, "signal", signal))
	require.NoError(t, Add(w, "mask", mask))
	require.NoError(t, Add(w, "scalar", scalar))
	assert.Equal(t, 4, w.Len())
	require.NoError(t, w.Save(path))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mask", "scalar", "signal", "weights"}, f.Names())
	assert.Equal(t, "unit-test", f.Metadata()["generator"])
	assert.Contains(t, f.Metadata(), ChecksumKey)

	weights, err := Load[float32](f, "weights")
	require.NoError(t, err)
	assert.True(t, weights.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 5}, weights.Values())

	gotSignal, err := Load[complex64](f, "signal")
	require.NoError(t, err)
	assert.Equal(t, signal.Values(), gotSignal.Values())

	gotMask, err := Load[bool](f, "mask")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, gotMask.Values())

	gotScalar, err := Load[float64](f, "scalar")
	require.NoError(t, err)
	assert.Equal(t, 0, gotScalar.Rank())
	assert.Equal(t, 2.5, gotScalar.At(tensor.Index{}))
}

func TestAddPacksStridedViews(t *testing.T) {
	v := ramp(t, tensor.Shape{2, 3})
	tr, err := v.Permute([]int{1, 0})
	require.NoError(t, err)
	require.False(t, tr.IsLinear())

	w := NewWriter()
	require.NoError(t, Add(w, "t", tr))
	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)

	f, err := Read(&buf)
	require.NoError(t, err)
	got, err := Load[float32](f, "t")
	require.NoError(t, err)
	assert.True(t, got.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, got.Values())
}

func TestAddRejects(t *testing.T) {
	w := NewWriter()
	v := ramp(t, tensor.Shape{2})

	assert.ErrorIs(t, Add(w, "", v), ErrInvalidTensorName)
	assert.ErrorIs(t, Add(w, "../x", v), ErrInvalidTensorName)
	assert.ErrorIs(t, Add(w, MetadataKey, v), ErrInvalidTensorName)

	require.NoError(t, Add(w, "v", v))
	assert.ErrorIs(t, Add(w, "v", v), ErrDuplicateTensor)

	assert.ErrorIs(t, Add(w, "ints", tensor.Make[int](tensor.Shape{2})), ErrUnsupportedDType)

	dead := ramp(t, tensor.Shape{2})
	dead.Storage().Release()
	assert.ErrorIs(t, Add(w, "dead", dead), tensor.ErrReleased)
}

func TestLoadErrors(t *testing.T) {
	w := NewWriter()
	require.NoError(t, Add(w, "v", ramp(t, tensor.Shape{2})))
	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	require.NoError(t, err)

	f, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	_, err = Load[float32](f, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Load[float64](f, "v")
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}

func TestReadDetectsCorruption(t *testing.T) {
	w := NewWriter()
	require.NoError(t, Add(w, "v", ramp(t, tensor.Shape{4})))
	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff
	_, err = Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	_, err = Read(bytes.NewReader(raw[:len(raw)-4]))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReadRejectsHugeHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1)))
	_, err := Read(&buf)
	assert.ErrorIs(t, err, ErrHeaderTooLarge)
}

func TestReadRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"element count overflow", `{"x":{"dtype":"F32","shape":[4294967296,4294967296],"data_offsets":[0,0]}}`},
		{"byte length overflow", `{"x":{"dtype":"F64","shape":[2305843009213693952],"data_offsets":[0,0]}}`},
		{"negative dimension", `{"x":{"dtype":"F32","shape":[-1],"data_offsets":[0,0]}}`},
		{"rank too high", `{"x":{"dtype":"F32","shape":[1,1,1,1,1],"data_offsets":[0,4]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(tt.header))))
			buf.WriteString(tt.header)
			buf.Write(make([]byte, 8))

			f, err := Read(&buf)
			assert.ErrorIs(t, err, ErrInvalidHeader)
			assert.Nil(t, f)
		})
	}
}

func TestValidateTensorOffsets(t *testing.T) {
	tests := []struct {
		name    string
		tensors []TensorMeta
		want    error
	}{
		{"ok", []TensorMeta{{Name: "a", DataOffsets: [2]int64{0, 8}}, {Name: "b", DataOffsets: [2]int64{8, 16}}}, nil},
		{"overlap", []TensorMeta{{Name: "a", DataOffsets: [2]int64{0, 12}}, {Name: "b", DataOffsets: [2]int64{8, 16}}}, ErrOffsetOverlap},
		{"bounds", []TensorMeta{{Name: "a", DataOffsets: [2]int64{0, 32}}}, ErrOutOfBounds},
		{"negative", []TensorMeta{{Name: "a", DataOffsets: [2]int64{-4, 4}}}, ErrNegativeOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorOffsets(tt.tensors, 16)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateTensorMeta(t *testing.T) {
	good := TensorMeta{Name: "a", DType: DTypeF64, Shape: []int{2}, DataOffsets: [2]int64{0, 16}}
	assert.NoError(t, ValidateTensorMeta(good))

	short := good
	short.DataOffsets = [2]int64{0, 8}
	assert.ErrorIs(t, ValidateTensorMeta(short), ErrInvalidHeader)

	unknown := good
	unknown.DType = "F16"
	assert.ErrorIs(t, ValidateTensorMeta(unknown), ErrUnsupportedDType)
}
