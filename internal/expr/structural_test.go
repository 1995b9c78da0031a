package expr

import (
	"fmt"
	"testing"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseInvolution(t *testing.T) {
	m := view(t, arange(12), 3, 4)

	for dim := 0; dim < 2; dim++ {
		once, err := Reverse[float64](m, dim)
		require.NoError(t, err)
		twice, err := Reverse[float64](once, dim)
		require.NoError(t, err)
		assert.Equal(t, m.Values(), values[float64](twice))
	}

	lr := Must(FlipLR[float64](m))
	assert.Equal(t, []float64{3, 2, 1, 0}, values[float64](lr)[:4])
	ud := Must(FlipUD[float64](m))
	assert.Equal(t, []float64{8, 9, 10, 11}, values[float64](ud)[:4])

	v := view(t, arange(4), 4)
	assert.Equal(t, []float64{3, 2, 1, 0}, values[float64](Must(FlipUD[float64](v))))
}

func TestReverseHelpersCheckRank(t *testing.T) {
	s := view(t, []float64{1})

	_, err := ReverseX[float64](s)
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
	_, err = ReverseY[float64](view(t, arange(3), 3))
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
	_, err = ReverseW[float64](view(t, arange(8), 2, 2, 2))
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))

	w, err := ReverseW[float64](view(t, arange(16), 2, 2, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8.0, w.At(Index{0, 0, 0, 0}))
	z, err := ReverseZ[float64](view(t, arange(8), 2, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, z.At(Index{0, 0, 0}))
}

func TestShiftRoundTrip(t *testing.T) {
	const n = 5
	v := view(t, arange(n), n)

	for _, s := range []int{-12, -5, -3, 0, 1, 4, 5, 7, 23} {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			fwd, err := Shift0[float64](v, s)
			require.NoError(t, err)
			back, err := Shift0[float64](fwd, -s)
			require.NoError(t, err)
			assert.Equal(t, arange(n), values[float64](back))
		})
	}
}

func TestShiftValues(t *testing.T) {
	v := view(t, arange(5), 5)
	assert.Equal(t, []float64{2, 3, 4, 0, 1}, values[float64](Must(Shift0[float64](v, 2))))
	assert.Equal(t, []float64{3, 4, 0, 1, 2}, values[float64](Must(Shift0[float64](v, -2))))

	m := view(t, arange(6), 2, 3)
	assert.Equal(t, []float64{1, 2, 0, 4, 5, 3}, values[float64](Must(Shift1[float64](m, 1))))
	assert.Equal(t, []float64{3, 4, 5, 0, 1, 2}, values[float64](Must(Shift0[float64](m, 1))))

	_, err := Shift2[float64](m, 1)
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
}

func TestDiag(t *testing.T) {
	eye := view(t, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	}, 3, 3)
	d, err := Diag[float64](eye)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Rank())
	assert.Equal(t, []float64{1, 2, 3}, values[float64](d))

	wide, err := Diag[float64](view(t, arange(15), 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 3, wide.Size(0))
	assert.Equal(t, []float64{0, 6, 12}, values[float64](wide))

	tall, err := Diag[float64](view(t, arange(15), 5, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, tall.Size(0))
	assert.Equal(t, []float64{0, 4, 8}, values[float64](tall))

	batched, err := Diag[float64](view(t, arange(8), 2, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, ShapeOf(batched))
	assert.Equal(t, []float64{0, 3, 4, 7}, values[float64](batched))

	_, err = Diag[float64](view(t, arange(3), 3))
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
}

func TestKron(t *testing.T) {
	a := view(t, []float64{1, 2, 3, 4}, 2, 2)
	b := view(t, arange(9), 3, 3)

	k, err := Kron[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{6, 6}, ShapeOf(k))
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := a.At(Index{i / 3, j / 3}) * b.At(Index{i % 3, j % 3})
			assert.Equal(t, want, k.At(Index{i, j}), "(%d,%d)", i, j)
		}
	}
}

func TestKronBatched(t *testing.T) {
	a := view(t, []float64{1, 2, 3, 4}, 2, 1, 2)
	b := view(t, []float64{1, 10, 100, 1000}, 2, 2, 1)

	k, err := Kron[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2}, ShapeOf(k))
	assert.Equal(t, []float64{1, 2, 10, 20, 300, 400, 3000, 4000}, values[float64](k))

	_, err = Kron[float64](a, view(t, arange(3), 3, 1, 1))
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
	_, err = Kron[float64](a, view(t, arange(4), 2, 2))
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
}

func TestRepMat(t *testing.T) {
	m := view(t, []float64{1, 2, 3, 4}, 2, 2)

	r, err := RepMat[float64](m, 2)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 4}, ShapeOf(r))
	assert.Equal(t, []float64{1, 2, 1, 2}, values[float64](r)[:4])

	rd, err := RepMatDims[float64](m, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 6}, ShapeOf(rd))
	assert.Equal(t, []float64{3, 4, 3, 4, 3, 4}, values[float64](rd)[6:])

	_, err = RepMatDims[float64](m, []int{1})
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
	_, err = RepMat[float64](m, 0)
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
}

func TestHermitianT(t *testing.T) {
	m := view(t, []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i, 5 + 5i, 6 + 6i}, 2, 3)

	h := HermitianT[complex128](m)
	assert.Equal(t, tensor.Shape{3, 2}, ShapeOf(h))
	assert.Equal(t, []complex128{1 - 1i, 4 - 4i, 2 - 2i, 5 - 5i, 3 - 3i, 6 - 6i}, values[complex128](h))

	v := view(t, []complex64{1 + 2i}, 1)
	assert.Equal(t, []complex64{1 - 2i}, values[complex64](HermitianT[complex64](v)))
}

func TestFFTShiftEven(t *testing.T) {
	v := view(t, arange(6), 6)

	fwd := Must(FFTShift1D[float64](v))
	assert.Equal(t, []float64{3, 4, 5, 0, 1, 2}, values[float64](fwd))
	round := Must(IFFTShift1D[float64](fwd))
	assert.Equal(t, arange(6), values[float64](round))
}

func TestFFTShiftOdd(t *testing.T) {
	v := view(t, arange(5), 5)

	fwd := Must(FFTShift1D[float64](v))
	inv := Must(IFFTShift1D[float64](v))
	assert.Equal(t, []float64{3, 4, 0, 1, 2}, values[float64](fwd))
	assert.Equal(t, []float64{2, 3, 4, 0, 1}, values[float64](inv))

	assert.Equal(t, arange(5), values[float64](Must(IFFTShift1D[float64](fwd))))
	assert.Equal(t, arange(5), values[float64](Must(FFTShift1D[float64](inv))))
	assert.NotEqual(t, arange(5), values[float64](Must(FFTShift1D[float64](fwd))))
	assert.NotEqual(t, arange(5), values[float64](Must(IFFTShift1D[float64](inv))))
}

func TestFFTShift2D(t *testing.T) {
	m := view(t, arange(6), 2, 3)
	s := Must(FFTShift2D[float64](m))
	assert.Equal(t, []float64{5, 3, 4, 2, 0, 1}, values[float64](s))
	assert.Equal(t, arange(6), values[float64](Must(IFFTShift2D[float64](s))))

	b := view(t, arange(8), 2, 2, 2)
	bs := Must(FFTShift2D[float64](b))
	assert.Equal(t, []float64{3, 2, 1, 0, 7, 6, 5, 4}, values[float64](bs))

	v := view(t, arange(4), 4)
	assert.Equal(t, []float64{2, 3, 0, 1}, values[float64](Must(FFTShift2D[float64](v))))

	_, err := FFTShift1D[float64](Scalar(1.0))
	assert.True(t, errors.Is(err, tensor.ErrInvalidDim))
}

func TestPlanarInterleaved(t *testing.T) {
	z := view(t, []complex64{1 + 2i, 3 + 4i, 5 + 6i}, 3)

	p, err := Planar[float32](z)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{6}, ShapeOf(p))
	assert.Equal(t, []float32{1, 3, 5, 2, 4, 6}, values[float32](p))

	back, err := Interleaved[complex64](p)
	require.NoError(t, err)
	assert.Equal(t, z.Values(), values[complex64](back))

	_, err = Interleaved[complex64](view(t, []float32{1, 2, 3}, 3))
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
}

func TestPlanarSplitDimension(t *testing.T) {
	m := view(t, []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i}, 2, 2)
	p := Must(Planar[float64](m))
	assert.Equal(t, tensor.Shape{2, 4}, ShapeOf(p))
	assert.Equal(t, []float64{1, 2, 1, 2, 3, 4, 3, 4}, values[float64](p))

	b := view(t, make([]complex128, 12), 2, 3, 2)
	pb := Must(Planar[float64](b))
	assert.Equal(t, tensor.Shape{2, 6, 2}, ShapeOf(pb))
	ib := Must(Interleaved[complex128](pb))
	assert.Equal(t, tensor.Shape{2, 3, 2}, ShapeOf(ib))
}

func TestSetAndConditionals(t *testing.T) {
	src := view(t, []float64{-2, -1, 0, 1, 2}, 5)
	pos := make([]float64, 5)
	neg := make([]float64, 5)
	posV := view(t, pos, 5)
	negV := view(t, neg, 5)

	cond := Must(Greater[float64](src, Scalar(0.0)))
	setPos := Must(Set[float64](posV, src))
	setNeg := Must(Set[float64](negV, Neg[float64](src)))

	ie, err := IfElse(cond, setPos, setNeg)
	require.NoError(t, err)
	assert.Equal(t, 1, ie.Rank())
	for i := 0; i < 5; i++ {
		ie.Emit(Index{i})
	}
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, pos)
	assert.Equal(t, []float64{2, 1, 0, 0, 0}, neg)

	clear(pos)
	only, err := If(cond, setPos)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		only.Emit(Index{i})
	}
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, pos)

	_, err = If(Must(Greater[float64](view(t, arange(4), 4), Scalar(0.0))), setPos)
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
}

func TestSetValidation(t *testing.T) {
	dst := view(t, make([]float64, 16), 4, 4)

	_, err := Set[float64](dst, view(t, arange(20), 4, 5))
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
	_, err = Set[float64](view(t, make([]float64, 4), 4), dst)
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))

	fill, err := Set[float64](dst, Scalar(7.0))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 4}, ShapeOf(fill))
	assert.Same(t, dst, fill.Dst())

	row, err := Set[float64](dst, view(t, arange(4), 4))
	require.NoError(t, err)
	assert.Equal(t, 2.0, row.At(Index{2, 3}))
	assert.Equal(t, 2.0, dst.At(Index{2, 3}))
}

func TestChain(t *testing.T) {
	a := make([]float64, 3)
	b := make([]float64, 3)
	av := view(t, a, 3)
	bv := view(t, b, 3)
	src := view(t, []float64{1, 2, 3}, 3)

	first := Must(Set[float64](av, src))
	second := Must(Set[float64](bv, Must(Mul[float64](av, Scalar(10.0)))))
	c, err := Chain[float64](first, second)
	require.NoError(t, err)

	assert.Equal(t, 20.0, c.At(Index{1}))
	c.Emit(Index{2})
	assert.Equal(t, []float64{0, 2, 3}, a)
	assert.Equal(t, []float64{0, 20, 30}, b)

	valueOnly := Must(Chain[float64](first, Self[float64](src)))
	valueOnly.Emit(Index{0})
	assert.Equal(t, 1.0, a[0])

	_, err = Chain[float64](first, view(t, arange(4), 2, 2))
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
}
