package expr

import (
	"testing"

	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func view[T any](t *testing.T, data []T, shape ...int) *tensor.View[T] {
	t.Helper()
	v, err := tensor.FromSlice(data, tensor.Shape(shape))
	require.NoError(t, err)
	return v
}

func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// values evaluates op at every coordinate in row-major order.
func values[T any](op Operator[T]) []T {
	s := ShapeOf(op)
	out := []T{}
	var idx Index
	var rec func(d int)
	rec = func(d int) {
		if d == len(s) {
			out = append(out, op.At(idx))
			return
		}
		for i := 0; i < s[d]; i++ {
			idx[d] = i
			rec(d + 1)
		}
	}
	rec(0)
	return out
}

func TestRankAndExpandedSize(t *testing.T) {
	m := view(t, arange(6), 2, 3)

	assert.Equal(t, 2, Rank(m))
	assert.Equal(t, -1, Rank(Scalar(1.0)))
	assert.Equal(t, -1, Rank(nil))
	assert.Equal(t, 3, ExpandedSize(m, 1))
	assert.Equal(t, 0, ExpandedSize(m, 2))
	assert.Equal(t, 0, ExpandedSize(Scalar(1.0), 0))
	assert.Equal(t, tensor.Shape{2, 3}, ShapeOf(m))
	assert.Empty(t, ShapeOf(Scalar(1.0)))
}

func TestBinaryBroadcast(t *testing.T) {
	a := view(t, arange(6), 2, 3)
	b := view(t, []float64{10, 20}, 2)

	sum, err := Add[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Rank())
	assert.Equal(t, 2, sum.Size(0))
	assert.Equal(t, 3, sum.Size(1))
	assert.Equal(t, []float64{10, 11, 12, 23, 24, 25}, values[float64](sum))

	scaled, err := Mul[float64](Scalar(2.0), a)
	require.NoError(t, err)
	assert.Equal(t, 2, scaled.Rank())
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, values[float64](scaled))

	both, err := Add[float64](Scalar(1.0), Scalar(2.0))
	require.NoError(t, err)
	assert.Equal(t, -1, both.Rank())
	assert.Equal(t, 3.0, both.At(Index{}))
}

func TestBinarySizeMismatch(t *testing.T) {
	a := view(t, arange(16), 4, 4)
	b := view(t, arange(20), 4, 5)

	_, err := Add[float64](a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))

	var se *tensor.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Dim)
	assert.Equal(t, 5, se.Want)
	assert.Equal(t, 4, se.Got)
}

func TestBinaryReportsEveryDimension(t *testing.T) {
	a := view(t, arange(6), 2, 3)
	b := view(t, arange(12), 3, 4)

	_, err := Sub[float64](a, b)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestBinaryRankLiftIsNotBroadcast(t *testing.T) {
	// A rank-1 operand constrains dimension 0; size 1 is not stretched.
	a := view(t, arange(6), 2, 3)
	b := view(t, []float64{1}, 1)

	_, err := Add[float64](a, b)
	assert.True(t, errors.Is(err, tensor.ErrInvalidSize))
}

func TestCombinatorRankProperty(t *testing.T) {
	operands := []Operator[float64]{
		Scalar(1.0),
		view(t, []float64{7}),
		view(t, arange(2), 2),
		view(t, arange(6), 2, 3),
		view(t, arange(24), 2, 3, 4),
	}
	for _, a := range operands {
		for _, b := range operands {
			c, err := Add(a, b)
			require.NoError(t, err)
			assert.Equal(t, max(Rank(a), Rank(b)), c.Rank())
			for d := 0; d < c.Rank(); d++ {
				assert.Equal(t, max(ExpandedSize(a, d), ExpandedSize(b, d)), c.Size(d))
			}
		}
	}
}

func TestUnary(t *testing.T) {
	v := view(t, []float64{1, 4, 9}, 3)
	assert.Equal(t, []float64{1, 2, 3}, values[float64](Sqrt[float64](v)))
	assert.Equal(t, []float64{-1, -4, -9}, values[float64](Neg[float64](v)))

	asInt := Unary(v, func(x float64) int { return int(x) * 2 })
	assert.Equal(t, []int{2, 8, 18}, values[int](asInt))
}

func TestTables(t *testing.T) {
	v := view(t, []float64{-1, 2.5}, 2)

	abs, err := Apply[float64]("abs", v)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, values[float64](abs))

	pow, err := Combine[float64]("pow", v, Scalar(2.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 6.25}, values[float64](pow))

	lt, err := Compare[float64]("lt", v, Scalar(0.0))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, values[bool](lt))

	_, err = Apply[float64]("nope", v)
	assert.True(t, errors.Is(err, ErrUnknownOp))
	_, err = Combine[float64]("nope", v, v)
	assert.True(t, errors.Is(err, ErrUnknownOp))

	for name := range UnaryTable[complex64]() {
		_, err := Apply[complex64](name, view(t, []complex64{1}, 1))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, IntegerTable[int32](), "xor")
}

func TestLogical(t *testing.T) {
	a := view(t, []bool{true, true, false}, 3)
	b := view(t, []bool{true, false, false}, 3)

	and := Must(LogicalAnd(a, b))
	or := Must(LogicalOr(a, b))
	if diff := cmp.Diff([]bool{true, false, false}, values[bool](and)); diff != "" {
		t.Errorf("and mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, true, false}, values[bool](or)); diff != "" {
		t.Errorf("or mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []bool{false, false, true}, values[bool](Not(a)))
}

func TestSelfHidesView(t *testing.T) {
	v := view(t, arange(4), 2, 2)
	s := Self[float64](v)

	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, 3.0, s.At(Index{1, 1}))
	var n Shaped = s
	_, isView := n.(*tensor.View[float64])
	assert.False(t, isView)
}

func TestMustPanics(t *testing.T) {
	a := view(t, arange(4), 4)
	b := view(t, arange(5), 5)
	assert.Panics(t, func() { Must(Add[float64](a, b)) })
}
