package stream

import (
	"testing"

	"github.com/binbinmeng/MatX/internal/expr"
	"github.com/binbinmeng/MatX/internal/parallel"
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func newTestStream(t *testing.T) *Stream {
	t.Helper()
	s := New(DefaultConfig())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSubmitPreservesOrder(t *testing.T) {
	s := newTestStream(t)

	var order []int
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Submit(func() error {
			order = append(order, i)
			return nil
		}))
	}
	require.NoError(t, s.Synchronize())

	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestSubmitDoesNotWait(t *testing.T) {
	s := newTestStream(t)

	release := make(chan struct{})
	ran := make(chan struct{})
	require.NoError(t, s.Submit(func() error {
		<-release
		close(ran)
		return nil
	}))

	select {
	case <-ran:
		t.Fatal("task finished before it was released")
	default:
	}
	close(release)
	require.NoError(t, s.Synchronize())
	<-ran
}

func TestSynchronizeReportsFailuresOnce(t *testing.T) {
	s := newTestStream(t)
	boom := errors.New("boom")

	require.NoError(t, s.Submit(func() error { return boom }))
	require.NoError(t, s.Submit(func() error { panic("bad index") }))
	require.NoError(t, s.Submit(func() error { return nil }))

	err := s.Synchronize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "bad index")

	assert.NoError(t, s.Synchronize())
}

func TestClose(t *testing.T) {
	s := New(DefaultConfig())

	done := false
	require.NoError(t, s.Submit(func() error {
		done = true
		return nil
	}))
	require.NoError(t, s.Close())
	assert.True(t, done)

	assert.ErrorIs(t, s.Submit(func() error { return nil }), ErrClosed)
	assert.NoError(t, s.Close())
}

func TestEvaluate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parallel = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 3}
	s := New(cfg)
	defer s.Close()

	dst := tensor.Make[float64](tensor.Shape{3, 4, 5})
	src := tensor.Make[float64](tensor.Shape{3, 4, 5})
	for i := range src.Data() {
		src.Data()[i] = float64(i)
	}
	assign, err := expr.Set[float64](dst, expr.Must(expr.Mul[float64](src, expr.Scalar(2.0))))
	require.NoError(t, err)

	require.NoError(t, s.Evaluate(assign))
	require.NoError(t, s.Synchronize())
	for i, v := range dst.Values() {
		assert.Equal(t, 2*float64(i), v)
	}
}

func TestRunRankZero(t *testing.T) {
	dst := tensor.Make0D[int]()
	assign := expr.Must(expr.Set[int](dst, expr.Scalar(42)))

	require.NoError(t, Run(assign, parallel.Sequential()))
	assert.Equal(t, 42, dst.At(tensor.Index{}))
}

func TestRunEmpty(t *testing.T) {
	dst := tensor.Make[int](tensor.Shape{0, 3})
	assign := expr.Must(expr.Set[int](dst, expr.Scalar(1)))
	assert.NoError(t, Run(assign, parallel.DefaultConfig()))
}

func TestIndependentStreams(t *testing.T) {
	a := newTestStream(t)
	b := newTestStream(t)

	x := tensor.Make[int](tensor.Shape{64})
	y := tensor.Make[int](tensor.Shape{64})
	require.NoError(t, a.Evaluate(expr.Must(expr.Set[int](x, expr.Scalar(1)))))
	require.NoError(t, b.Evaluate(expr.Must(expr.Set[int](y, expr.Scalar(2)))))

	require.NoError(t, a.Synchronize())
	require.NoError(t, b.Synchronize())
	assert.Equal(t, 64, sum(x.Values()))
	assert.Equal(t, 128, sum(y.Values()))
}

func sum(v []int) int {
	n := 0
	for _, x := range v {
		n += x
	}
	return n
}
