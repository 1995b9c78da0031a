package transform

import (
	"github.com/binbinmeng/MatX/internal/parallel"
	"github.com/binbinmeng/MatX/internal/stream"
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// tileDim is the edge of the square tiles the CPU transpose moves at once.
const tileDim = 32

// Transpose swaps the two innermost dimensions of in into out. Leading
// dimensions are a batch and keep their order. Ranks 0 and 1 are a no-op.
//
// The source must be linear. float32 data in linear views is handed to the
// stream's device kernels when the stream has them and the batch fits in
// one kernel call.
func Transpose[T any](out, in *tensor.View[T], s *stream.Stream) error {
	r := in.Rank()
	if r <= 1 {
		return nil
	}
	if err := checkAlive("transpose", out, in); err != nil {
		return err
	}
	if !in.IsLinear() {
		return errors.Wrapf(tensor.ErrUnsupportedLayout, "transpose: source shape %v with strides %v is not linear",
			in.Shape(), in.Desc().Strides())
	}
	if out.Rank() != r {
		return errors.Wrapf(tensor.ErrInvalidSize, "transpose: rank-%d source into rank-%d destination", r, out.Rank())
	}

	var err error
	for d := 0; d < r; d++ {
		want := in.Size(d)
		switch d {
		case r - 2:
			want = in.Size(r - 1)
		case r - 1:
			want = in.Size(r - 2)
		}
		if out.Size(d) != want {
			err = multierr.Append(err, &tensor.ShapeError{
				Op: "transpose", Dim: d, Want: want, Got: out.Size(d), Err: tensor.ErrInvalidSize,
			})
		}
	}
	if err != nil {
		return err
	}

	rows, cols := in.Size(r-2), in.Size(r-1)
	if in.TotalSize() == 0 {
		return nil
	}
	batch := in.TotalSize() / (rows * cols)

	if k := s.Kernels(); k != nil && out.IsLinear() && batch <= stream.MaxKernelBatch {
		if dst, ok := any(out).(*tensor.View[float32]); ok {
			src := any(in).(*tensor.View[float32])
			n := in.TotalSize()
			return s.Submit(func() error {
				return k.TransposeFloat32(dst.Data()[:n], src.Data()[:n], batch, rows, cols)
			})
		}
	}

	cfg := s.Config().Parallel
	return s.Submit(func() error {
		return transposeTiles(out, in, batch, rows, cols, cfg)
	})
}

// transposeTiles moves tileDim x tileDim blocks, with the batch folded into
// the outer parallel loop.
func transposeTiles[T any](out, in *tensor.View[T], batch, rows, cols int, cfg parallel.Config) error {
	r := in.Rank()
	src := in.Data()
	tilesR := (rows + tileDim - 1) / tileDim
	tilesC := (cols + tileDim - 1) / tileDim

	return parallel.ForBatch(batch, tilesR*tilesC, func(b, tile int) {
		idx := batchIndex(out, b, r-2)
		base := b * rows * cols
		r0 := (tile / tilesC) * tileDim
		c0 := (tile % tilesC) * tileDim
		for i := r0; i < min(r0+tileDim, rows); i++ {
			for j := c0; j < min(c0+tileDim, cols); j++ {
				idx[r-2], idx[r-1] = j, i
				out.Set(idx, src[base+i*cols+j])
			}
		}
	}, cfg)
}

// batchIndex decodes the linear batch number b into the leading n coordinates of v.
func batchIndex[T any](v *tensor.View[T], b, n int) tensor.Index {
	var idx tensor.Index
	for d := n - 1; d >= 0; d-- {
		idx[d] = b % v.Size(d)
		b /= v.Size(d)
	}
	return idx
}
