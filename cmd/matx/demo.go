package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/binbinmeng/MatX/expr"
	"github.com/binbinmeng/MatX/internal/serialization"
	"github.com/binbinmeng/MatX/stream"
	"github.com/binbinmeng/MatX/tensor"
	"github.com/binbinmeng/MatX/transform"
	"github.com/pkg/errors"
)

// result is a view the CLI can print and save.
type result interface {
	fmt.Stringer
	addTo(w *serialization.Writer, name string) error
}

// demo builds its output on s and returns the input and output views.
type demo func(n int, s *stream.Stream) (in, out result, err error)

type formatted[T any] struct{ v *tensor.View[T] }

func (f formatted[T]) String() string { return tensor.Format(f.v) }

func (f formatted[T]) addTo(w *serialization.Writer, name string) error {
	return serialization.Add(w, name, f.v)
}

var demos = map[string]demo{
	"kron":      kronDemo,
	"diag":      diagDemo,
	"fftshift":  fftShiftDemo,
	"ifftshift": ifftShiftDemo,
	"reverse":   reverseDemo,
	"shift":     shiftDemo,
	"transpose": transposeDemo,
	"permute":   permuteDemo,
	"repmat":    repMatDemo,
	"hermitian": hermitianDemo,
	"planar":    planarDemo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runDemo evaluates the named operator on ramp input of size n and writes
// the input and result to w. A non-empty savePath also stores both views
// as "input" and "output" in a SafeTensors file.
func runDemo(w io.Writer, name string, n int, s *stream.Stream, savePath string) error {
	d, ok := demos[name]
	if !ok {
		return errors.Errorf("unknown operator %q, want one of %v", name, demoNames())
	}
	if n < 1 {
		return errors.Errorf("size must be positive, got %d", n)
	}

	in, out, err := d(n, s)
	if err != nil {
		return err
	}
	if err := s.Synchronize(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "input:\n%s\n%s:\n%s", in, name, out); err != nil {
		return err
	}
	if savePath == "" {
		return nil
	}

	sw := serialization.NewWriter()
	sw.SetMetadata("operator", name)
	if err := in.addTo(sw, "input"); err != nil {
		return err
	}
	if err := out.addTo(sw, "output"); err != nil {
		return err
	}
	return sw.Save(savePath)
}

// inspect lists the tensors stored in a SafeTensors file.
func inspect(w io.Writer, path string) error {
	f, err := serialization.Open(path)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(f.Metadata()))
	for k := range f.Metadata() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, f.Metadata()[k]); err != nil {
			return err
		}
	}
	for _, name := range f.Names() {
		meta, err := f.Info(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s %v\n", name, meta.DType, meta.Shape); err != nil {
			return err
		}
	}
	return nil
}

// ramp returns a row-major view holding 0, 1, 2, ...
func ramp[T float32 | float64](shape tensor.Shape) *tensor.View[T] {
	v := tensor.Make[T](shape)
	data := v.Data()
	for i := range data {
		data[i] = T(i)
	}
	return v
}

// complexRamp returns a row-major view holding 0, 1+1i, 2+2i, ...
func complexRamp(shape tensor.Shape) *tensor.View[complex128] {
	v := tensor.Make[complex128](shape)
	data := v.Data()
	for i := range data {
		data[i] = complex(float64(i), float64(i))
	}
	return v
}

// evaluate assigns src into a new view of src's shape.
func evaluate[T any](src expr.Operator[T], s *stream.Stream) (*tensor.View[T], error) {
	out := tensor.Make[T](expr.ShapeOf(src))
	assign, err := expr.Set(out, src)
	if err != nil {
		return nil, err
	}
	return out, s.Evaluate(assign)
}

// unary evaluates the node build makes from in.
func unary[T, R any](in *tensor.View[T], s *stream.Stream,
	build func(*tensor.View[T]) (expr.Operator[R], error),
) (result, result, error) {
	op, err := build(in)
	if err != nil {
		return nil, nil, err
	}
	out, err := evaluate(op, s)
	if err != nil {
		return nil, nil, err
	}
	return formatted[T]{in}, formatted[R]{out}, nil
}

func kronDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		eye := tensor.Make[float64](tensor.Shape{2, 2})
		eye.Set(tensor.Index{0, 0}, 1)
		eye.Set(tensor.Index{1, 1}, 1)
		return expr.Kron[float64](eye, in)
	})
}

func diagDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.Diag[float64](in)
	})
}

func fftShiftDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.FFTShift2D[float64](in)
	})
}

func ifftShiftDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.IFFTShift2D[float64](in)
	})
}

func reverseDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.FlipUD[float64](in)
	})
}

func shiftDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n, n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.Shift1[float64](in, -1)
	})
}

func repMatDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(ramp[float64](tensor.Shape{n}), s, func(in *tensor.View[float64]) (expr.Operator[float64], error) {
		return expr.RepMat[float64](in, 2)
	})
}

func hermitianDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(complexRamp(tensor.Shape{n, n}), s, func(in *tensor.View[complex128]) (expr.Operator[complex128], error) {
		return expr.HermitianT[complex128](in), nil
	})
}

func planarDemo(n int, s *stream.Stream) (result, result, error) {
	return unary(complexRamp(tensor.Shape{n}), s, func(in *tensor.View[complex128]) (expr.Operator[float64], error) {
		return expr.Planar[float64, complex128](in)
	})
}

func transposeDemo(n int, s *stream.Stream) (result, result, error) {
	in := ramp[float32](tensor.Shape{n, n + 1})
	out := tensor.Make[float32](tensor.Shape{n + 1, n})
	if err := transform.Transpose(out, in, s); err != nil {
		return nil, nil, err
	}
	return formatted[float32]{in}, formatted[float32]{out}, nil
}

func permuteDemo(n int, s *stream.Stream) (result, result, error) {
	in := ramp[float32](tensor.Shape{2, n, n + 1})
	out := tensor.Make[float32](tensor.Shape{n + 1, 2, n})
	if err := transform.Permute(out, in, []int{2, 0, 1}, s); err != nil {
		return nil, nil, err
	}
	return formatted[float32]{in}, formatted[float32]{out}, nil
}
