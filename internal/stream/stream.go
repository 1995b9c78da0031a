// Package stream provides ordered asynchronous execution of expression trees.
//
// A Stream owns one worker goroutine draining a FIFO queue. Work submitted to
// the same stream runs in submission order; independent streams are unordered
// with respect to each other. Callers synchronize before reading results.
package stream

import (
	"sync"

	"github.com/binbinmeng/MatX/internal/parallel"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrClosed is returned when work is submitted to a closed stream.
var ErrClosed = errors.New("stream closed")

// Kernels is the accelerator hook a stream carries. Bulk transforms delegate to
// it when the element type and layout allow; nil means CPU evaluation only.
type Kernels interface {
	// TransposeFloat32 swaps the last two dimensions of batch row-major
	// rows x cols matrices from src into dst. batch is at most MaxKernelBatch.
	TransposeFloat32(dst, src []float32, batch, rows, cols int) error
}

// MaxKernelBatch is the largest batch handed to Kernels in one call. It is
// the default per-dimension workgroup count limit of WebGPU devices.
const MaxKernelBatch = 65535

// Config controls how a stream evaluates the work submitted to it.
type Config struct {
	Parallel  parallel.Config // CPU fan-out for per-coordinate evaluation.
	Kernels   Kernels         // Optional device kernels.
	QueueSize int             // Submissions buffered before Submit blocks.
}

// DefaultConfig returns CPU evaluation with default parallelism and no device kernels.
func DefaultConfig() Config {
	return Config{
		Parallel:  parallel.DefaultConfig(),
		QueueSize: 64,
	}
}

// Task is a unit of work executed on the stream's worker goroutine.
type Task func() error

// Stream is an ordered execution queue.
//
// Example:
//
//	s := stream.New(stream.DefaultConfig())
//	defer s.Close()
//	if err := s.Evaluate(assign); err != nil { ... }
//	if err := s.Synchronize(); err != nil { ... }
type Stream struct {
	cfg   Config
	tasks chan Task
	done  chan struct{}

	sendMu sync.Mutex // orders Submit against Close
	closed bool

	mu      sync.Mutex
	idle    *sync.Cond // signalled when pending drops to 0
	pending int
	err     error // failures since the last Synchronize
}

// New starts a stream.
func New(cfg Config) *Stream {
	s := &Stream{
		cfg:   cfg,
		tasks: make(chan Task, max(cfg.QueueSize, 0)),
		done:  make(chan struct{}),
	}
	s.idle = sync.NewCond(&s.mu)
	go s.loop()
	return s
}

// Config returns the configuration the stream was created with.
func (s *Stream) Config() Config {
	return s.cfg
}

// Kernels returns the device kernels attached to the stream, or nil.
func (s *Stream) Kernels() Kernels {
	return s.cfg.Kernels
}

// Submit enqueues t and returns without waiting for it to run.
// It must not be called from a task running on the same stream.
func (s *Stream) Submit(t Task) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
	s.tasks <- t
	return nil
}

// Synchronize blocks until every task submitted so far has finished and
// returns their aggregated failures. Failures are reported once.
func (s *Stream) Synchronize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending > 0 {
		s.idle.Wait()
	}
	err := s.err
	s.err = nil
	return err
}

// Close drains the queue, stops the worker and returns any unreported failures.
// Closing twice is a no-op.
func (s *Stream) Close() error {
	s.sendMu.Lock()
	if s.closed {
		s.sendMu.Unlock()
		return nil
	}
	s.closed = true
	close(s.tasks)
	s.sendMu.Unlock()

	<-s.done
	return s.Synchronize()
}

func (s *Stream) loop() {
	defer close(s.done)
	for t := range s.tasks {
		err := execute(t)
		s.mu.Lock()
		s.err = multierr.Append(s.err, err)
		s.pending--
		if s.pending == 0 {
			s.idle.Broadcast()
		}
		s.mu.Unlock()
	}
}

func execute(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = errors.Wrap(rerr, "stream task panicked")
				return
			}
			err = errors.Errorf("stream task panicked: %v", r)
		}
	}()
	return t()
}
