package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/binbinmeng/MatX/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	s := stream.New(stream.DefaultConfig())
	defer func() { require.NoError(t, s.Close()) }()

	for _, name := range demoNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runDemo(&buf, name, 3, s, ""))
			assert.Contains(t, buf.String(), "input:")
			assert.Contains(t, buf.String(), name+":")
		})
	}
}

func TestRunDemoFFTShift(t *testing.T) {
	s := stream.New(stream.DefaultConfig())
	defer func() { require.NoError(t, s.Close()) }()

	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, "fftshift", 2, s, ""))
	assert.Contains(t, buf.String(), "fftshift:\nView[float64][2 2] on CPU\n[\n [3 2]\n [1 0]\n]\n")
}

func TestRunDemoErrors(t *testing.T) {
	s := stream.New(stream.DefaultConfig())
	defer func() { require.NoError(t, s.Close()) }()

	var buf bytes.Buffer
	assert.Error(t, runDemo(&buf, "nope", 3, s, ""))
	assert.Error(t, runDemo(&buf, "kron", 0, s, ""))
	assert.Zero(t, buf.Len())
}

func TestRunDemoSaveAndInspect(t *testing.T) {
	s := stream.New(stream.DefaultConfig())
	defer func() { require.NoError(t, s.Close()) }()

	path := filepath.Join(t.TempDir(), "planar.safetensors")
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, "planar", 2, s, path))

	buf.Reset()
	require.NoError(t, inspect(&buf, path))
	assert.Contains(t, buf.String(), "operator: planar\n")
	assert.Contains(t, buf.String(), "input C128 [2]\n")
	assert.Contains(t, buf.String(), "output F64 [4]\n")
}

func TestRunDemoCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemoCommand([]string{"-op", "fftshift", "-n", "2", "-sequential"}, &buf))
	assert.Contains(t, buf.String(), "fftshift:\n")

	buf.Reset()
	err := runDemoCommand([]string{"-op", "nope"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo nope")
	assert.Zero(t, buf.Len())

	assert.Error(t, runDemoCommand([]string{"-bogus"}, &buf))
}
