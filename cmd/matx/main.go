// Package main provides the MatX CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/binbinmeng/MatX/backend/webgpu"
	"github.com/binbinmeng/MatX/stream"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("MatX %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		if err := runDemoCommand(os.Args[2:], os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if len(os.Args) > 2 && os.Args[1] == "inspect" {
		if err := inspect(os.Stdout, os.Args[2]); err != nil {
			log.Fatalf("inspect %s: %v", os.Args[2], err)
		}
		return
	}

	fmt.Println("MatX - Lazy Tensor Expressions for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Evaluate one operator on a ramp and print the result")
	fmt.Println("  inspect    List the tensors in a SafeTensors file")
	fmt.Println("")
	fmt.Printf("Demo operators: %v\n", demoNames())
}

// runDemoCommand parses the demo flags and runs one operator. The stream and
// device are released before it returns, so callers may exit on error.
func runDemoCommand(args []string, w io.Writer) (err error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	op := fs.String("op", "fftshift", "Operator to demonstrate")
	n := fs.Int("n", 4, "Size of each input dimension")
	gpu := fs.Bool("gpu", false, "Attach WebGPU kernels to the stream when available")
	sequential := fs.Bool("sequential", false, "Evaluate on a single goroutine")
	save := fs.String("save", "", "Also write input and output to this SafeTensors file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.Wrap(err, "demo")
	}

	cfg := stream.DefaultConfig()
	if *sequential {
		cfg.Parallel = stream.Sequential()
	}
	if *gpu {
		dev, err := webgpu.New()
		if err != nil {
			log.Printf("WebGPU unavailable, using CPU: %v", err)
		} else {
			defer dev.Release()
			log.Printf("GPU kernels: %s", dev.Name())
			cfg.Kernels = dev
		}
	}

	// Deferred after the device so the stream drains before the device goes.
	s := stream.New(cfg)
	defer func() {
		err = multierr.Append(err, errors.Wrap(s.Close(), "stream close"))
	}()

	return errors.Wrapf(runDemo(w, *op, *n, s, *save), "demo %s", *op)
}
