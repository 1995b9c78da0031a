// Package serialization saves and loads views in the SafeTensors format.
//
// File layout:
//
//	[8 bytes: header size (uint64 LE)]
//	[header: JSON object, name -> {dtype, shape, data_offsets}]
//	[tensor data: raw little-endian elements, row-major]
//
// Tensors are written in alphabetical order by name. The writer records a
// SHA-256 checksum of the data section under the "sha256" metadata key; the
// reader verifies it when present. Non-linear views are packed in row-major
// order on write, so a round trip always yields a linear view.
//
// Example usage:
//
//	w := serialization.NewWriter()
//	if err := serialization.Add(w, "signal", v); err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.Save("vectors.safetensors"); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := serialization.Open("vectors.safetensors")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	signal, err := serialization.Load[complex64](f, "signal")
package serialization
