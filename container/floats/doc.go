// Package floats provides element-wise kernels for float64 vectors.
// The heavy lifting is delegated to algo-vecmath, which picks a SIMD
// implementation for the running CPU.
package floats
