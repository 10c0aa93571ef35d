// Package array provides dense, row-major real and complex arrays of rank 1
// to 3 and a pool for reusable scratch rows.
//
// Arrays are thin views over a flat slice: the last axis is contiguous, so
// Row returns a subslice that DSP kernels can operate on directly. Frame sets
// are rank 2 (frames x samples) or rank 3 (batch x frames x samples).
package array
