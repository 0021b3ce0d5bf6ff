//go:build !amd64 && !arm64

package simdwidth

// No SIMD feature probing on unrecognized architectures; the portable Go
// kernels at 128-bit-equivalent lane counts are used everywhere.
func hasWidth512() bool { return false }
func hasWidth256() bool { return false }
