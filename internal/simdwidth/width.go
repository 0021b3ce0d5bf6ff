// Package simdwidth resolves the SIMD lane width the scorer and prefilter
// should run at: 128, 256, or 512 bits, each carrying 16-bit lanes (so 8, 16,
// or 32 lanes respectively). Resolution happens once per process, cached
// behind a one-shot guard.
package simdwidth

import (
	"os"
	"sync"
)

// Width is a SIMD register width in bits.
type Width int

const (
	Width128 Width = 128
	Width256 Width = 256
	Width512 Width = 512
)

// Lanes returns the number of 16-bit lanes a register of this width holds.
func (w Width) Lanes() int {
	return int(w) / 16
}

const forceEnv = "FUZZLANE_FORCE_SIMD"

var (
	once     sync.Once
	resolved Width
)

// Detect returns the process-wide SIMD width, resolving it on first call
// under a one-shot guarantee (no torn initialization). Consults
// FUZZLANE_FORCE_SIMD first; falls back to CPU feature probing.
func Detect() Width {
	once.Do(func() {
		resolved = detectOnce()
	})
	return resolved
}

func detectOnce() Width {
	switch os.Getenv(forceEnv) {
	case "128":
		return Width128
	case "256":
		return Width256
	case "512":
		return Width512
	case "scalar":
		// No scalar-only width exists in this enum; the narrowest SIMD width
		// is the closest equivalent and is what prefilter/sw fall back to
		// on hardware lacking any of the probed features anyway.
		return Width128
	}
	return probe()
}

// probe reports the widest vector width the current CPU advertises. Falls
// back to 128-bit on detection failure or unsupported hardware — CPU
// feature detection is never allowed to be fatal.
func probe() Width {
	if hasWidth512() {
		return Width512
	}
	if hasWidth256() {
		return Width256
	}
	return Width128
}
