package simdwidth

import "golang.org/x/sys/cpu"

// NEON (ASIMD) is mandatory on arm64, so the 256-bit lane-doubled path is
// always available; SVE with a 512-bit-equivalent vector length is optional.
var hasSVE = cpu.ARM64.HasSVE

func hasWidth512() bool { return hasSVE }
func hasWidth256() bool { return cpu.ARM64.HasASIMD }
