package simdwidth

import "golang.org/x/sys/cpu"

// Package-level feature-flag variables, resolved once at package init and
// read many times.
var (
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	hasAVX2   = cpu.X86.HasAVX2
)

func hasWidth512() bool { return hasAVX512 }
func hasWidth256() bool { return hasAVX2 }
