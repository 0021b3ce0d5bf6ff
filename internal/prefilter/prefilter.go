// Package prefilter implements a cheap "could this haystack possibly match"
// rejection test. It is vectorized in spirit: presence of haystack bytes is
// accumulated by scanning fixed-width windows (sized to the active SIMD
// width) rather than byte-at-a-time, and accepts false positives but never
// false negatives.
package prefilter

import (
	"github.com/mhr3/fuzzlane/internal/simdwidth"
	"github.com/mhr3/fuzzlane/params"
)

// Accepts reports whether haystack could possibly match needle: true iff at
// most maxTypos of needle's distinct bytes (case-folded) are absent from
// haystack; repeated needle bytes are counted once. maxTypos is the
// caller's typo budget K (0 when typos are disabled).
//
// False positives are permitted; false negatives are not.
func Accepts(needle, haystack []byte, maxTypos int) bool {
	if len(needle) == 0 {
		return true
	}
	present := buildPresence(haystack, simdwidth.Detect())

	missing := 0
	seen := make(map[byte]bool, len(needle))
	for _, c := range needle {
		lc := params.ToLower(c)
		if seen[lc] {
			continue
		}
		seen[lc] = true
		if !present.has(lc) {
			missing++
			if missing > maxTypos {
				return false
			}
		}
	}
	return true
}

// buildPresence scans haystack in windows sized to w and records, for every
// byte value, whether it occurs (case-folded). The window size only affects
// how many bytes are consumed per iteration of the scan, not the result.
func buildPresence(haystack []byte, w simdwidth.Width) byteSet {
	window := int(w) / 16 // 128->8, 256->16, 512->32 bytes per window.

	var set byteSet
	i := 0
	for ; i+window <= len(haystack); i += window {
		scanWindow(haystack[i:i+window], &set)
	}
	if i < len(haystack) {
		scanWindow(haystack[i:], &set)
	}
	return set
}

// scanWindow folds every byte in win to lowercase and marks it present.
// Unrolled by 8 since windows are always a multiple of 8 bytes (or a short
// tail).
func scanWindow(win []byte, set *byteSet) {
	i := 0
	for ; i+8 <= len(win); i += 8 {
		set.set(params.ToLower(win[i]))
		set.set(params.ToLower(win[i+1]))
		set.set(params.ToLower(win[i+2]))
		set.set(params.ToLower(win[i+3]))
		set.set(params.ToLower(win[i+4]))
		set.set(params.ToLower(win[i+5]))
		set.set(params.ToLower(win[i+6]))
		set.set(params.ToLower(win[i+7]))
	}
	for ; i < len(win); i++ {
		set.set(params.ToLower(win[i]))
	}
}
