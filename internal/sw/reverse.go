package sw

import (
	"github.com/mhr3/fuzzlane/internal/bucket"
	"github.com/mhr3/fuzzlane/params"
)

// choice tags record which transition produced a cell's value, so the
// reverse pass can walk the argmax path without recomputing the recurrence.
type choice uint8

const (
	fromZero choice = iota
	fromDiagMatch
	fromDiagMismatch
	fromE
	fromF
)

type gapOrigin uint8

const (
	originOpen gapOrigin = iota
	originExtend
)

// Typos re-executes the affine-gap recurrence with full matrices retained
// (unlike Forward's rolling rows) so it can walk back from (bestRow,
// bestCol) along the optimal path and count edits. Returns the typo count
// and whether it's within maxTypos.
func Typos(needle, haystack []byte, width int, bestRow, bestCol int, maxTypos int, p params.Params) (typos int, ok bool) {
	m := len(needle)
	n := len(haystack)
	if bestRow == 0 || bestCol == 0 {
		return 0, maxTypos >= 0
	}

	lowNeedle := make([]byte, m)
	for i, c := range needle {
		lowNeedle[i] = params.ToLower(c)
	}

	stride := width + 1
	h := make([]uint16, (m+1)*stride)
	e := make([]uint16, (m+1)*stride)
	f := make([]uint16, (m+1)*stride)
	hChoice := make([]choice, (m+1)*stride)
	eOrigin := make([]gapOrigin, (m+1)*stride)
	fOrigin := make([]gapOrigin, (m+1)*stride)

	at := func(row, col int) int { return row*stride + col }

	for i := 1; i <= m; i++ {
		for j := 1; j <= width; j++ {
			var hb byte
			inBounds := j-1 < n
			if inBounds {
				hb = haystack[j-1]
			} else {
				hb = bucket.SentinelByte
			}

			var diag uint16
			var dc choice
			if inBounds && params.EqualFold(lowNeedle[i-1], hb) {
				diag = satAdd(h[at(i-1, j-1)], matchScore(needle[i-1], haystack, j, p))
				dc = fromDiagMatch
			} else {
				diag = satSub(h[at(i-1, j-1)], p.MismatchPenalty)
				dc = fromDiagMismatch
			}

			eOpen := satSub(h[at(i, j-1)], p.GapOpenPenalty)
			eExt := satSub(e[at(i, j-1)], p.GapExtendPenalty)
			if eOpen >= eExt {
				e[at(i, j)] = eOpen
				eOrigin[at(i, j)] = originOpen
			} else {
				e[at(i, j)] = eExt
				eOrigin[at(i, j)] = originExtend
			}

			fOpen := satSub(h[at(i-1, j)], p.GapOpenPenalty)
			fExt := satSub(f[at(i-1, j)], p.GapExtendPenalty)
			if fOpen >= fExt {
				f[at(i, j)] = fOpen
				fOrigin[at(i, j)] = originOpen
			} else {
				f[at(i, j)] = fExt
				fOrigin[at(i, j)] = originExtend
			}

			best := diag
			bc := dc
			if e[at(i, j)] > best {
				best = e[at(i, j)]
				bc = fromE
			}
			if f[at(i, j)] > best {
				best = f[at(i, j)]
				bc = fromF
			}
			if best == 0 {
				bc = fromZero
			}
			h[at(i, j)] = best
			hChoice[at(i, j)] = bc
		}
	}

	// Walk back from (bestRow, bestCol) along the recorded argmax path.
	type state uint8
	const (
		stateH state = iota
		stateE
		stateF
	)

	st := stateH
	i, j := bestRow, bestCol
	for {
		switch st {
		case stateH:
			if i == 0 || j == 0 || h[at(i, j)] == 0 {
				return typos, typos <= maxTypos
			}
			switch hChoice[at(i, j)] {
			case fromDiagMatch:
				i, j = i-1, j-1
			case fromDiagMismatch:
				typos++
				i, j = i-1, j-1
			case fromE:
				st = stateE
			case fromF:
				st = stateF
			}
		case stateE:
			typos++
			if eOrigin[at(i, j)] == originOpen {
				st = stateH
				j--
			} else {
				j--
			}
		case stateF:
			typos++
			if fOrigin[at(i, j)] == originOpen {
				st = stateH
				i--
			} else {
				i--
			}
		}
		if i < 0 || j < 0 {
			return typos, typos <= maxTypos
		}
	}
}
