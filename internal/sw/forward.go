// Package sw implements the Smith-Waterman forward scorer with affine gaps
// and positional bonuses, plus a reverse typo-counting pass.
//
// A real SIMD port holds one row across L haystacks as a vector of lanes and
// advances all L in lockstep. This port has no assembly backend (see
// DESIGN.md), so each lane is scored independently with the identical
// recurrence; determinism, bucket-width invariance, and lane-position
// invariance hold trivially because the math performed per lane never
// depends on what any other lane is doing.
package sw

import (
	"bytes"

	"github.com/mhr3/fuzzlane/internal/bucket"
	"github.com/mhr3/fuzzlane/params"
)

// LaneResult is one lane's forward-pass outcome.
type LaneResult struct {
	ID      uint32
	Score   uint16
	Discard bool

	// bestRow/bestCol locate the cell that produced Score, 1-indexed into
	// the needle/haystack respectively. Needed by the reverse pass; zero
	// when Score is 0 (no local alignment found).
	bestRow, bestCol int
}

// BestRow returns the 1-indexed needle position of the cell that produced
// Score; 0 if Score is 0. Used by the reverse pass (Typos).
func (r LaneResult) BestRow() int { return r.bestRow }

// BestCol returns the 1-indexed haystack column of the cell that produced
// Score; 0 if Score is 0.
func (r LaneResult) BestCol() int { return r.bestCol }

// Forward scores every slot in a bucket against needle. width is the
// bucket's nominal padded length (all slots' Haystack fields have length
// <= width).
func Forward(needle []byte, width int, slots []bucket.Slot, p params.Params) []LaneResult {
	out := make([]LaneResult, len(slots))
	if len(needle) == 0 {
		// An empty needle scores 0 for every haystack.
		for i, s := range slots {
			out[i] = LaneResult{ID: s.ID, Discard: s.Discard}
		}
		return out
	}

	lowNeedle := make([]byte, len(needle))
	for i, c := range needle {
		lowNeedle[i] = params.ToLower(c)
	}

	for lane, slot := range slots {
		score, bestRow, bestCol := scoreOne(needle, lowNeedle, slot.Haystack, width, p)
		out[lane] = LaneResult{
			ID:      slot.ID,
			Score:   score,
			Discard: slot.Discard,
			bestRow: bestRow,
			bestCol: bestCol,
		}
	}
	return out
}

// scoreOne runs the affine-gap recurrence for one haystack against needle,
// using rolling H/F rows (E only ever depends on the current row, so it
// never needs to be retained across rows).
func scoreOne(needle, lowNeedle, haystack []byte, width int, p params.Params) (best uint16, bestRow, bestCol int) {
	m := len(needle)
	n := len(haystack)

	prevH := make([]uint16, width+1)
	prevF := make([]uint16, width+1)
	curH := make([]uint16, width+1)
	curE := make([]uint16, width+1)
	curF := make([]uint16, width+1)

	for i := 1; i <= m; i++ {
		curH[0] = 0
		curE[0] = 0
		curF[0] = 0
		for j := 1; j <= width; j++ {
			var hb byte
			inBounds := j-1 < n
			if inBounds {
				hb = haystack[j-1]
			} else {
				hb = bucket.SentinelByte
			}

			var diag uint16
			if inBounds && params.EqualFold(lowNeedle[i-1], hb) {
				diag = satAdd(prevH[j-1], matchScore(needle[i-1], haystack, j, p))
			} else {
				diag = satSub(prevH[j-1], p.MismatchPenalty)
			}

			eOpen := satSub(curH[j-1], p.GapOpenPenalty)
			eExt := satSub(curE[j-1], p.GapExtendPenalty)
			curE[j] = max2(eOpen, eExt)

			fOpen := satSub(prevH[j], p.GapOpenPenalty)
			fExt := satSub(prevF[j], p.GapExtendPenalty)
			curF[j] = max2(fOpen, fExt)

			h := max4(diag, curE[j], curF[j], 0)
			curH[j] = h
			if h > 0 && h >= best {
				best = h
				bestRow, bestCol = i, j
			}
		}
		prevH, curH = curH, prevH
		prevF, curF = curF, prevF
	}

	if best > 0 && n == m && bytes.Equal(haystack[:n], needle) {
		best = satAdd(best, p.ExactMatchBonus)
	}
	return best, bestRow, bestCol
}

// matchScore computes s(i,j) for a matching position: the match reward plus
// every applicable positional bonus, given the haystack byte at column j
// (1-indexed).
func matchScore(needleByte byte, haystack []byte, j int, p params.Params) uint16 {
	s := p.MatchReward
	hb := haystack[j-1]

	if j == 1 {
		s = satAdd(s, p.PrefixBonus)
	}
	if j > 1 {
		prev := haystack[j-2]
		if params.IsDelimiter(prev) {
			s = satAdd(s, p.DelimiterBonus)
		}
		if params.IsUpper(hb) && params.IsLower(prev) {
			s = satAdd(s, p.CapitalizationBonus)
		}
	}
	if needleByte == hb {
		s = satAdd(s, p.MatchingCaseBonus)
	}
	return s
}
