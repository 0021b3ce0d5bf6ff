package fuzzlane

import (
	"sort"

	"github.com/mhr3/fuzzlane/internal/bucket"
	"github.com/mhr3/fuzzlane/internal/prefilter"
	"github.com/mhr3/fuzzlane/internal/simdwidth"
	"github.com/mhr3/fuzzlane/internal/sw"
	"github.com/mhr3/fuzzlane/params"
)

// MaxNeedleLen is the longest needle the core accepts: scores and indices
// are packed into 16-bit lanes.
const MaxNeedleLen = 64

// Item is one caller-supplied (id, haystack) pair.
type Item struct {
	ID       uint32
	Haystack []byte
}

// Match is one scored result.
type Match struct {
	ID       uint32
	Score    uint16
	Typos    int
	HasTypos bool // true iff Options.MaxTypos was enabled for this call
}

// MatchOne scores a single haystack against needle.
func MatchOne(needle, haystack []byte, opts Options) (Match, bool) {
	out := MatchMany(needle, []Item{{Haystack: haystack}}, opts)
	if len(out) == 0 {
		return Match{}, false
	}
	return out[0], true
}

// MatchMany scores every item against needle and returns the survivors,
// using the default scoring parameters. Use MatchManyWithParams for a
// caller-supplied weight table.
func MatchMany(needle []byte, items []Item, opts Options) []Match {
	return MatchManyWithParams(needle, items, opts, params.Default())
}

// MatchManyWithParams is MatchMany with an explicit params.Params.
func MatchManyWithParams(needle []byte, items []Item, opts Options, p params.Params) []Match {
	// A needle over MaxNeedleLen is a caller-programming error: the whole
	// call reports no matches rather than erroring.
	if len(needle) > MaxNeedleLen {
		return nil
	}

	maxTypos := 0
	if opts.MaxTypos.Enabled() {
		maxTypos = int(opts.MaxTypos.K())
	}

	lanes := simdwidth.Detect().Lanes()

	results := make([]Match, 0, len(items))

	sink := func(width int, slots []bucket.Slot) {
		laneResults := sw.Forward(needle, width, slots, p)
		for i, lr := range laneResults {
			if lr.Discard {
				continue
			}
			if lr.Score < opts.MinScore {
				continue
			}
			m := Match{ID: lr.ID, Score: lr.Score}
			if opts.MaxTypos.Enabled() {
				m.HasTypos = true
				typos, ok := sw.Typos(needle, slots[i].Haystack, width, lr.BestRow(), lr.BestCol(), maxTypos, p)
				if !ok {
					continue
				}
				m.Typos = typos
			}
			results = append(results, m)
		}
	}

	overflow := func(id uint32, haystack []byte) {
		// Haystacks over bucket.MaxHaystackLen belong to the external
		// scalar fallback; the core itself reports no match for them.
	}

	b := bucket.New(lanes, sink, overflow)

	for _, item := range items {
		if len(item.Haystack) > bucket.MaxHaystackLen {
			continue
		}
		if opts.Prefilter && !prefilter.Accepts(needle, item.Haystack, maxTypos) {
			continue
		}
		b.Put(item.ID, item.Haystack)
	}
	b.Flush()

	if opts.Sort {
		sortMatches(results, opts.StableTiebreak)
	}
	return results
}

// sortMatches orders descending by score; stableTiebreak additionally
// breaks ties by ascending id.
func sortMatches(matches []Match, stableTiebreak bool) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if stableTiebreak {
			return matches[i].ID < matches[j].ID
		}
		return false
	})
}
