package sw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/fuzzlane/internal/bucket"
	"github.com/mhr3/fuzzlane/params"
)

func score(t *testing.T, needle, haystack string) uint16 {
	t.Helper()
	slots := []bucket.Slot{{ID: 1, Haystack: []byte(haystack)}}
	res := Forward([]byte(needle), 64, slots, params.Default())
	require.Len(t, res, 1)
	return res[0].Score
}

// needle="foo", haystack="foo" -> 3*16 + prefix(8) + 3*matching-case(1) +
// exact(8) = 67.
func TestExactMatchScoresFullBonus(t *testing.T) {
	assert.Equal(t, uint16(67), score(t, "foo", "foo"))
}

// needle="foo" haystack="FOO" scores less than the exact match, but
// nonzero (case-insensitive match still scores, minus the case/exact bonus).
func TestCaseInsensitiveMatchScoresLessThanExact(t *testing.T) {
	exact := score(t, "foo", "foo")
	caseFolded := score(t, "foo", "FOO")
	assert.Greater(t, caseFolded, uint16(0))
	assert.Less(t, caseFolded, exact)
}

// "fBr" scores fooBar > foo_bar (49 vs 46 with default weights): the B in
// fooBar earns the capitalization and matching-case bonuses, the b in
// foo_bar only the equally sized delimiter bonus, and fooBar's B sits one
// gap column closer to the f.
func TestCapitalizationBonusOutscoresDelimiterOnly(t *testing.T) {
	sFooBar := score(t, "fBr", "fooBar")
	sFooUnderscoreBar := score(t, "fBr", "foo_bar")
	assert.Greater(t, sFooBar, uint16(0))
	assert.Greater(t, sFooUnderscoreBar, uint16(0))
	assert.Greater(t, sFooBar, sFooUnderscoreBar)
}

// needle="hw" haystack="hello_world" includes prefix and delimiter bonus.
func TestPrefixAndDelimiterBonusStack(t *testing.T) {
	withBonuses := score(t, "hw", "hello_world")
	noPrefix := score(t, "hw", "xhello_world")
	assert.Greater(t, withBonuses, noPrefix)
}

// Scores never fall outside [0, 65535] regardless of input.
func TestSaturationNeverWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		needle := randASCII(rng, 1+rng.Intn(16))
		haystack := randASCII(rng, rng.Intn(64))
		s := score(t, needle, haystack)
		assert.LessOrEqual(t, s, uint16(65535))
	}
}

// needle == haystack scores m*match + applicable bonuses + exact bonus,
// and no haystack of equal length scores higher.
func TestExactMatchDominance(t *testing.T) {
	needle := "README"
	exact := score(t, needle, "README")
	p := params.Default()
	expected := 6*p.MatchReward + p.PrefixBonus + 6*p.MatchingCaseBonus + p.ExactMatchBonus
	assert.Equal(t, expected, exact)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		other := randASCII(rng, len(needle))
		if other == needle {
			continue
		}
		assert.LessOrEqual(t, score(t, needle, other), exact)
	}
}

// Enabling a bonus (by construction it's additive) never decreases score.
func TestBonusesAreMonotone(t *testing.T) {
	base := params.Default()
	zeroed := base
	zeroed.PrefixBonus = 0
	zeroed.DelimiterBonus = 0
	zeroed.CapitalizationBonus = 0
	zeroed.MatchingCaseBonus = 0
	zeroed.ExactMatchBonus = 0

	slots := []bucket.Slot{{ID: 1, Haystack: []byte("fooBar")}}
	withBonuses := Forward([]byte("fBr"), 64, slots, base)[0].Score
	without := Forward([]byte("fBr"), 64, slots, zeroed)[0].Score
	assert.GreaterOrEqual(t, withBonuses, without)
}

func TestEmptyNeedleScoresZero(t *testing.T) {
	slots := []bucket.Slot{{ID: 1, Haystack: []byte("anything")}, {ID: 2, Haystack: []byte("x")}}
	res := Forward(nil, 64, slots, params.Default())
	for _, r := range res {
		assert.Equal(t, uint16(0), r.Score)
	}
}

// A haystack's score must not depend on which lane (slot position) it
// occupies within the bucket.
func TestLanePositionInvariance(t *testing.T) {
	p := params.Default()
	a := bucket.Slot{ID: 1, Haystack: []byte("fooBar")}
	b := bucket.Slot{ID: 2, Haystack: []byte("barFoo")}
	r1 := Forward([]byte("fBr"), 64, []bucket.Slot{a, b}, p)
	r2 := Forward([]byte("fBr"), 64, []bucket.Slot{b, a}, p)
	assert.Equal(t, r1[0].Score, r2[1].Score)
	assert.Equal(t, r1[1].Score, r2[0].Score)
}

// needle="abc" haystack="axbxc" with a typo budget of 2 reports 2 typos
// (two single-character gaps).
func TestReverseTypoCountForInterleavedGaps(t *testing.T) {
	needle := []byte("abc")
	haystack := []byte("axbxc")
	slots := []bucket.Slot{{ID: 1, Haystack: haystack}}
	res := Forward(needle, 64, slots, params.Default())
	require.Greater(t, res[0].Score, uint16(0))

	typos, ok := Typos(needle, haystack, 64, res[0].bestRow, res[0].bestCol, 2, params.Default())
	assert.True(t, ok)
	assert.Equal(t, 2, typos)
}

// The reverse pass agrees with the forward-pass optimal path: an exact
// match has zero typos.
func TestReverseAgreementOnExactMatch(t *testing.T) {
	needle := []byte("hello")
	haystack := []byte("hello")
	slots := []bucket.Slot{{ID: 1, Haystack: haystack}}
	res := Forward(needle, 64, slots, params.Default())
	typos, ok := Typos(needle, haystack, 64, res[0].bestRow, res[0].bestCol, 255, params.Default())
	assert.True(t, ok)
	assert.Equal(t, 0, typos)
}

// Score is independent of the bucket's nominal width (as long as it's >=
// the haystack length) and of how much padding surrounds the haystack.
func TestScoreIndependentOfBucketWidth(t *testing.T) {
	needle := []byte("fBr")
	haystack := []byte("fooBar")
	for _, width := range bucket.Widths {
		if width < len(haystack) {
			continue
		}
		slots := []bucket.Slot{{ID: 1, Haystack: haystack}}
		res := Forward(needle, width, slots, params.Default())
		assert.Equal(t, score(t, "fBr", "fooBar"), res[0].Score, "width=%d", width)
	}
}

func TestTyposOverBudgetRejected(t *testing.T) {
	needle := []byte("abc")
	haystack := []byte("axbxc")
	slots := []bucket.Slot{{ID: 1, Haystack: haystack}}
	res := Forward(needle, 64, slots, params.Default())
	_, ok := Typos(needle, haystack, 64, res[0].bestRow, res[0].bestCol, 1, params.Default())
	assert.False(t, ok)
}

func randASCII(rng *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
