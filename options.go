package fuzzlane

// MaxTypos is the caller's typo budget: either disabled (no reverse pass,
// no typo reporting) or some(k) with k in [0, 255].
type MaxTypos struct {
	enabled bool
	k       uint8
}

// NoMaxTypos disables typo counting and the reverse pass entirely.
func NoMaxTypos() MaxTypos { return MaxTypos{} }

// SomeMaxTypos enables typo counting with budget k. some(0) is the fastest
// typo-aware mode.
func SomeMaxTypos(k uint8) MaxTypos { return MaxTypos{enabled: true, k: k} }

// Enabled reports whether typo counting is on.
func (m MaxTypos) Enabled() bool { return m.enabled }

// K returns the typo budget. Only meaningful when Enabled is true.
func (m MaxTypos) K() uint8 { return m.k }

// Options is the complete set of knobs MatchMany and MatchOne accept.
type Options struct {
	MaxTypos       MaxTypos
	MinScore       uint16
	Sort           bool
	StableTiebreak bool
	Prefilter      bool
}

// DefaultOptions returns the options record's documented defaults:
// typos disabled, min score 0, no sorting, no tiebreak, prefilter on.
func DefaultOptions() Options {
	return Options{
		MaxTypos:  NoMaxTypos(),
		MinScore:  0,
		Prefilter: true,
	}
}
