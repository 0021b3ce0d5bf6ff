package prefilter

// byteSet is a 256-bit presence set, one bit per byte value. Grounded on the
// teacher's ascii_arm64.go CharSet ([4]uint64 bitset, c>>6 / 1<<(c&63)
// indexing), repurposed here from "any of these chars present" (IndexAny) to
// "which of the needle's chars are present" (the prefilter's §4.2 contract).
type byteSet [4]uint64

func (s *byteSet) set(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

func (s *byteSet) has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}
