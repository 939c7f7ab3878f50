//go:build !amd64

package bitset

// popcountWords counts set bits using the portable SWAR loop. Non-amd64
// platforms have no POPCNT feature bit to probe, so there is nothing to
// dispatch on here.
func popcountWords(words []uint64) int {
	return popcountWordsGeneric(words)
}
