//go:build amd64

package bitset

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasPOPCNT reports whether the running CPU exposes the POPCNT instruction.
// Mirrors the feature-gated dispatch the teacher engine uses for its SIMD
// ASCII/memchr primitives: detect once at package init, branch per call.
var hasPOPCNT = cpu.X86.HasPOPCNT

// popcountWords counts set bits across words. On POPCNT-capable amd64 CPUs
// this delegates to math/bits, whose compiler intrinsic lowers directly to
// the hardware instruction. Older amd64 CPUs fall back to the portable SWAR
// loop so behavior (not just speed) stays identical across the fleet.
func popcountWords(words []uint64) int {
	if hasPOPCNT {
		n := 0
		for _, w := range words {
			n += bits.OnesCount64(w)
		}
		return n
	}
	return popcountWordsGeneric(words)
}
