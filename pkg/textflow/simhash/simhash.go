// Package simhash computes 64-bit similarity hashes over term lists.
// Near-duplicate texts produce hashes with a small Hamming distance,
// which makes the hash usable as a cheap deduplication key.
package simhash

import (
	"hash/fnv"
	"math/bits"
)

// Hash computes the similarity hash of a term list. Each term votes on
// every bit position with its FNV-1a hash; the sign of the tally decides
// the output bit. An empty term list hashes to zero.
func Hash(terms []string) uint64 {
	if len(terms) == 0 {
		return 0
	}

	var tally [64]int
	for _, t := range terms {
		h := fnv.New64a()
		h.Write([]byte(t))
		sum := h.Sum64()
		for bit := 0; bit < 64; bit++ {
			if sum&(1<<uint(bit)) != 0 {
				tally[bit]++
			} else {
				tally[bit]--
			}
		}
	}

	var out uint64
	for bit := 0; bit < 64; bit++ {
		if tally[bit] > 0 {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// Distance returns the Hamming distance between two hashes.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}
