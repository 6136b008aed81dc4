// Package chain implements the tweaked hash-chain walk shared by every mode
// of the ladder engine: signing, verifying, public-key computation, and
// ladder precomputation all walk the same chain, differing only in the
// [begin, end) range.
package chain

import "github.com/xxnetwork/wotsplus/hashcap"

// Walk advances input, the chain's value at step begin, to its value at
// step end by applying, for each step j in [begin, end):
//
//	preimage = input XOR masks[j]
//	input    = PRFH(pSeed || byte(j+1) || preimage)
//
// If begin == end, input is returned unchanged. When record is non-nil, the
// value after each step j is written to record[j+1] (used by the ladder
// engine's Generate mode to populate the precomputed chain table); record
// must have length W (256), with record[0] already holding the chain's
// origin before the first call to Walk.
func Walk(prf hashcap.Hash, pSeed []byte, input []byte, masks [][]byte, begin, end int, record [][]byte) []byte {
	n := len(input)
	value := append([]byte(nil), input...)
	if begin == end {
		return value
	}

	preimage := make([]byte, n)
	buf := make([]byte, prf.Size)
	for j := begin; j < end; j++ {
		m := masks[j]
		for i := 0; i < n; i++ {
			preimage[i] = value[i] ^ m[i]
		}

		h := prf.New()
		h.Write(pSeed)
		h.Write([]byte{byte(j + 1)})
		h.Write(preimage)
		h.Sum(buf)
		copy(value, buf[:n])

		if record != nil {
			record[j+1] = append([]byte(nil), value...)
		}
	}
	return value
}
