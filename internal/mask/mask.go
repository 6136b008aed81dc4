// Package mask derives the per-step chain masks from a public seed. Each
// mask binds a hash-chain step to its position by hashing the public seed
// together with the step's one-indexed byte offset.
package mask

import "github.com/xxnetwork/wotsplus/hashcap"

// W is the Winternitz base: each chain has W-1 reachable hops past its
// origin.
const W = 256

// Schedule derives the W-1 per-step XOR masks for a chain of width n bytes,
// recomputing them from pSeed on every call — masks are never cached inside
// a key, only inside a single ladder operation.
func Schedule(prf hashcap.Hash, pSeed []byte, n int) [][]byte {
	masks := make([][]byte, W-1)
	buf := make([]byte, prf.Size)
	for k := 0; k < W-1; k++ {
		h := prf.New()
		h.Write(pSeed)
		h.Write([]byte{byte(k + 1)})
		h.Sum(buf)
		masks[k] = append([]byte(nil), buf[:n]...)
	}
	return masks
}
