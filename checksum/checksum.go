// Package checksum computes the message digest and Winternitz checksum
// that together form the per-chain step vector signed by the ladder engine:
// message chunks followed by a checksum over those chunks, with chunks
// sized to a single byte and a one- or two-byte checksum tail.
package checksum

import "github.com/xxnetwork/wotsplus/hashcap"

// W is the Winternitz base; each step vector entry is in [0, W-1].
const W = 256

// Encode hashes msg with msgHash, truncates the digest to m bytes, and
// appends the Winternitz checksum of those bytes: one byte if m == 1,
// otherwise two big-endian bytes. The result is the total-byte step
// vector d[0..total) consumed by the ladder engine.
func Encode(msgHash hashcap.Hash, msg []byte, m int) []byte {
	h := msgHash.New()
	h.Write(msg)
	digest := make([]byte, msgHash.Size)
	h.Sum(digest)
	hashed := digest[:m]

	sum := uint16(W-1) * uint16(m)
	for _, b := range hashed {
		sum -= uint16(b)
	}

	d := make([]byte, m, m+2)
	copy(d, hashed)
	if m == 1 {
		return append(d, byte(sum))
	}
	high := byte((sum & 0xff00) >> 8)
	low := byte(sum & 0xff)
	return append(d, high, low)
}
