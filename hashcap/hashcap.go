// Package hashcap defines the narrow streaming-digest capability that the
// chain-ladder engine builds on, and the two concrete hash families the
// scheme is parameterised over: a pseudorandom-function hash (BLAKE2b) and a
// message hash (SHA3-224 / SHA3-256).
package hashcap

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashCapability is a minimal streaming digest. Write appends data; Sum
// finalizes the digest into out and consumes the instance — callers must not
// reuse a HashCapability after calling Sum.
type HashCapability interface {
	Write(data []byte)
	Sum(out []byte)
}

// Hash names a hash family: a factory that produces a fresh, independent
// instance, paired with the exact number of bytes that instance's Sum
// writes. Go has no static dispatch, so a Rust-style associated
// constructor (Hasher::new()) has to become a runtime factory value here —
// this is the same shape golang.org/x/crypto/sha3.New256 and
// blake2b.New256 already take.
type Hash struct {
	New  func() HashCapability
	Size int
}

type stdHash struct {
	w interface {
		Write([]byte) (int, error)
	}
	sum func() []byte
}

func (h stdHash) Write(data []byte) {
	h.w.Write(data)
}

func (h stdHash) Sum(out []byte) {
	copy(out, h.sum())
}

func newBlake2b256() HashCapability {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256(nil) only fails for an invalid key, and we never
		// pass one; a failure here means the linked blake2b package is broken.
		panic("hashcap: blake2b.New256 failed: " + err.Error())
	}
	return stdHash{w: h, sum: func() []byte { return h.Sum(nil) }}
}

func newSHA3_224() HashCapability {
	h := sha3.New224()
	return stdHash{w: h, sum: func() []byte { return h.Sum(nil) }}
}

func newSHA3_256() HashCapability {
	h := sha3.New256()
	return stdHash{w: h, sum: func() []byte { return h.Sum(nil) }}
}

// BLAKE2b256 is the PRF hash used by every named security level: it derives
// the secret key, the per-step mask schedule, and walks every chain.
var BLAKE2b256 = Hash{New: newBlake2b256, Size: 32}

// SHA3_224 is the message hash used by Level0 through Level3.
var SHA3_224 = Hash{New: newSHA3_224, Size: 28}

// SHA3_256 is the message hash used by the Consensus level. The public-key
// aggregator in package ladder also uses SHA3-256, but calls
// golang.org/x/crypto/sha3 directly rather than this value, so it stays
// fixed regardless of which message hash a Parameters value picked.
var SHA3_256 = Hash{New: newSHA3_256, Size: 32}

// Sum runs a single hash operation over data and returns exactly h.Size
// bytes. It is a convenience wrapper used wherever the engine needs a
// one-shot digest of pre-assembled bytes rather than incremental writes.
func Sum(h Hash, data []byte) []byte {
	inst := h.New()
	inst.Write(data)
	out := make([]byte, h.Size)
	inst.Sum(out)
	return out
}
