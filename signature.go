// Package wots implements a hash-based one-time digital signature scheme in
// the WOTS+ family (Winternitz One-Time Signature, plus variant). Key
// pairs, signing, and verification are built on top of the chain-ladder
// engine in package ladder — see that package's doc comment for the
// cryptographic core.
//
// A Key is a one-time signing credential: sign at most one message with
// it. Nothing in this package tracks whether a key has already signed;
// hosts that need that guarantee must wrap Key with their own state
// machine.
package wots

import (
	"github.com/xxnetwork/wotsplus/params"
)

// PublicKeySize is the fixed wire size of every public key, regardless of
// the parameter set's n: the aggregator always outputs a SHA3-256 digest.
const PublicKeySize = 32

// SignatureSize returns the wire size of a signature produced under p:
// one encoding-tag byte, the 32-byte public seed, and n*total chain
// outputs.
func SignatureSize(p params.Parameters) int {
	return 1 + params.SeedSize + p.N*p.Total
}

// buildSignature frames body (the n*total-byte chain outputs) with the
// wire header: encoding tag, then the public seed.
func buildSignature(encoding params.Encoding, pSeed, body []byte) []byte {
	sig := make([]byte, 1+params.SeedSize+len(body))
	sig[0] = byte(encoding)
	copy(sig[1:1+params.SeedSize], pSeed)
	copy(sig[1+params.SeedSize:], body)
	return sig
}
