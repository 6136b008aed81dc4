// Package params validates and constructs the (n, m, total, encoding)
// parameter tuples that size every WOTS+ key, and exposes the five named
// security levels as thin factory functions over a fixed BLAKE2b/SHA3 hash
// family.
package params

import (
	"errors"
	"fmt"

	"github.com/xxnetwork/wotsplus/hashcap"
)

// W is the Winternitz base: each chain has W reachable points (W-1 hops).
const W = 256

// SeedSize is the byte width of both the private and public seeds.
const SeedSize = 32

// MaxMsgSize bounds the pre-hash message length accepted by Sign/Verify.
const MaxMsgSize = 254

// Encoding is the one-byte tag prefixed to every signature, identifying
// which named preset produced it.
type Encoding uint8

const (
	Level0 Encoding = iota
	Level1
	Level2
	Level3
	Consensus
	Custom
)

// String renders the encoding the way it appears in error messages and
// test output.
func (e Encoding) String() string {
	switch e {
	case Level0:
		return "Level0"
	case Level1:
		return "Level1"
	case Level2:
		return "Level2"
	case Level3:
		return "Level3"
	case Consensus:
		return "Consensus"
	default:
		return "Custom"
	}
}

// EncodingFromTag maps a wire-format tag byte to an Encoding: 0..4 map to
// the five known presets, and every other value (5+) maps to Custom — which
// every dispatcher then rejects, since Custom is never a valid wire tag.
func EncodingFromTag(tag byte) Encoding {
	if tag > byte(Consensus) {
		return Custom
	}
	return Encoding(tag)
}

var (
	ErrInvalidMValue         = errors.New("wotsplus: m must be in [1, 254]")
	ErrInvalidHasher         = errors.New("wotsplus: prf hash size must be >= n and msg hash size must be >= m")
	ErrCustomNotSupported    = errors.New("wotsplus: Custom is not a valid named encoding; use NewFromValues")
	ErrInvalidParamsEncoding = errors.New("wotsplus: signature encoding tag does not name a usable parameter set")
)

// Parameters is a validated, immutable (n, m, total, encoding) tuple plus
// the two hash families it was built from.
type Parameters struct {
	N        int
	M        int
	Total    int
	Encoding Encoding
	PRF      hashcap.Hash
	MSG      hashcap.Hash
}

func validate(prf, msg hashcap.Hash, n, m int) error {
	if m < 1 || m > MaxMsgSize {
		return ErrInvalidMValue
	}
	if prf.Size < n || msg.Size < m {
		return ErrInvalidHasher
	}
	return nil
}

func totalFor(m int) int {
	if m == 1 {
		return m + 1
	}
	return m + 2
}

// New builds the Parameters for a named encoding. Custom is rejected —
// construct Custom parameters explicitly via NewFromValues.
func New(encoding Encoding, prf, msg hashcap.Hash, n, m int) (Parameters, error) {
	if encoding == Custom {
		return Parameters{}, ErrCustomNotSupported
	}
	if err := validate(prf, msg, n, m); err != nil {
		return Parameters{}, err
	}
	return Parameters{N: n, M: m, Total: totalFor(m), Encoding: encoding, PRF: prf, MSG: msg}, nil
}

// NewFromValues builds explicit Custom parameters from an (n, m) pair. This
// is the only way to reach the Custom encoding.
func NewFromValues(prf, msg hashcap.Hash, n, m int) (Parameters, error) {
	if err := validate(prf, msg, n, m); err != nil {
		return Parameters{}, err
	}
	return Parameters{N: n, M: m, Total: totalFor(m), Encoding: Custom, PRF: prf, MSG: msg}, nil
}

// Level0Params, Level1Params, Level2Params, Level3Params, and
// ConsensusParams are the bit-exact named presets. Each panics on
// construction failure: the preset values are fixed constants known to be
// valid, so a failure here can only mean the hash family definitions in
// package hashcap were changed incompatibly.
func must(p Parameters, err error) Parameters {
	if err != nil {
		panic(fmt.Sprintf("wotsplus: named preset failed to construct: %v", err))
	}
	return p
}

func Level0Params() Parameters {
	return must(New(Level0, hashcap.BLAKE2b256, hashcap.SHA3_224, 20, 24))
}

func Level1Params() Parameters {
	return must(New(Level1, hashcap.BLAKE2b256, hashcap.SHA3_224, 24, 24))
}

func Level2Params() Parameters {
	return must(New(Level2, hashcap.BLAKE2b256, hashcap.SHA3_224, 28, 24))
}

func Level3Params() Parameters {
	return must(New(Level3, hashcap.BLAKE2b256, hashcap.SHA3_224, 32, 24))
}

func ConsensusParams() Parameters {
	return must(New(Consensus, hashcap.BLAKE2b256, hashcap.SHA3_256, 32, 32))
}

// ByEncoding resolves one of the five named presets by its wire-format tag
// encoding. Custom (and any unknown tag, which EncodingFromTag also maps to
// Custom) is rejected with ErrInvalidParamsEncoding, since no fixed hash
// family exists for it.
func ByEncoding(encoding Encoding) (Parameters, error) {
	switch encoding {
	case Level0:
		return Level0Params(), nil
	case Level1:
		return Level1Params(), nil
	case Level2:
		return Level2Params(), nil
	case Level3:
		return Level3Params(), nil
	case Consensus:
		return ConsensusParams(), nil
	default:
		return Parameters{}, ErrInvalidParamsEncoding
	}
}
