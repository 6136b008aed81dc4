// Package ladder implements the chain-ladder engine: the core of this
// repository. Given a public seed and a vector of secret chain starts, it
// walks Parameters.Total independent hash chains for a controlled number of
// steps, then combines the results into a public-key digest, a signature,
// or (in Generate mode) a full precomputed chain table.
//
// The chains are walked one at a time, synchronously: each walk is already
// sub-millisecond, and any concurrency policy belongs to the caller, not
// the engine.
package ladder

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/xxnetwork/wotsplus/chain"
	"github.com/xxnetwork/wotsplus/checksum"
	"github.com/xxnetwork/wotsplus/internal/mask"
	"github.com/xxnetwork/wotsplus/params"
)

// Mode selects which of the four ladder operations Compute performs.
type Mode int

const (
	// Generate walks every chain from its origin to the full W-1 steps,
	// recording every intermediate value into the returned chain table.
	Generate Mode = iota
	// ComputePublicKey walks every chain to completion without recording
	// intermediates, returning only the 32-byte aggregator digest.
	ComputePublicKey
	// Sign walks each chain i from 0 to the message-derived step d[i].
	Sign
	// Verify walks each chain i from the signature's step d[i] to the
	// complement required to reach the chain tail, reproducing what
	// ComputePublicKey would have produced for the signer's key.
	Verify
)

var (
	// ErrMustProvideMessage is returned when Sign or Verify is invoked
	// without a message.
	ErrMustProvideMessage = errors.New("ladder: Sign and Verify require a message")
	// ErrNoMessageExpected is returned when Generate or ComputePublicKey
	// is invoked with a message.
	ErrNoMessageExpected = errors.New("ladder: Generate and ComputePublicKey do not accept a message")
	// ErrInvalidSeedSize is returned when pSeed is not exactly
	// params.SeedSize bytes.
	ErrInvalidSeedSize = errors.New("ladder: public seed must be exactly 32 bytes")
	// ErrInvalidPointsSize is returned when points is shorter than
	// n * total bytes.
	ErrInvalidPointsSize = errors.New("ladder: points must hold at least n*total bytes")
	// ErrInvalidMessageSize is returned when a message exceeds
	// params.MaxMsgSize bytes.
	ErrInvalidMessageSize = errors.New("ladder: message exceeds the maximum signable size")
)

// Result is the outcome of a single Compute call: either outputs is
// the n*total-byte signature/verification body (Sign mode) or digest is the
// 32-byte aggregator output (every other mode). Chains is populated only in
// Generate mode.
type Result struct {
	Outputs []byte
	Digest  []byte
	Chains  [][]byte // len W, each n*total bytes; nil outside Generate mode
}

// Compute runs the chain-ladder engine: it derives the message-dependent
// step vector (or the all-zero vector when msg is nil), walks each of
// params.Total chains over the range its mode dictates, and — for every
// mode but Sign — folds the parity-selected chain tails into a tweaked
// SHA3-256 digest bound to pSeed.
func Compute(p params.Parameters, pSeed []byte, msg []byte, points []byte, mode Mode) (Result, error) {
	if len(pSeed) != params.SeedSize {
		return Result{}, ErrInvalidSeedSize
	}
	if len(points) < p.N*p.Total {
		return Result{}, ErrInvalidPointsSize
	}

	needsMessage := mode == Sign || mode == Verify
	if needsMessage && msg == nil {
		return Result{}, ErrMustProvideMessage
	}
	if !needsMessage && msg != nil {
		return Result{}, ErrNoMessageExpected
	}

	var d []byte
	if msg != nil {
		if len(msg) > params.MaxMsgSize {
			return Result{}, fmt.Errorf("ladder: message is %d bytes, max is %d: %w", len(msg), params.MaxMsgSize, ErrInvalidMessageSize)
		}
		d = checksum.Encode(p.MSG, msg, p.M)
	} else {
		d = make([]byte, p.Total)
	}

	masks := mask.Schedule(p.PRF, pSeed, p.N)

	outputs := make([]byte, p.N*p.Total)
	var chains [][]byte
	if mode == Generate {
		chains = make([][]byte, mask.W)
		for k := range chains {
			chains[k] = make([]byte, p.N*p.Total)
		}
	}

	tHasher := sha3.New256()

	for i := 0; i < p.Total; i++ {
		from, to := i*p.N, (i+1)*p.N
		value := points[from:to]

		var begin, end int
		if mode == Sign {
			begin, end = 0, int(d[i])
		} else {
			begin, end = int(d[i]), mask.W-1
		}

		var record [][]byte
		if mode == Generate {
			record = make([][]byte, mask.W)
			record[0] = append([]byte(nil), value...) // chains[0] is the secret-key origin
		}

		out := chain.Walk(p.PRF, pSeed, value, masks, begin, end, record)
		copy(outputs[from:to], out)

		if mode == Generate {
			for k := 0; k < mask.W; k++ {
				copy(chains[k][from:to], record[k])
			}
		}

		if mode != Sign && parity(out) {
			tHasher.Write(out)
		}
	}

	if mode == Sign {
		return Result{Outputs: outputs, Chains: chains}, nil
	}

	tweak := tHasher.Sum(nil)
	final := sha3.New256()
	final.Write(pSeed)
	final.Write(tweak)
	final.Write(outputs)
	digest := final.Sum(nil)

	return Result{Digest: digest, Chains: chains}, nil
}

// parity reports the XOR of every bit in value — equivalently, whether its
// population count is odd. Only chain tails with parity 1 are absorbed into
// the aggregator's tweak, binding a forger to controlling every absorbed
// chain's parity, not merely its value.
func parity(value []byte) bool {
	var acc byte
	for _, b := range value {
		acc ^= b
	}
	acc ^= acc >> 4
	acc ^= acc >> 2
	acc ^= acc >> 1
	return acc&1 == 1
}
