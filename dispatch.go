package wots

import (
	"bytes"
	"fmt"

	"github.com/xxnetwork/wotsplus/ladder"
	"github.com/xxnetwork/wotsplus/params"
)

// Verify checks signature against message and publicKey. It reads the
// wire-format encoding tag at signature[0], resolves the matching named
// parameter preset, and verifies the remainder against it. All five named
// encodings are accepted — use VerifyStrict to reject Consensus.
func Verify(msg, signature, publicKey []byte) error {
	return verify(msg, signature, publicKey, false)
}

// VerifyStrict is the hardened dispatch variant: it behaves exactly like
// Verify except that a Consensus-tagged signature is rejected with
// ErrInvalidParamsEncodingType, even when the signature is otherwise valid.
// Use this when a caller must avoid leaking whether the strongest
// parameter set was used in an untrusted context.
func VerifyStrict(msg, signature, publicKey []byte) error {
	return verify(msg, signature, publicKey, true)
}

func verify(msg, signature, publicKey []byte, rejectConsensus bool) error {
	if len(signature) < 1 {
		return ErrInvalidSignatureSize
	}

	encoding := params.EncodingFromTag(signature[0])
	if rejectConsensus && encoding == params.Consensus {
		return ErrInvalidParamsEncodingType
	}

	p, err := params.ByEncoding(encoding)
	if err != nil {
		return err
	}

	return VerifyWithParams(p, msg, signature[1:], publicKey)
}

// VerifyWithParams verifies body (a signature with its leading encoding
// tag already stripped) against msg and publicKey under an explicit
// Parameters value — the entry point Custom-encoded signatures must use,
// since no wire tag can resolve to Custom.
func VerifyWithParams(p params.Parameters, msg, body, publicKey []byte) error {
	if len(publicKey) != PublicKeySize {
		return ErrInvalidPublicKeySize
	}
	if len(body) != params.SeedSize+p.N*p.Total {
		return ErrInvalidSignatureSize
	}

	pSeed := body[:params.SeedSize]
	outputs := body[params.SeedSize:]
	if msg == nil {
		msg = []byte{} // a nil message is the empty message, not "no message"
	}

	res, err := ladder.Compute(p, pSeed, msg, outputs, ladder.Verify)
	if err != nil {
		return fmt.Errorf("wotsplus: verify: %w", err)
	}

	if !bytes.Equal(res.Digest, publicKey) {
		return ErrInvalidSignature
	}
	return nil
}
