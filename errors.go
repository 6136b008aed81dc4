package wots

import (
	"errors"

	"github.com/xxnetwork/wotsplus/ladder"
	"github.com/xxnetwork/wotsplus/params"
)

// The error taxonomy below is closed and flat: a single small set of
// doc-commented package errors rather than a hierarchical error package.
// Every fallible operation returns one of these, optionally %w-wrapped
// with operation-specific context; the one exception is New, which wraps
// the error of a failed read from its rng.
var (
	// Construction
	ErrInvalidMValue      = params.ErrInvalidMValue
	ErrInvalidHasher      = params.ErrInvalidHasher
	ErrCustomNotSupported = params.ErrCustomNotSupported

	// Input validation
	ErrInvalidSeedSize           = ladder.ErrInvalidSeedSize
	ErrInvalidMessageSize        = ladder.ErrInvalidMessageSize
	ErrInvalidPointsSize         = ladder.ErrInvalidPointsSize
	ErrInvalidPublicKeySize      = errors.New("wotsplus: public key must be exactly 32 bytes")
	ErrInvalidSignatureSize      = errors.New("wotsplus: signature has the wrong length for these parameters")
	ErrInvalidParamsEncodingType = params.ErrInvalidParamsEncoding

	// State
	ErrChainsNotSet = errors.New("wotsplus: fast-sign path requires Generate to have been called first")

	// Mode/message mismatch. MustProvideMessage and ExpectedMessage name
	// the same underlying condition (Sign/Verify invoked without a
	// message) surfaced at two different call depths — the low-level
	// ladder.Compute entry point and the top-level Key/dispatch entry
	// points.
	ErrMustProvideMessage = ladder.ErrMustProvideMessage
	ErrNoMessageExpected  = ladder.ErrNoMessageExpected
	ErrExpectedMessage    = ladder.ErrMustProvideMessage

	// Cryptographic
	ErrInvalidSignature = errors.New("wotsplus: signature does not verify against the given public key")
)
