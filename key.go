package wots

import (
	"fmt"
	"io"

	"github.com/xxnetwork/wotsplus/checksum"
	"github.com/xxnetwork/wotsplus/ladder"
	"github.com/xxnetwork/wotsplus/params"
)

// Key owns a WOTS+ key pair: a private seed, a public seed, the derived
// secret key, and — once Generate has run — the full precomputed chain
// table. A Key is exclusively owned by its creator; sign at most once.
type Key struct {
	params    params.Parameters
	seed      []byte
	pSeed     []byte
	secretKey []byte
	chains    [][]byte // len 256 once Generate has run, else nil
	publicKey []byte   // memoized once computed
}

// New samples a fresh seed and public seed from rng and derives the
// secret key from the seed. rng is never a package-level global — callers
// thread crypto/rand.Reader through in production and a deterministic
// reader in tests.
func New(p params.Parameters, rng io.Reader) (*Key, error) {
	seed := make([]byte, params.SeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, fmt.Errorf("wotsplus: reading seed: %w", err)
	}
	pSeed := make([]byte, params.SeedSize)
	if _, err := io.ReadFull(rng, pSeed); err != nil {
		return nil, fmt.Errorf("wotsplus: reading public seed: %w", err)
	}
	return FromSeed(p, seed, pSeed)
}

// FromSeed builds a Key deterministically from an existing seed and public
// seed. It is secure only if seed is uniformly random and kept secret —
// FromSeed itself performs no entropy collection.
func FromSeed(p params.Parameters, seed, pSeed []byte) (*Key, error) {
	if len(seed) != params.SeedSize || len(pSeed) != params.SeedSize {
		return nil, ErrInvalidSeedSize
	}
	return &Key{
		params:    p,
		seed:      append([]byte(nil), seed...),
		pSeed:     append([]byte(nil), pSeed...),
		secretKey: deriveSecretKey(p, seed),
	}, nil
}

// deriveSecretKey is a pure function of seed and p.Total — the public seed
// is not an input, so rotating pSeed never invalidates the secret key.
func deriveSecretKey(p params.Parameters, seed []byte) []byte {
	sk := make([]byte, p.N*p.Total)
	buf := make([]byte, p.PRF.Size)
	for i := 0; i < p.Total; i++ {
		h := p.PRF.New()
		h.Write(seed)
		h.Write([]byte{byte(i)})
		h.Sum(buf)
		copy(sk[i*p.N:(i+1)*p.N], buf[:p.N])
	}
	return sk
}

// Params returns the parameter set this key was built under.
func (k *Key) Params() params.Parameters {
	return k.params
}

// PSeed returns the key's public seed, the same 32 bytes embedded in every
// signature it produces.
func (k *Key) PSeed() []byte {
	return append([]byte(nil), k.pSeed...)
}

// PublicKey lazily computes and memoizes the 32-byte public key via
// ComputePublicKey mode: callers never have to call Generate first just to
// learn the public key.
func (k *Key) PublicKey() ([]byte, error) {
	if k.publicKey != nil {
		return append([]byte(nil), k.publicKey...), nil
	}
	res, err := ladder.Compute(k.params, k.pSeed, nil, k.secretKey, ladder.ComputePublicKey)
	if err != nil {
		return nil, err
	}
	k.publicKey = res.Digest
	return append([]byte(nil), k.publicKey...), nil
}

// Generate precomputes the full W-point chain ladder for every chain,
// enabling the fast-sign path in Sign. It is idempotent: a second call is a
// no-op once the chain table is set.
func (k *Key) Generate() error {
	if k.chains != nil {
		return nil
	}
	res, err := ladder.Compute(k.params, k.pSeed, nil, k.secretKey, ladder.Generate)
	if err != nil {
		return err
	}
	k.chains = res.Chains
	k.publicKey = res.Digest
	return nil
}

// Sign signs msg, which must be at most params.MaxMsgSize bytes. If
// Generate has already populated the chain table, Sign takes the fast
// path of reading precomputed chain values directly; otherwise it invokes
// the full chain-ladder engine. Both paths produce bitwise-identical
// signatures for the same key and message.
func (k *Key) Sign(msg []byte) ([]byte, error) {
	if msg == nil {
		msg = []byte{} // a nil message is the empty message, not "no message"
	}
	if len(msg) > params.MaxMsgSize {
		return nil, fmt.Errorf("wotsplus: message is %d bytes, max is %d: %w", len(msg), params.MaxMsgSize, ErrInvalidMessageSize)
	}

	if k.chains != nil {
		return k.fastSign(msg)
	}

	res, err := ladder.Compute(k.params, k.pSeed, msg, k.secretKey, ladder.Sign)
	if err != nil {
		return nil, err
	}
	return buildSignature(k.params.Encoding, k.pSeed, res.Outputs), nil
}

func (k *Key) fastSign(msg []byte) ([]byte, error) {
	p := k.params
	d := checksum.Encode(p.MSG, msg, p.M)
	body := make([]byte, p.N*p.Total)
	for i := 0; i < p.Total; i++ {
		step := d[i]
		from, to := i*p.N, (i+1)*p.N
		copy(body[from:to], k.chains[step][from:to])
	}
	return buildSignature(p.Encoding, k.pSeed, body), nil
}

// Zero overwrites the key's private seed and derived secret key in place.
// Go has no destructor run on scope exit, so — unlike a hardened native
// implementation — this must be called explicitly by the owner when the
// key is no longer needed.
func (k *Key) Zero() {
	zero(k.seed)
	zero(k.secretKey)
	for _, row := range k.chains {
		zero(row)
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
