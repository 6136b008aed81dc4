package hashcap

import (
	"bytes"
	"testing"
)

func TestSizesMatchActualDigestLength(t *testing.T) {
	cases := []Hash{BLAKE2b256, SHA3_224, SHA3_256}
	for _, h := range cases {
		inst := h.New()
		inst.Write([]byte("some input"))
		digest := inst.(stdHash).sum()
		if len(digest) != h.Size {
			t.Fatalf("len(digest) = %d, want %d", len(digest), h.Size)
		}
	}
}

func TestSumIsDeterministic(t *testing.T) {
	for _, h := range []Hash{BLAKE2b256, SHA3_224, SHA3_256} {
		a := Sum(h, []byte("repeat me"))
		b := Sum(h, []byte("repeat me"))
		if !bytes.Equal(a, b) {
			t.Fatal("Sum must be deterministic for identical input")
		}
	}
}

func TestSumDiffersAcrossInputs(t *testing.T) {
	for _, h := range []Hash{BLAKE2b256, SHA3_224, SHA3_256} {
		a := Sum(h, []byte("input one"))
		b := Sum(h, []byte("input two"))
		if bytes.Equal(a, b) {
			t.Fatal("Sum collided across distinct inputs")
		}
	}
}

func TestHashFamiliesAreIndependent(t *testing.T) {
	msg := []byte("cross-family check")
	a := Sum(SHA3_224, msg)
	b := Sum(SHA3_256, msg)
	if bytes.Equal(a[:SHA3_224.Size], b[:SHA3_224.Size]) {
		t.Fatal("SHA3-224 and SHA3-256 must not share a common prefix for the same input")
	}
}

func TestWriteAccumulatesAcrossCalls(t *testing.T) {
	whole := Sum(BLAKE2b256, []byte("helloworld"))

	inst := BLAKE2b256.New()
	inst.Write([]byte("hello"))
	inst.Write([]byte("world"))
	out := make([]byte, BLAKE2b256.Size)
	inst.Sum(out)

	if !bytes.Equal(whole, out) {
		t.Fatal("two Write calls must accumulate like one call with the concatenated input")
	}
}
