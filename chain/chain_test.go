package chain

import (
	"bytes"
	"testing"

	"github.com/xxnetwork/wotsplus/hashcap"
	"github.com/xxnetwork/wotsplus/internal/mask"
)

func TestWalkIdentityWhenBeginEqualsEnd(t *testing.T) {
	pSeed := bytes.Repeat([]byte{0x07}, 32)
	masks := mask.Schedule(hashcap.BLAKE2b256, pSeed, 32)
	input := bytes.Repeat([]byte{0x99}, 32)

	out := Walk(hashcap.BLAKE2b256, pSeed, input, masks, 10, 10, nil)
	if !bytes.Equal(out, input) {
		t.Fatal("Walk with begin == end must return the input unchanged")
	}
}

func TestWalkIsComposable(t *testing.T) {
	pSeed := bytes.Repeat([]byte{0x07}, 32)
	masks := mask.Schedule(hashcap.BLAKE2b256, pSeed, 32)
	input := bytes.Repeat([]byte{0x99}, 32)

	direct := Walk(hashcap.BLAKE2b256, pSeed, input, masks, 0, 20, nil)
	partial := Walk(hashcap.BLAKE2b256, pSeed, input, masks, 0, 10, nil)
	composed := Walk(hashcap.BLAKE2b256, pSeed, partial, masks, 10, 20, nil)

	if !bytes.Equal(direct, composed) {
		t.Fatal("walking [0,20) must equal walking [0,10) then [10,20)")
	}
}

func TestWalkRecordsIntermediateSteps(t *testing.T) {
	pSeed := bytes.Repeat([]byte{0x07}, 32)
	masks := mask.Schedule(hashcap.BLAKE2b256, pSeed, 32)
	input := bytes.Repeat([]byte{0x99}, 32)

	record := make([][]byte, mask.W)
	record[0] = append([]byte(nil), input...)
	out := Walk(hashcap.BLAKE2b256, pSeed, input, masks, 0, 5, record)

	if !bytes.Equal(record[5], out) {
		t.Fatal("record[end] must equal the returned value")
	}
	if bytes.Equal(record[1], record[0]) {
		t.Fatal("record[1] must differ from the chain origin")
	}
}

func TestWalkDoesNotMutateInput(t *testing.T) {
	pSeed := bytes.Repeat([]byte{0x07}, 32)
	masks := mask.Schedule(hashcap.BLAKE2b256, pSeed, 32)
	input := bytes.Repeat([]byte{0x99}, 32)
	inputCopy := append([]byte(nil), input...)

	Walk(hashcap.BLAKE2b256, pSeed, input, masks, 0, 20, nil)
	if !bytes.Equal(input, inputCopy) {
		t.Fatal("Walk must not mutate its input slice")
	}
}
