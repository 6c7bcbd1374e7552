package wotshash

import "testing"

func TestToBytesReversesEachWordFromSeed(t *testing.T) {
	var seed [32]byte
	// Word 0 as little-endian bytes 0x04 0x03 0x02 0x01 -> value 0x01020304.
	seed[0], seed[1], seed[2], seed[3] = 0x04, 0x03, 0x02, 0x01

	a := FromSeed(seed)
	b := a.ToBytes()

	// Big-endian serialization of 0x01020304 is 01 02 03 04: the exact
	// reverse of how it was read from seed.
	if b[0] != 0x01 || b[1] != 0x02 || b[2] != 0x03 || b[3] != 0x04 {
		t.Fatalf("ToBytes word 0 = %x, want reversed 01020304", b[0:4])
	}
}

func TestSetChainIsNotReversedAgain(t *testing.T) {
	var seed [32]byte
	a := FromSeed(seed)
	a.SetChain(0x01020304)

	b := a.ToBytes()
	// The chain word is set as a plain integer and must come out
	// big-endian verbatim, unlike the seed-derived words.
	if b[20] != 0x01 || b[21] != 0x02 || b[22] != 0x03 || b[23] != 0x04 {
		t.Fatalf("chain word bytes = %x, want big-endian 01020304", b[20:24])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var seed [32]byte
	a := FromSeed(seed)
	a.SetChain(1)
	clone := a.Clone()
	a.SetChain(2)

	if clone.ToBytes()[23] != 1 {
		t.Fatalf("clone was mutated by changes to the original")
	}
}

func TestPRFDeterministic(t *testing.T) {
	var input, key [32]byte
	for i := range input {
		input[i] = byte(i)
	}
	for i := range key {
		key[i] = byte(0xff - i)
	}

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	PRF(out1, 0, input, key)
	PRF(out2, 0, input, key)

	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("PRF not deterministic at byte %d", i)
		}
	}
}

func TestThashFMutatesKeyAndMaskField(t *testing.T) {
	var seed, pubSeed [32]byte
	addr := FromSeed(seed)
	in := make([]byte, 32)
	out := make([]byte, 32)

	ThashF(out, 0, in, 0, pubSeed, addr)

	if addr.ToBytes()[31] != 1 {
		t.Fatalf("expected key/mask field left at 1 after thash_f, got %d", addr.ToBytes()[31])
	}
}
