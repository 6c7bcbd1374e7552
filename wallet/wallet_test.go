package wallet

import (
	"bytes"
	"testing"

	"github.com/wagleanuj/mochimo-wots/address"
)

func TestDeterministicWalletCreation(t *testing.T) {
	secret := bytes.Repeat([]byte{0x12}, 32)
	tag := bytes.Repeat([]byte{0x34}, 20)

	w1, err := Create("a", secret, tag, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	w2, err := Create("b", secret, tag, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !bytes.Equal(w1.Address(), w2.Address()) {
		t.Fatal("two wallets from the same secret+tag must yield byte-equal addresses")
	}
	if !bytes.Equal(w1.V3Tag(), w2.V3Tag()) {
		t.Fatal("two wallets from the same secret+tag must yield byte-equal tags")
	}
}

func TestWalletSignVerifyRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	w, err := Create("w", secret, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var msg [32]byte
	copy(msg[:], bytes.Repeat([]byte{0x99}, 32))

	sig, err := w.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := w.Verify(msg, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected signature produced by the wallet to verify")
	}

	msg[0] ^= 0x01
	ok, err = w.Verify(msg, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("verification must fail against a flipped message")
	}
}

func TestCreateRejectsWrongSecretLength(t *testing.T) {
	if _, err := Create("w", make([]byte, 10), nil, nil); err == nil {
		t.Fatal("expected error for a non-32-byte secret")
	}
}

func TestCreateRejectsInvalidLegacyTag(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	invalid := bytes.Repeat([]byte{0x42}, 12)
	if _, err := Create("w", secret, invalid, nil); err == nil {
		t.Fatal("expected error for an invalid legacy tag")
	}
}

func TestLegacyTagEmbedsInAddressTail(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	tag := bytes.Repeat([]byte{0x41}, 12)

	w, err := Create("w", secret, tag, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	extracted, err := address.TagExtract(w.Address())
	if err != nil {
		t.Fatalf("TagExtract: %v", err)
	}
	if !bytes.Equal(extracted, tag) {
		t.Fatalf("extracted tail tag = %x, want %x", extracted, tag)
	}
}

func TestClearZeroesState(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	w, err := Create("w", secret, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	addrBefore := w.Address()
	w.Clear()

	if w.Address() != nil {
		t.Fatal("Address() should return nil after Clear")
	}
	// The copy returned before Clear must remain the caller's own, unaffected
	// slice (Address() always returns a defensive copy).
	if bytes.Equal(addrBefore, make([]byte, len(addrBefore))) {
		t.Fatal("address copy returned before Clear was zeroed by Clear")
	}
}
