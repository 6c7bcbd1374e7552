package wallet

import (
	"bytes"
	"encoding/hex"

	"github.com/wagleanuj/mochimo-wots/address"
	"github.com/wagleanuj/mochimo-wots/mochierr"
	"github.com/wagleanuj/mochimo-wots/wots"
)

// Wallet bundles a secret, its derived 2208-byte wots address, and an
// optional tag (12-byte legacy or 20-byte v3), and binds Sign/Verify to
// that owned address.
//
// Convention (see DESIGN.md's resolution of spec.md's open question on
// which "secret" a wallet stores): Wallet always retains the
// caller-supplied 32-byte secret, not the derived private seed, for both
// the legacy and v3 tag flavors. Components are re-derived from that
// secret via Generator on every Sign call; this keeps the two flavors
// uniform and keeps Sign/Verify consistent regardless of which tag kind
// is in use.
type Wallet struct {
	Name string

	secret      []byte // 32 bytes, owned
	wotsAddress []byte // 2208 bytes, owned
	legacyTag   []byte // 12 bytes, owned, nil if this wallet uses a v3 tag
	v3Tag       []byte // 20 bytes, owned, nil if this wallet uses a legacy tag

	generator Generator

	hexCache map[string]string
}

// Create derives a wallet from a 32-byte secret using gen (DefaultGenerator
// if gen is nil). If tag is non-nil it must be either 12 bytes (embedded
// as the legacy tag in the wallet address's tail) or 20 bytes (kept as an
// independent v3 tag); if tag is nil, the v3 tag defaults to
// address.AddrHash(pk)[:20].
func Create(name string, secret []byte, tag []byte, gen Generator) (*Wallet, error) {
	if len(secret) != 32 {
		return nil, mochierr.NewInvalidLength("secret", 32, len(secret))
	}
	if gen == nil {
		gen = DefaultGenerator
	}

	comps := gen(secret)
	pk := wots.PkGen(comps.PrivateSeed, comps.PublicSeed, comps.AddrSeed)

	addr, err := address.NewWalletAddress(pk, comps.PublicSeed[:], comps.AddrSeed[:])
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		Name:        name,
		secret:      append([]byte(nil), secret...),
		wotsAddress: addr,
		generator:   gen,
	}

	switch len(tag) {
	case 0:
		hash := address.AddrHash(pk)
		w.v3Tag = append([]byte(nil), hash[:]...)
	case address.LegacyTagLen:
		tagged, err := address.TagApply(addr, tag)
		if err != nil {
			return nil, err
		}
		w.wotsAddress = tagged
		w.legacyTag = append([]byte(nil), tag...)
	case address.V3TagLen:
		w.v3Tag = append([]byte(nil), tag...)
	default:
		return nil, mochierr.NewInvalidLength("tag", address.LegacyTagLen, len(tag))
	}

	return w, nil
}

// Tag returns the wallet's legacy 12-byte tag, or nil if it uses a v3
// tag instead.
func (w *Wallet) Tag() []byte {
	if w.legacyTag == nil {
		return nil
	}
	return append([]byte(nil), w.legacyTag...)
}

// V3Tag returns the wallet's 20-byte v3 tag, or nil if it uses a legacy
// tag instead.
func (w *Wallet) V3Tag() []byte {
	if w.v3Tag == nil {
		return nil
	}
	return append([]byte(nil), w.v3Tag...)
}

// Address returns a copy of the wallet's 2208-byte address.
func (w *Wallet) Address() []byte {
	return append([]byte(nil), w.wotsAddress...)
}

// PublicKeyHex returns the hex encoding of the wallet's 2144-byte public
// key, caching the result across calls.
func (w *Wallet) PublicKeyHex() (string, error) {
	if cached, ok := w.hexCache["pk"]; ok {
		return cached, nil
	}
	pk, _, _, err := address.SplitWalletAddress(w.wotsAddress)
	if err != nil {
		return "", err
	}
	if w.hexCache == nil {
		w.hexCache = make(map[string]string)
	}
	encoded := hex.EncodeToString(pk)
	w.hexCache["pk"] = encoded
	return encoded, nil
}

// Sign computes the WOTS+ signature of a 32-byte message digest using
// this wallet's secret and address.
func (w *Wallet) Sign(msgDigest [32]byte) ([]byte, error) {
	if w.secret == nil {
		return nil, mochierr.NewInvalidLength("secret", 32, 0)
	}
	if w.wotsAddress == nil {
		return nil, mochierr.NewInvalidLength("wots address", address.AddressLen, 0)
	}

	_, pubSeed, rnd2, err := address.SplitWalletAddress(w.wotsAddress)
	if err != nil {
		return nil, err
	}

	comps := w.generator(w.secret)
	var pubSeedArr, rnd2Arr [32]byte
	copy(pubSeedArr[:], pubSeed)
	copy(rnd2Arr[:], rnd2)

	return wots.Sign(msgDigest, comps.PrivateSeed, pubSeedArr, rnd2Arr), nil
}

// Verify reports whether sig is a valid WOTS+ signature of msgDigest
// against this wallet's stored public key. It fails (with an error) only
// for a missing wallet address or a signature that is not 2144 bytes
// long; it never returns an error for a cryptographic mismatch.
func (w *Wallet) Verify(msgDigest [32]byte, sig []byte) (bool, error) {
	if w.wotsAddress == nil {
		return false, mochierr.NewInvalidLength("wots address", address.AddressLen, 0)
	}
	pk, pubSeed, rnd2, err := address.SplitWalletAddress(w.wotsAddress)
	if err != nil {
		return false, err
	}
	var pubSeedArr, rnd2Arr [32]byte
	copy(pubSeedArr[:], pubSeed)
	copy(rnd2Arr[:], rnd2)

	return wots.Verify(pk, sig, msgDigest, pubSeedArr, rnd2Arr)
}

// Clear zeroes the wallet's secret, address, and tag bytes and drops its
// cached hex strings, so the wallet no longer holds recoverable key
// material.
func (w *Wallet) Clear() {
	zero(w.secret)
	zero(w.wotsAddress)
	zero(w.legacyTag)
	zero(w.v3Tag)
	w.secret = nil
	w.wotsAddress = nil
	w.legacyTag = nil
	w.v3Tag = nil
	w.hexCache = nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// EqualAddress reports whether two wallets derived byte-equal 2208-byte
// addresses (used by callers to confirm deterministic generation).
func EqualAddress(a, b *Wallet) bool {
	return bytes.Equal(a.wotsAddress, b.wotsAddress)
}
