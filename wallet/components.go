// Package wallet provides a convenience facade over wots/address:
// deterministic component derivation from a 32-byte secret, key
// generation, sign/verify bound to an owned wallet address, and secure
// clearing. Grounded on tool-3/component_generator.go's
// componentsGenerator (byte-exact derivation) and wallet-tool/main.go's
// wots.NewKeychain/.Next()/.Sign() stateful facade shape.
package wallet

import "github.com/wagleanuj/mochimo-wots/hashadapter"

// Components holds the three 32-byte seeds a Wallet derives from a
// secret: the private seed used for WOTS+ key expansion, the public
// seed used to randomize F-chains, and the addr-seed that both seeds
// the WOTS+ hash address and becomes the rnd2 tail of the 2208-byte
// wallet address.
type Components struct {
	PrivateSeed [32]byte
	PublicSeed  [32]byte
	AddrSeed    [32]byte
}

// Generator derives Components from a 32-byte secret. It is a function
// value (not an interface) so alternate derivations and deterministic
// test fixtures plug in without subclassing, matching the "dynamic
// dispatch via callback" convention spec.md calls for.
type Generator func(secret []byte) Components

// DefaultGenerator is the reference component derivation: it treats
// secret as an ASCII octet sequence (not hex), appends the literal
// suffixes "seed", "publ", "addr", and SHA-256-hashes each to produce
// PrivateSeed, PublicSeed, and AddrSeed respectively. This is bit-exact
// with the Mochimo reference and must be preserved verbatim — in
// particular, secret is never treated as a UTF-8 string that could
// introduce replacement codepoints for non-ASCII bytes; the suffix is
// appended directly to the raw byte sequence.
func DefaultGenerator(secret []byte) Components {
	base := make([]byte, len(secret))
	copy(base, secret)

	withSuffix := func(suffix string) [32]byte {
		buf := make([]byte, 0, len(base)+len(suffix))
		buf = append(buf, base...)
		buf = append(buf, suffix...)
		return hashadapter.Sum256(buf)
	}

	return Components{
		PrivateSeed: withSuffix("seed"),
		PublicSeed:  withSuffix("publ"),
		AddrSeed:    withSuffix("addr"),
	}
}
