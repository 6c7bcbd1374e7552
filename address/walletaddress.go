// Package address implements the Mochimo v2/v3 address framing that
// wraps a raw WOTS+ public key: the 2208-byte wallet address, the
// 12-byte legacy tag embedded in its tail, the 20-byte v3 implicit tag
// derived via RIPEMD160(SHA3-512(pk)), and the base58+CRC16 tag
// encoding. Grounded on tool-1/main.go and wallet-tool/main.go's use of
// go_mcminterface's WotsAddressFromHex/FromBytes, .SetTAG and
// .GetAddress, generalized from a wrapped external type into this
// module's own erroring API.
package address

import "github.com/wagleanuj/mochimo-wots/mochierr"

// Byte-length constants for the framing layer, exposed verbatim per the
// external interface.
const (
	WotsSigBytes  = 2144
	AddressLen    = 2208
	LegacyTagLen  = 12
	V3TagLen      = 20
	V3AddrLen     = 40
	AmountLen     = 8
)

// NewWalletAddress assembles the 2208-byte wallet address
// pk(2144) ‖ pubSeed(32) ‖ rnd2(32).
func NewWalletAddress(pk, pubSeed, rnd2 []byte) ([]byte, error) {
	if len(pk) != WotsSigBytes {
		return nil, mochierr.NewInvalidLength("public key", WotsSigBytes, len(pk))
	}
	if len(pubSeed) != 32 {
		return nil, mochierr.NewInvalidLength("public seed", 32, len(pubSeed))
	}
	if len(rnd2) != 32 {
		return nil, mochierr.NewInvalidLength("addr seed (rnd2)", 32, len(rnd2))
	}

	out := make([]byte, AddressLen)
	copy(out[0:2144], pk)
	copy(out[2144:2176], pubSeed)
	copy(out[2176:2208], rnd2)
	return out, nil
}

// SplitWalletAddress splits a 2208-byte wallet address back into its
// public key, public seed, and addr-seed/rnd2 components. Each returned
// slice is a fresh copy; the caller may mutate them freely.
func SplitWalletAddress(addr []byte) (pk, pubSeed, rnd2 []byte, err error) {
	if len(addr) != AddressLen {
		return nil, nil, nil, mochierr.NewInvalidLength("wallet address", AddressLen, len(addr))
	}
	pk = append([]byte(nil), addr[0:2144]...)
	pubSeed = append([]byte(nil), addr[2144:2176]...)
	rnd2 = append([]byte(nil), addr[2176:2208]...)
	return pk, pubSeed, rnd2, nil
}

// TagIsValid reports whether t is a well-formed legacy 12-byte tag: its
// length must be 12 and its first byte must not be 0x00 or 0x42.
func TagIsValid(t []byte) bool {
	if len(t) != LegacyTagLen {
		return false
	}
	return t[0] != 0x00 && t[0] != 0x42
}

// TagApply returns a copy of addr (2208 bytes) with its last 12 bytes
// overwritten by tag. tag must be a valid legacy tag per TagIsValid.
func TagApply(addr []byte, tag []byte) ([]byte, error) {
	if len(addr) != AddressLen {
		return nil, mochierr.NewInvalidLength("wallet address", AddressLen, len(addr))
	}
	if !TagIsValid(tag) {
		return nil, mochierr.NewInvalidTag("first byte must not be 0x00 or 0x42, and length must be 12")
	}
	out := make([]byte, AddressLen)
	copy(out, addr)
	copy(out[AddressLen-LegacyTagLen:], tag)
	return out, nil
}

// TagExtract returns the last 12 bytes of a 2208-byte wallet address.
func TagExtract(addr []byte) ([]byte, error) {
	if len(addr) != AddressLen {
		return nil, mochierr.NewInvalidLength("wallet address", AddressLen, len(addr))
	}
	out := make([]byte, LegacyTagLen)
	copy(out, addr[AddressLen-LegacyTagLen:])
	return out, nil
}
