package address

import (
	"encoding/binary"

	"github.com/wagleanuj/mochimo-wots/hashadapter"
	"github.com/wagleanuj/mochimo-wots/mochierr"
)

// AddrHash computes RIPEMD160(SHA3-512(x)), the 20-byte v3 address hash
// used both as an implicit address tag and as the hash half of a v3
// address derived from a WOTS+ public key.
func AddrHash(x []byte) [20]byte {
	mid := hashadapter.Sum3_512(x)
	return hashadapter.RIPEMD160(mid[:])
}

// ImplicitAddress builds the 40-byte "implicit" v3 address tag ‖
// tag[:20] used when the hash half of the address is not independently
// known.
func ImplicitAddress(tag [20]byte) [40]byte {
	var out [40]byte
	copy(out[0:20], tag[:])
	copy(out[20:40], tag[:])
	return out
}

// AddrFromWots derives the 40-byte v3 address for a raw WOTS+ public
// key: addr_from_implicit(addr_hash(pk)).
func AddrFromWots(pk []byte) [40]byte {
	hash := AddrHash(pk)
	return ImplicitAddress(hash)
}

// V3Address builds the canonical 40-byte v3 address tag(20) ‖
// addr_hash(pk)(20) for an explicitly-chosen tag that may differ from
// addr_hash(pk) (the case where a wallet carries its own v3 tag rather
// than defaulting to the hash of its own public key).
func V3Address(tag [20]byte, pk []byte) [40]byte {
	var out [40]byte
	copy(out[0:20], tag[:])
	hash := AddrHash(pk)
	copy(out[20:40], hash[:])
	return out
}

// WithAmount appends a little-endian uint64 amount to a 40-byte v3
// address, producing the 48-byte amount-bearing encoding.
func WithAmount(addr40 [40]byte, amount uint64) [48]byte {
	var out [48]byte
	copy(out[0:40], addr40[:])
	binary.LittleEndian.PutUint64(out[40:48], amount)
	return out
}

// V3AddressFromBytes accepts the three encodings spec.md recognizes:
// 2144 bytes (a raw WOTS+ public key: tag and hash are both derived via
// AddrFromWots, amount is 0), 40 bytes (tag ‖ hash, amount 0), or 48
// bytes (40-byte address plus a little-endian uint64 amount). Any other
// length yields a zeroed tag, zeroed hash, and zero amount, matching the
// reference implementation's permissive fallback.
func V3AddressFromBytes(b []byte) (tag [20]byte, hash [20]byte, amount uint64) {
	switch len(b) {
	case WotsSigBytes:
		h := AddrHash(b)
		return h, h, 0
	case V3AddrLen:
		copy(tag[:], b[0:20])
		copy(hash[:], b[20:40])
		return tag, hash, 0
	case V3AddrLen + AmountLen:
		copy(tag[:], b[0:20])
		copy(hash[:], b[20:40])
		amount = binary.LittleEndian.Uint64(b[40:48])
		return tag, hash, amount
	default:
		return tag, hash, 0
	}
}

// AddrTagFromV3Address extracts the 20-byte tag half of a 40-byte v3
// address, failing if the input is not exactly 40 bytes.
func AddrTagFromV3Address(addr []byte) ([20]byte, error) {
	var tag [20]byte
	if len(addr) != V3AddrLen {
		return tag, mochierr.NewInvalidLength("v3 address", V3AddrLen, len(addr))
	}
	copy(tag[:], addr[0:20])
	return tag, nil
}
