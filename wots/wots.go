package wots

import (
	"bytes"

	"github.com/wagleanuj/mochimo-wots/mochierr"
	"github.com/wagleanuj/mochimo-wots/wotshash"
)

// ExpandSeed expands a 32-byte private seed into the WOTSLEN*PARAMSN-byte
// private key expansion: out[32*i:32*i+32] = PRF(ctr_i, seed), where
// ctr_i is the 32-byte big-endian encoding of i.
func ExpandSeed(out []byte, seed [32]byte) error {
	if len(out) < WOTSLEN*PARAMSN {
		return mochierr.NewInvalidLength("expanded seed", WOTSLEN*PARAMSN, len(out))
	}
	var ctr [32]byte
	for i := 0; i < WOTSLEN; i++ {
		ctr[31] = byte(i) // i < WOTSLEN(67) < 256, only the last byte is nonzero
		wotshash.PRF(out, i*PARAMSN, ctr, seed)
	}
	return nil
}

// BaseW decomposes length base-16 digits (high nibble first) from msg
// into dst[offset:offset+length]. It consumes ceil(length/2) bytes of
// msg.
func BaseW(msg []byte, dst []int, offset, length int) {
	in := 0
	bits := 0
	var total byte
	for i := 0; i < length; i++ {
		if bits == 0 {
			total = msg[in]
			in++
			bits = 8
		}
		bits -= WOTSLOGW
		dst[offset+i] = int((total >> uint(bits)) & (WOTSW - 1))
	}
}

// Checksum computes the WOTSLEN2 checksum digits from the WOTSLEN1
// message digits: csum = sum(15 - d_i), shifted left 4 bits, encoded as 2
// big-endian bytes, and base-w-decomposed into 3 digits.
func Checksum(msgDigits []int) [WOTSLEN2]int {
	csum := 0
	for i := 0; i < WOTSLEN1; i++ {
		csum += (WOTSW - 1) - msgDigits[i]
	}
	csum <<= 4

	csumBytes := []byte{byte(csum >> 8), byte(csum)}
	var out [WOTSLEN2]int
	dst := make([]int, WOTSLEN2)
	BaseW(csumBytes, dst, 0, WOTSLEN2)
	copy(out[:], dst)
	return out
}

// ChainLengths computes the full 67-entry length vector for a 32-byte
// message digest: 64 message digits followed by 3 checksum digits.
func ChainLengths(msgDigest [32]byte) [WOTSLEN]int {
	var lengths [WOTSLEN]int
	digits := make([]int, WOTSLEN1)
	BaseW(msgDigest[:], digits, 0, WOTSLEN1)
	copy(lengths[:WOTSLEN1], digits)

	csum := Checksum(digits)
	copy(lengths[WOTSLEN1:], csum[:])
	return lengths
}

// GenChain copies the 32-byte input to output, then applies thash_f in
// place for i from start to min(start+steps, WOTSW)-1, setting the
// hash-address field to i at each step.
func GenChain(out []byte, outOff int, in []byte, inOff int, start, steps int, pubSeed [32]byte, addr *wotshash.Address) {
	copy(out[outOff:outOff+PARAMSN], in[inOff:inOff+PARAMSN])
	end := start + steps
	if end > WOTSW {
		end = WOTSW
	}
	for i := start; i < end; i++ {
		addr.SetHash(uint32(i))
		wotshash.ThashF(out, outOff, out, outOff, pubSeed, addr)
	}
}

// PkGen generates the 2144-byte WOTS+ public key for the given private
// seed, public seed, and 32-byte address-seed.
func PkGen(privateSeed, pubSeed, addrSeed [32]byte) []byte {
	expanded := make([]byte, WOTSLEN*PARAMSN)
	_ = ExpandSeed(expanded, privateSeed) // length is always correct here

	pk := make([]byte, WOTSSIGBYTES)
	for i := 0; i < WOTSLEN; i++ {
		addr := wotshash.FromSeed(addrSeed)
		addr.SetChain(uint32(i))
		GenChain(pk, i*PARAMSN, expanded, i*PARAMSN, 0, WOTSW-1, pubSeed, addr)
	}
	return pk
}

// Sign computes a 2144-byte WOTS+ signature of the 32-byte message digest
// under the given private seed, public seed, and address-seed.
func Sign(msgDigest, privateSeed, pubSeed, addrSeed [32]byte) []byte {
	lengths := ChainLengths(msgDigest)

	expanded := make([]byte, WOTSLEN*PARAMSN)
	_ = ExpandSeed(expanded, privateSeed)

	sig := make([]byte, WOTSSIGBYTES)
	for i := 0; i < WOTSLEN; i++ {
		addr := wotshash.FromSeed(addrSeed)
		addr.SetChain(uint32(i))
		GenChain(sig, i*PARAMSN, expanded, i*PARAMSN, 0, lengths[i], pubSeed, addr)
	}
	return sig
}

// PkFromSig recovers the WOTS+ public key implied by a signature over a
// message digest. The caller is expected to compare the result to a
// known public key (see Verify) rather than treat this as authentication
// on its own.
func PkFromSig(sig []byte, msgDigest, pubSeed, addrSeed [32]byte) ([]byte, error) {
	if len(sig) != WOTSSIGBYTES {
		return nil, mochierr.NewInvalidLength("signature", WOTSSIGBYTES, len(sig))
	}
	lengths := ChainLengths(msgDigest)

	pk := make([]byte, WOTSSIGBYTES)
	for i := 0; i < WOTSLEN; i++ {
		addr := wotshash.FromSeed(addrSeed)
		addr.SetChain(uint32(i))
		steps := (WOTSW - 1) - lengths[i]
		GenChain(pk, i*PARAMSN, sig, i*PARAMSN, lengths[i], steps, pubSeed, addr)
	}
	return pk, nil
}

// Verify reports whether sig is a valid WOTS+ signature of msgDigest
// under pk, pubSeed and addrSeed. It never returns an error for a
// cryptographic mismatch — only for malformed input lengths.
func Verify(pk, sig []byte, msgDigest, pubSeed, addrSeed [32]byte) (bool, error) {
	if len(pk) != WOTSSIGBYTES {
		return false, mochierr.NewInvalidLength("public key", WOTSSIGBYTES, len(pk))
	}
	recovered, err := PkFromSig(sig, msgDigest, pubSeed, addrSeed)
	if err != nil {
		return false, err
	}
	return len(pk) == len(recovered) && bytes.Equal(pk, recovered), nil
}
