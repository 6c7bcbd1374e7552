// Package wotshash implements the WOTS+ addressing scheme (the 32-byte
// "hash address" structure) and the PRF/F keyed hash functions built on
// SHA-256, following the XMSS-style address-and-padding convention
// Mochimo's WOTS+ uses. It is grounded on the chain/hash/key-and-mask
// address setters of tool-2/wots.go and tool-3/wots.go
// (withChainAddr/withHashAddr/withKeyAndMask) and on lentus-wotsp's
// Address type naming (SetChain/SetHash/SetKeyAndMask). Word loading and
// serialization are built on bytebuffer.ByteBuffer rather than calling
// encoding/binary directly, per spec.md's ByteBuffer being the carrier
// for this structure.
package wotshash

import "github.com/wagleanuj/mochimo-wots/bytebuffer"

// Address is the 32-byte WOTS+ hash address, held internally as 8
// logical 32-bit words. Only three of those words are meaningful to this
// layer: chain index (word 5, byte offset 20), hash index (word 6, byte
// offset 24), and the key/mask selector (word 7, byte offset 28). The
// remaining words carry whatever the caller seeded the address with
// (Mochimo feeds its 32-byte addr-seed here) and are never modified by
// this package.
type Address struct {
	words [8]uint32
}

// FromSeed builds an Address whose words are the addr-seed's bytes read
// as 8 little-endian 32-bit words. Combined with ToBytes's big-endian
// serialization, this reproduces the byte-reversal-per-word transform
// Mochimo's reference applies to the addr-seed before it is used as a
// hash address.
func FromSeed(seed [32]byte) *Address {
	buf := bytebuffer.Wrap(seed[:])
	buf.SetOrder(bytebuffer.LittleEndian)

	a := &Address{}
	for i := 0; i < 8; i++ {
		v, _ := buf.GetInt32() // buf is always 32 bytes; 8 reads of 4 never underflow
		a.words[i] = uint32(v)
	}
	return a
}

// SetChain sets the chain-address word (word 5, byte offset 20).
func (a *Address) SetChain(i uint32) {
	a.words[5] = i
}

// SetHash sets the hash-index word (word 6, byte offset 24).
func (a *Address) SetHash(i uint32) {
	a.words[6] = i
}

// SetKeyAndMask sets the key/mask selector word (word 7, byte offset 28).
func (a *Address) SetKeyAndMask(i uint32) {
	a.words[7] = i
}

// Clone returns a deep copy. Callers that walk a chain with a borrowed
// Address must clone it first, since the chain walk mutates the address
// in place.
func (a *Address) Clone() *Address {
	c := *a
	return &c
}

// ToBytes produces the canonical serialization used inside PRF inputs:
// each of the 8 logical words is written out as 4 big-endian bytes, in
// word order. Per FromSeed's loading convention this amounts to
// byte-reversing each 4-byte chunk of whatever 32-byte value the address
// was originally seeded with; it is NOT a plain endian flip of the whole
// 32-byte buffer.
func (a *Address) ToBytes() [32]byte {
	buf := bytebuffer.Allocate(32) // default order is big-endian
	for i := 0; i < 8; i++ {
		_ = buf.PutInt32(int32(a.words[i])) // 8 writes of 4 into 32 bytes never overflow
	}
	var out [32]byte
	copy(out[:], buf.Array())
	return out
}
