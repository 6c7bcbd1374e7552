// Package hashadapter exposes exactly the three hash primitives the
// Mochimo WOTS+ core is allowed to use: SHA-256 (one-shot and
// incremental), SHA3-512 and RIPEMD160 (one-shot, used only to derive the
// 20-byte implicit address tag). No other algorithm belongs here.
package hashadapter

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Mochimo's addr_hash
	"golang.org/x/crypto/sha3"
)

// Sum256 computes the one-shot SHA-256 digest of data.
func Sum256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Sum3_512 computes the one-shot SHA3-512 digest of data.
func Sum3_512(data []byte) [64]byte {
	return sha3.Sum512(data)
}

// RIPEMD160 computes the one-shot RIPEMD160 digest of data.
func RIPEMD160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data) //nolint:errcheck // hash.Hash.Write never errors
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// IncrementalSHA256 wraps crypto/sha256's streaming hasher. Update may be
// called any number of times; Digest finalizes the current state and
// resets the hasher to the empty-input state, so a subsequent Digest call
// with no further Update calls returns the empty SHA-256 digest.
type IncrementalSHA256 struct {
	h hash.Hash
}

// NewIncrementalSHA256 returns a hasher ready to accept Update calls.
func NewIncrementalSHA256() *IncrementalSHA256 {
	return &IncrementalSHA256{h: sha256.New()}
}

// Update feeds more data into the running digest.
func (s *IncrementalSHA256) Update(p []byte) {
	s.h.Write(p) //nolint:errcheck // hash.Hash.Write never errors
}

// Digest returns the 32-byte digest of everything written since the last
// Digest call (or since construction), and resets the internal state.
func (s *IncrementalSHA256) Digest() [32]byte {
	var out [32]byte
	copy(out[:], s.h.Sum(nil))
	s.h.Reset()
	return out
}
