// Package wots implements the Mochimo-flavored WOTS+ one-time signature
// scheme: key generation, signing, and "public key from signature"
// verification, fixed to the w=16 parameter set. Grounded on
// tool-3/wots.go's WotsSign/WotsPkGen/WotsPkFromSig (buffer-based,
// error-returning) generalized to the value-returning style of
// lentus-wotsp's GenPublicKey/Sign/PublicKeyFromSig, with top-level
// Sign/Verify naming from femcoder-wots/wots.go (key generation is PkGen).
//
// A private key must never be used to sign more than one message.
package wots

// Fixed WOTS+ parameters for the w=16 Mochimo parameter set.
const (
	WOTSW        = 16 // Winternitz parameter
	WOTSLOGW     = 4  // log2(WOTSW)
	PARAMSN      = 32 // hash output size in bytes
	WOTSLEN1     = 64 // number of message base-w digits
	WOTSLEN2     = 3  // number of checksum base-w digits
	WOTSLEN      = WOTSLEN1 + WOTSLEN2 // total chains
	WOTSSIGBYTES = WOTSLEN * PARAMSN   // signature/public-key size in bytes

	XMSSHashPaddingF   = 0
	XMSSHashPaddingPRF = 3
)
